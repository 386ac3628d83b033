// Package app provides service initialization.
package app

import (
	"context"
	"errors"

	"github.com/guttosm/storefront-cart/config"
	"github.com/guttosm/storefront-cart/internal/circuitbreaker"
	"github.com/guttosm/storefront-cart/internal/repository"
	"github.com/guttosm/storefront-cart/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds the cart and the pieces it is built from.
type ServiceComponents struct {
	Calculator         service.PriceCalculator
	Cart               *service.CartStore
	SlotStore          repository.SlotStoreInterface
	SlotCircuitBreaker *circuitbreaker.CircuitBreaker
	// AsyncPersistence is set when slot writes run in the background and
	// must be flushed on shutdown.
	AsyncPersistence *service.AsyncPersistence

	unsubscribe func()
}

// InitializeServices builds the price calculator, the slot store and the cart
// store. The cart is restored from the slot before this returns.
func InitializeServices(cfg config.CartConfig, breakerCfg config.DatabaseConfig) *ServiceComponents {
	calculator := service.NewPriceCalculatorService(
		service.WithSizedCategories(cfg.SizedCategories),
		service.WithSpecialCategory(cfg.SpecialCategory),
	)

	slotCB := newCircuitBreaker("cart-slot", breakerCfg)
	slots := repository.NewSlotStoreWithCircuitBreaker(newSlotStore(cfg.StorageDir), slotCB)

	var persistence service.CartPersistence = service.NewSlotPersistence(slots, cfg.StorageKey)
	var async *service.AsyncPersistence
	if cfg.AsyncPersistence {
		async = service.NewAsyncPersistence(persistence)
		persistence = async
	}

	cart := service.NewCartStore(persistence, service.WithCalculator(calculator))
	unsubscribe := cart.Subscribe(service.NewMetricsSubscriber(calculator))
	service.NewMetricsSubscriber(calculator)(cart.Snapshot())

	return &ServiceComponents{
		Calculator:         calculator,
		Cart:               cart,
		SlotStore:          slots,
		SlotCircuitBreaker: slotCB,
		AsyncPersistence:   async,
		unsubscribe:        unsubscribe,
	}
}

// Close flushes pending cart writes and detaches the metrics observer.
func (c *ServiceComponents) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
	if c.AsyncPersistence != nil {
		c.AsyncPersistence.Stop()
		written, superseded := c.AsyncPersistence.Stats()
		log.Info().Int64("written", written).Int64("superseded", superseded).Msg("Cart persistence flushed")
	}
}

// SlotHealthCheck probes the slot store. A missing slot is healthy.
func (c *ServiceComponents) SlotHealthCheck(key string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		_, err := c.SlotStore.Get(ctx, key)
		if err == nil || errors.Is(err, repository.ErrSlotNotFound) {
			return nil
		}
		return err
	}
}

// newSlotStore returns a file slot under dir, or an in-memory slot when dir is
// empty or unusable.
func newSlotStore(dir string) repository.SlotStoreInterface {
	if dir == "" {
		log.Warn().Msg("CART_STORAGE_DIR not set - cart will not survive restarts")
		return repository.NewMemorySlotStore()
	}
	store, err := repository.NewFileSlotStore(dir)
	if err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("Failed to open cart storage - continuing with in-memory cart")
		return repository.NewMemorySlotStore()
	}
	log.Info().Str("dir", store.Dir()).Msg("Cart storage ready")
	return store
}

func newCircuitBreaker(name string, cfg config.DatabaseConfig) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
	})
}
