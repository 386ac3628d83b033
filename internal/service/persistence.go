package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/storefront-cart/internal/domain/model"
	"github.com/guttosm/storefront-cart/internal/logger"
	"github.com/guttosm/storefront-cart/internal/metrics"
	"github.com/guttosm/storefront-cart/internal/repository"
)

// DefaultCartStorageKey is the slot the cart is stored under.
const DefaultCartStorageKey = "storefront:cart"

// CartPersistence saves and restores the cart's line items.
// Neither operation reports failures to the caller: Save logs and drops
// errors, Load falls back to an empty cart.
type CartPersistence interface {
	Save(items []model.LineItem)
	Load() []model.LineItem
}

// SlotPersistence stores the cart as a JSON array under a single key of a
// slot store. Every Save overwrites the whole value.
type SlotPersistence struct {
	store   repository.SlotStoreInterface
	key     string
	timeout time.Duration
}

// NewSlotPersistence creates a persistence adapter over store. An empty key
// selects DefaultCartStorageKey.
func NewSlotPersistence(store repository.SlotStoreInterface, key string) *SlotPersistence {
	if key == "" {
		key = DefaultCartStorageKey
	}
	return &SlotPersistence{
		store:   store,
		key:     key,
		timeout: 2 * time.Second,
	}
}

// Save serializes items and writes them to the slot.
func (p *SlotPersistence) Save(items []model.LineItem) {
	if items == nil {
		items = []model.LineItem{}
	}
	log := logger.Logger()

	data, err := json.Marshal(items)
	if err != nil {
		metrics.RecordPersistenceWrite("encode_error")
		log.Error().Err(err).Str("key", p.key).Msg("Failed to encode cart")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.store.Put(ctx, p.key, data); err != nil {
		metrics.RecordPersistenceWrite("error")
		log.Warn().Err(err).Str("key", p.key).Int("lines", len(items)).Msg("Failed to persist cart")
		return
	}
	metrics.RecordPersistenceWrite("success")
}

// Load reads the slot and rebuilds the line items. A missing slot is an
// empty cart. Undecodable data is logged and treated as an empty cart;
// individual records that fail validation are skipped.
func (p *SlotPersistence) Load() []model.LineItem {
	log := logger.Logger()

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	data, err := p.store.Get(ctx, p.key)
	if errors.Is(err, repository.ErrSlotNotFound) {
		metrics.RecordPersistenceLoad("empty")
		return []model.LineItem{}
	}
	if err != nil {
		metrics.RecordPersistenceLoad("error")
		log.Error().Err(err).Str("key", p.key).Msg("Failed to read stored cart")
		return []model.LineItem{}
	}

	items, skipped, err := decodeLineItems(data)
	if err != nil {
		metrics.RecordPersistenceLoad("malformed")
		log.Error().Err(err).Str("key", p.key).Msg("Stored cart is malformed, starting with an empty cart")
		return []model.LineItem{}
	}
	if skipped > 0 {
		log.Warn().Str("key", p.key).Int("skipped", skipped).Msg("Dropped invalid stored cart lines")
	}
	metrics.RecordPersistenceLoad("success")
	return items
}

// decodeLineItems parses a stored cart. It fails only when the value is not a
// JSON array; records that cannot be decoded or validated are counted in
// skipped.
func decodeLineItems(data []byte) (items []model.LineItem, skipped int, err error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, 0, err
	}

	items = make([]model.LineItem, 0, len(records))
	for _, raw := range records {
		var item model.LineItem
		if err := json.Unmarshal(raw, &item); err != nil {
			skipped++
			continue
		}
		if err := item.Validate(); err != nil {
			skipped++
			continue
		}
		items = append(items, item)
	}
	return items, skipped, nil
}

// AsyncPersistence makes Save fire-and-forget. A single worker writes the
// most recent snapshot; snapshots superseded before the worker reaches them
// are dropped, so the durable copy is at most one write behind.
type AsyncPersistence struct {
	next    CartPersistence
	pending chan []model.LineItem
	stopCh  chan struct{}
	done    chan struct{}
	stopped atomic.Bool
	once    sync.Once

	written    int64
	superseded int64
}

// NewAsyncPersistence starts the background writer in front of next.
func NewAsyncPersistence(next CartPersistence) *AsyncPersistence {
	ap := &AsyncPersistence{
		next:    next,
		pending: make(chan []model.LineItem, 1),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
	go ap.worker()
	return ap
}

// Save queues items for writing, replacing any snapshot still waiting.
// After Stop, Save writes synchronously.
func (ap *AsyncPersistence) Save(items []model.LineItem) {
	if ap.stopped.Load() {
		ap.next.Save(items)
		return
	}
	for {
		select {
		case ap.pending <- items:
			return
		default:
		}
		select {
		case <-ap.pending:
			atomic.AddInt64(&ap.superseded, 1)
		default:
		}
	}
}

// Load reads through to the wrapped persistence.
func (ap *AsyncPersistence) Load() []model.LineItem {
	return ap.next.Load()
}

func (ap *AsyncPersistence) worker() {
	defer close(ap.done)
	for {
		select {
		case items := <-ap.pending:
			ap.write(items)
		case <-ap.stopCh:
			select {
			case items := <-ap.pending:
				ap.write(items)
			default:
			}
			return
		}
	}
}

func (ap *AsyncPersistence) write(items []model.LineItem) {
	ap.next.Save(items)
	atomic.AddInt64(&ap.written, 1)
}

// Stop flushes the pending snapshot and shuts the worker down.
func (ap *AsyncPersistence) Stop() {
	ap.once.Do(func() {
		ap.stopped.Store(true)
		close(ap.stopCh)
		<-ap.done
		// a Save that raced the flag may have queued after the worker's drain
		select {
		case items := <-ap.pending:
			ap.write(items)
		default:
		}
	})
}

// Stats returns how many snapshots were written and how many were superseded.
func (ap *AsyncPersistence) Stats() (written, superseded int64) {
	return atomic.LoadInt64(&ap.written), atomic.LoadInt64(&ap.superseded)
}

// noopPersistence is used when the store is built without persistence.
type noopPersistence struct{}

func (noopPersistence) Save([]model.LineItem)    {}
func (noopPersistence) Load() []model.LineItem { return []model.LineItem{} }
