// Package service contains the business logic of the storefront cart.
package service

import (
	"sync"

	"github.com/guttosm/storefront-cart/internal/domain/model"
	"github.com/guttosm/storefront-cart/internal/logger"
	"github.com/guttosm/storefront-cart/internal/metrics"
	"github.com/shopspring/decimal"
)

// Subscriber receives a snapshot of the cart after every change.
// Subscribers may read the store but must not mutate it.
type Subscriber func(state model.CartState)

// CartServiceInterface is the cart surface the HTTP layer drives.
type CartServiceInterface interface {
	Add(product model.Product, quantity int, composition *model.Composition) model.CartState
	SetQuantity(productID, quantity int) model.CartState
	Remove(productID int) model.CartState
	Clear() model.CartState
	CompleteCheckout() model.CartState
	Logout() model.CartState
	Open() model.CartState
	Close() model.CartState
	Snapshot() model.CartState
	Calculator() PriceCalculator
}

// CartOption configures a CartStore.
type CartOption func(*CartStore)

// WithCalculator sets the price calculator used for totals.
func WithCalculator(calc PriceCalculator) CartOption {
	return func(s *CartStore) {
		if calc != nil {
			s.calculator = calc
		}
	}
}

// CartStore owns the ordered line items of a single shopper's cart.
//
// All operations are serialized. Every mutation hands the full item sequence
// to the persistence adapter before it returns; observers are notified in
// mutation order once the store lock is released.
type CartStore struct {
	mu          sync.Mutex
	items       []model.LineItem
	isOpen      bool
	calculator  PriceCalculator
	persistence CartPersistence

	notifyMu    sync.Mutex
	subsMu      sync.RWMutex
	subscribers map[int]Subscriber
	nextSubID   int
}

// NewCartStore creates a store and rehydrates it from persistence before
// returning, so no mutation can race the initial load.
func NewCartStore(persistence CartPersistence, opts ...CartOption) *CartStore {
	if persistence == nil {
		persistence = noopPersistence{}
	}
	s := &CartStore{
		persistence: persistence,
		subscribers: make(map[int]Subscriber),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.calculator == nil {
		s.calculator = NewPriceCalculatorService()
	}

	s.items = restoredItems(persistence.Load())

	log := logger.Logger()
	log.Info().Int("lines", len(s.items)).Msg("Cart restored")
	return s
}

// restoredItems keeps only lines that satisfy the quantity invariant.
func restoredItems(loaded []model.LineItem) []model.LineItem {
	items := make([]model.LineItem, 0, len(loaded))
	for _, item := range loaded {
		if item.Quantity >= 1 {
			items = append(items, item)
		}
	}
	return items
}

// Add merges quantity into the line holding the same selection, or appends a
// new line. A quantity of 0 adds one unit. If the merged quantity drops to
// zero or below the line is removed; a non-positive quantity for a selection
// that is not in the cart changes nothing.
func (s *CartStore) Add(product model.Product, quantity int, composition *model.Composition) model.CartState {
	if quantity == 0 {
		quantity = 1
	}

	s.mu.Lock()
	if idx, found := FindLine(s.items, product, composition); found {
		newQuantity := s.items[idx].Quantity + quantity
		if newQuantity <= 0 {
			s.removeAt(idx)
		} else {
			s.items[idx].Quantity = newQuantity
		}
	} else if quantity > 0 {
		s.items = append(s.items, model.LineItem{
			Product:     product,
			Quantity:    quantity,
			Composition: composition.Clone(),
		})
	}
	return s.commit("add")
}

// SetQuantity sets the quantity of the first line whose product id matches,
// whatever its composition. A quantity of zero or less removes that line.
// Unknown product ids are ignored.
func (s *CartStore) SetQuantity(productID, quantity int) model.CartState {
	s.mu.Lock()
	if idx, found := findFirstByProductID(s.items, productID); found {
		if quantity <= 0 {
			s.removeAt(idx)
		} else {
			s.items[idx].Quantity = quantity
		}
	}
	return s.commit("set_quantity")
}

// Remove deletes every line for productID.
func (s *CartStore) Remove(productID int) model.CartState {
	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	// zero the tail so removed compositions can be collected
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = model.LineItem{}
	}
	s.items = kept
	return s.commit("remove")
}

// Clear empties the cart.
func (s *CartStore) Clear() model.CartState {
	return s.empty("clear")
}

// CompleteCheckout empties the cart once an order has been placed.
func (s *CartStore) CompleteCheckout() model.CartState {
	return s.empty("checkout")
}

// Logout empties the cart when the shopper signs out.
func (s *CartStore) Logout() model.CartState {
	return s.empty("logout")
}

func (s *CartStore) empty(operation string) model.CartState {
	s.mu.Lock()
	s.items = []model.LineItem{}
	return s.commit(operation)
}

// Open marks the cart as displayed. It is not persisted.
func (s *CartStore) Open() model.CartState {
	return s.setOpen(true)
}

// Close marks the cart as hidden. It is not persisted.
func (s *CartStore) Close() model.CartState {
	return s.setOpen(false)
}

func (s *CartStore) setOpen(open bool) model.CartState {
	s.mu.Lock()
	s.isOpen = open
	state := s.snapshotLocked()
	s.notifyMu.Lock()
	s.mu.Unlock()

	s.notify(state)
	s.notifyMu.Unlock()
	return state
}

// Items returns a copy of the line items in cart order.
func (s *CartStore) Items() []model.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneLineItems(s.items)
}

// IsOpen reports whether the cart is displayed.
func (s *CartStore) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}

// Snapshot returns a consistent copy of the items and the open flag.
func (s *CartStore) Snapshot() model.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// TotalItemCount returns the sum of quantities over all lines.
func (s *CartStore) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ItemCount(s.items)
}

// TotalPrice returns the cart total computed from the current lines.
func (s *CartStore) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calculator.CartTotal(s.items)
}

// Calculator returns the calculator the store prices lines with.
func (s *CartStore) Calculator() PriceCalculator {
	return s.calculator
}

// Subscribe registers fn for change notifications and returns a function
// that unregisters it.
func (s *CartStore) Subscribe(fn Subscriber) func() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		delete(s.subscribers, id)
	}
}

// ItemCount sums the quantities of items.
func ItemCount(items []model.LineItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// commit persists the current items, releases the store lock and notifies
// subscribers. It must be called with s.mu held.
func (s *CartStore) commit(operation string) model.CartState {
	s.persistence.Save(model.CloneLineItems(s.items))
	state := s.snapshotLocked()
	s.notifyMu.Lock()
	s.mu.Unlock()

	metrics.RecordCartMutation(operation)
	s.notify(state)
	s.notifyMu.Unlock()
	return state
}

func (s *CartStore) removeAt(idx int) {
	s.items = append(s.items[:idx], s.items[idx+1:]...)
}

func (s *CartStore) snapshotLocked() model.CartState {
	return model.CartState{
		Items:  model.CloneLineItems(s.items),
		IsOpen: s.isOpen,
	}
}

func (s *CartStore) notify(state model.CartState) {
	s.subsMu.RLock()
	subs := make([]Subscriber, 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.subsMu.RUnlock()

	for _, fn := range subs {
		fn(state)
	}
}

// NewMetricsSubscriber returns an observer that keeps the cart gauges in step
// with the store.
func NewMetricsSubscriber(calc PriceCalculator) Subscriber {
	return func(state model.CartState) {
		total, _ := calc.CartTotal(state.Items).Float64()
		metrics.UpdateCartMetrics(len(state.Items), ItemCount(state.Items), total)
	}
}
