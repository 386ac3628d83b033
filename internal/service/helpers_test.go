package service

import (
	"sync"

	"github.com/guttosm/storefront-cart/internal/domain/model"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testProduct(id, category int, price string) model.Product {
	return model.Product{ID: id, CategoryID: category, Price: dec(price)}
}

func offerProduct(id, category int, price, offer string) model.Product {
	p := testProduct(id, category, price)
	p.PriceOffer = model.NewOffer(dec(offer))
	return p
}

// memoryPersistence records every save and serves the last one on load.
type memoryPersistence struct {
	mu     sync.Mutex
	stored []model.LineItem
	saves  [][]model.LineItem
}

func (m *memoryPersistence) Save(items []model.LineItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stored = model.CloneLineItems(items)
	m.saves = append(m.saves, model.CloneLineItems(items))
}

func (m *memoryPersistence) Load() []model.LineItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return model.CloneLineItems(m.stored)
}

func (m *memoryPersistence) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.saves)
}

func (m *memoryPersistence) last() []model.LineItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.saves) == 0 {
		return nil
	}
	return m.saves[len(m.saves)-1]
}
