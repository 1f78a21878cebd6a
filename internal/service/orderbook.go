package service

import (
	"fmt"

	"shopplus/internal/models"
	"shopplus/internal/store"
	"shopplus/internal/util"

	"go.uber.org/zap"
)

// OrderBook owns the list of pending customer orders. Orders have no stable
// identifier; their position in the list at processing time is what a
// supplier selects against.
type OrderBook struct {
	orders []models.Order
	store  *store.OrderStore
	logger *zap.Logger
}

// NewOrderBook loads the pending orders from their backing store
func NewOrderBook(st *store.OrderStore) (*OrderBook, error) {
	orders, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	return &OrderBook{
		orders: orders,
		store:  st,
		logger: util.GetLogger(),
	}, nil
}

// Append adds an order to the end of the book and persists it as a
// single-line append, leaving existing lines untouched.
func (b *OrderBook) Append(order models.Order) error {
	if err := b.store.Append(order); err != nil {
		return fmt.Errorf("failed to persist order: %w", err)
	}
	b.orders = append(b.orders, order)

	util.OrdersPlacedTotal.Inc()
	b.logger.Info("Order placed",
		zap.String("customer", order.CustomerEmail),
		zap.String("product_id", order.ProductID))
	return nil
}

// ListAll returns the pending orders in load order
func (b *OrderBook) ListAll() []models.Order {
	return b.orders
}

// ListByCustomer filters the pending orders by exact customer email match.
// The result is re-derived from the full list on every call.
func (b *OrderBook) ListByCustomer(email string) []models.Order {
	matched := []models.Order{}
	for _, order := range b.orders {
		if order.CustomerEmail == email {
			matched = append(matched, order)
		}
	}
	return matched
}

// Len returns the number of pending orders
func (b *OrderBook) Len() int {
	return len(b.orders)
}

// RemoveAt removes and returns the order at the given 0-based position,
// in memory only. The caller persists the shorter sequence via Save.
func (b *OrderBook) RemoveAt(index int) (models.Order, error) {
	if index < 0 || index >= len(b.orders) {
		return models.Order{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(b.orders))
	}

	removed := b.orders[index]
	b.orders = append(b.orders[:index], b.orders[index+1:]...)
	return removed, nil
}

// Save rewrites the backing file with the current order sequence
func (b *OrderBook) Save() error {
	if err := b.store.Save(b.orders); err != nil {
		return fmt.Errorf("failed to persist orders: %w", err)
	}
	return nil
}
