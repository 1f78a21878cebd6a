package service

import (
	"fmt"

	"shopplus/internal/models"
	"shopplus/internal/store"
	"shopplus/internal/util"

	"go.uber.org/zap"
)

// InventoryService owns the product catalog and mediates all reads and
// quantity writes against it
type InventoryService struct {
	products []models.Product
	store    *store.ProductStore
	logger   *zap.Logger
}

// NewInventoryService loads the catalog from its backing store
func NewInventoryService(st *store.ProductStore) (*InventoryService, error) {
	products, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	return &InventoryService{
		products: products,
		store:    st,
		logger:   util.GetLogger(),
	}, nil
}

// FindByID returns the product with the given ID via a linear scan
func (s *InventoryService) FindByID(id string) (*models.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
}

// SetQuantity overwrites the stock count unconditionally and rewrites the
// product file. Keeping the value non-negative is the caller's responsibility.
func (s *InventoryService) SetQuantity(id string, quantity int) error {
	product, err := s.FindByID(id)
	if err != nil {
		return err
	}

	product.Quantity = quantity
	if err := s.store.Save(s.products); err != nil {
		return fmt.Errorf("failed to persist products: %w", err)
	}

	util.StockUpdatesTotal.Inc()
	s.logger.Info("Stock updated",
		zap.String("product_id", id),
		zap.Int("quantity", quantity))
	return nil
}

// ListAll returns the catalog in load order
func (s *InventoryService) ListAll() []models.Product {
	return s.products
}
