package service

import (
	"fmt"
	"time"

	"shopplus/internal/models"
	"shopplus/internal/store"
	"shopplus/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FulfillmentStatus is the business outcome of a fulfillment attempt
type FulfillmentStatus string

const (
	StatusFulfilled         FulfillmentStatus = "FULFILLED"
	StatusInsufficientStock FulfillmentStatus = "INSUFFICIENT_STOCK"
)

// FulfillmentResult describes what a fulfillment attempt did. ReferenceID is
// generated per attempt for logs and reports only; it is never written to the
// shipment file.
type FulfillmentResult struct {
	ReferenceID string
	Status      FulfillmentStatus
	Shipment    models.Shipment
	Order       models.Order
	Remaining   int
}

// ShipmentProcessor orchestrates fulfillment of one pending order per call:
// validate the selection, check stock, decrement inventory, record a
// shipment, and remove the fulfilled order.
type ShipmentProcessor struct {
	inventory *InventoryService
	orders    *OrderBook
	shipments *store.ShipmentStore
	logger    *zap.Logger
	now       func() time.Time
}

// NewShipmentProcessor creates a new shipment processor
func NewShipmentProcessor(
	inventory *InventoryService,
	orders *OrderBook,
	shipments *store.ShipmentStore,
) *ShipmentProcessor {
	return &ShipmentProcessor{
		inventory: inventory,
		orders:    orders,
		shipments: shipments,
		logger:    util.GetLogger(),
		now:       time.Now,
	}
}

// FulfillOrder ships exactly one unit for the selected pending order.
// selection is 1-based, matching the numbering shown to the supplier.
// Insufficient stock is a normal outcome, not an error: the result carries
// StatusInsufficientStock and no state changes.
func (p *ShipmentProcessor) FulfillOrder(selection int, supplierEmail string) (*FulfillmentResult, error) {
	start := time.Now()
	defer func() {
		util.FulfillmentLatency.Observe(time.Since(start).Seconds())
	}()

	refID := uuid.New().String()

	pending := p.orders.ListAll()
	if selection < 1 || selection > len(pending) {
		util.ShipmentsFailedTotal.WithLabelValues("invalid_selection").Inc()
		return nil, fmt.Errorf("%w: %d of %d pending", ErrInvalidSelection, selection, len(pending))
	}
	order := pending[selection-1]

	product, err := p.inventory.FindByID(order.ProductID)
	if err != nil {
		util.ShipmentsFailedTotal.WithLabelValues("product_not_found").Inc()
		return nil, err
	}

	if product.Quantity <= 0 {
		util.ShipmentsFailedTotal.WithLabelValues("insufficient_stock").Inc()
		p.logger.Warn("Insufficient stock",
			zap.String("reference_id", refID),
			zap.String("product_id", product.ID),
			zap.String("customer", order.CustomerEmail))
		return &FulfillmentResult{
			ReferenceID: refID,
			Status:      StatusInsufficientStock,
			Order:       order,
			Remaining:   len(pending),
		}, nil
	}

	// The three flushes below are not atomic. An interruption between them
	// leaves the files out of step; each step is logged so a torn state can
	// be diagnosed afterwards.
	if err := p.inventory.SetQuantity(product.ID, product.Quantity-1); err != nil {
		util.ShipmentsFailedTotal.WithLabelValues("storage").Inc()
		return nil, err
	}
	p.logger.Info("Inventory decremented",
		zap.String("reference_id", refID),
		zap.String("product_id", product.ID),
		zap.Int("remaining_stock", product.Quantity))

	shipment := models.Shipment{
		SupplierEmail: supplierEmail,
		ProductID:     product.ID,
		Quantity:      1,
		ShippedAt:     p.now(),
	}
	if err := p.shipments.Append(shipment); err != nil {
		util.ShipmentsFailedTotal.WithLabelValues("storage").Inc()
		return nil, fmt.Errorf("failed to persist shipment: %w", err)
	}
	p.logger.Info("Shipment recorded",
		zap.String("reference_id", refID),
		zap.String("supplier", supplierEmail),
		zap.String("product_id", product.ID))

	removed, err := p.orders.RemoveAt(selection - 1)
	if err != nil {
		return nil, err
	}
	if err := p.orders.Save(); err != nil {
		util.ShipmentsFailedTotal.WithLabelValues("storage").Inc()
		return nil, err
	}

	util.ShipmentsCompletedTotal.Inc()
	p.logger.Info("Order fulfilled",
		zap.String("reference_id", refID),
		zap.String("customer", removed.CustomerEmail),
		zap.Int("pending_orders", p.orders.Len()))

	return &FulfillmentResult{
		ReferenceID: refID,
		Status:      StatusFulfilled,
		Shipment:    shipment,
		Order:       removed,
		Remaining:   p.orders.Len(),
	}, nil
}

// ListShipments returns every shipment recorded so far
func (p *ShipmentProcessor) ListShipments() ([]models.Shipment, error) {
	shipments, err := p.shipments.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load shipments: %w", err)
	}
	return shipments, nil
}
