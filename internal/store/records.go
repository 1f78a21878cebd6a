package store

import (
	"fmt"
	"strconv"
	"time"

	"shopplus/internal/models"
)

// TimeLayout is the zone-less ISO form used for order and shipment timestamps.
const TimeLayout = "2006-01-02T15:04:05"

// ProductStore persists the product catalog as id,name,unitPrice,quantity.
type ProductStore struct {
	recordStore[models.Product]
}

func NewProductStore(path string) *ProductStore {
	return &ProductStore{recordStore[models.Product]{
		path:   path,
		arity:  4,
		parse:  parseProduct,
		format: formatProduct,
	}}
}

func parseProduct(fields []string) (models.Product, error) {
	price, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: unit price %q", ErrMalformedRecord, fields[2])
	}
	quantity, err := strconv.Atoi(fields[3])
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: quantity %q", ErrMalformedRecord, fields[3])
	}
	return models.Product{
		ID:        fields[0],
		Name:      fields[1],
		UnitPrice: price,
		Quantity:  quantity,
	}, nil
}

func formatProduct(p models.Product) []string {
	return []string{
		p.ID,
		p.Name,
		strconv.FormatFloat(p.UnitPrice, 'f', -1, 64),
		strconv.Itoa(p.Quantity),
	}
}

// OrderStore persists pending orders as customerEmail,productId,timestamp.
type OrderStore struct {
	recordStore[models.Order]
}

func NewOrderStore(path string) *OrderStore {
	return &OrderStore{recordStore[models.Order]{
		path:   path,
		arity:  3,
		parse:  parseOrder,
		format: formatOrder,
	}}
}

func parseOrder(fields []string) (models.Order, error) {
	placedAt, err := time.Parse(TimeLayout, fields[2])
	if err != nil {
		return models.Order{}, fmt.Errorf("%w: timestamp %q", ErrMalformedRecord, fields[2])
	}
	return models.Order{
		CustomerEmail: fields[0],
		ProductID:     fields[1],
		PlacedAt:      placedAt,
	}, nil
}

func formatOrder(o models.Order) []string {
	return []string{
		o.CustomerEmail,
		o.ProductID,
		o.PlacedAt.Format(TimeLayout),
	}
}

// ShipmentStore persists shipments as supplierEmail,productId,quantity,timestamp.
// Shipments are append-only; Save exists only for completeness of the store API.
type ShipmentStore struct {
	recordStore[models.Shipment]
}

func NewShipmentStore(path string) *ShipmentStore {
	return &ShipmentStore{recordStore[models.Shipment]{
		path:   path,
		arity:  4,
		parse:  parseShipment,
		format: formatShipment,
	}}
}

func parseShipment(fields []string) (models.Shipment, error) {
	quantity, err := strconv.Atoi(fields[2])
	if err != nil {
		return models.Shipment{}, fmt.Errorf("%w: quantity %q", ErrMalformedRecord, fields[2])
	}
	shippedAt, err := time.Parse(TimeLayout, fields[3])
	if err != nil {
		return models.Shipment{}, fmt.Errorf("%w: timestamp %q", ErrMalformedRecord, fields[3])
	}
	return models.Shipment{
		SupplierEmail: fields[0],
		ProductID:     fields[1],
		Quantity:      quantity,
		ShippedAt:     shippedAt,
	}, nil
}

func formatShipment(sh models.Shipment) []string {
	return []string{
		sh.SupplierEmail,
		sh.ProductID,
		strconv.Itoa(sh.Quantity),
		sh.ShippedAt.Format(TimeLayout),
	}
}

// AccountStore persists accounts as role,name,email,password. Rows with an
// unrecognized role token are dropped on load.
type AccountStore struct {
	recordStore[models.Account]
}

func NewAccountStore(path string) *AccountStore {
	return &AccountStore{recordStore[models.Account]{
		path:   path,
		arity:  4,
		parse:  parseAccount,
		format: formatAccount,
	}}
}

func parseAccount(fields []string) (models.Account, error) {
	role, ok := models.ParseRole(fields[0])
	if !ok {
		return models.Account{}, errSkipRecord
	}
	return models.Account{
		Role:     role,
		Name:     fields[1],
		Email:    fields[2],
		Password: fields[3],
	}, nil
}

func formatAccount(a models.Account) []string {
	return []string{
		string(a.Role),
		a.Name,
		a.Email,
		a.Password,
	}
}
