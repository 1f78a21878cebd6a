package models

import (
	"strings"
	"time"
)

// Product represents an item in the catalog
type Product struct {
	ID        string
	Name      string
	UnitPrice float64
	Quantity  int
}

// Order represents a pending customer order
type Order struct {
	CustomerEmail string
	ProductID     string
	PlacedAt      time.Time
}

// Shipment represents one fulfilled order, shipped by a supplier.
// Shipments are append-only; they are never mutated or deleted.
type Shipment struct {
	SupplierEmail string
	ProductID     string
	Quantity      int
	ShippedAt     time.Time
}

// Role identifies what an account is allowed to do
type Role string

const (
	RoleCustomer      Role = "customer"
	RoleAdministrator Role = "administrator"
	RoleSupplier      Role = "supplier"
)

// ParseRole maps a stored role token to a Role. Tokens are case-insensitive.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleCustomer:
		return RoleCustomer, true
	case RoleAdministrator:
		return RoleAdministrator, true
	case RoleSupplier:
		return RoleSupplier, true
	}
	return "", false
}

// Account represents a registered user of any role
type Account struct {
	Role     Role
	Name     string
	Email    string
	Password string
}

// RoleOptions lists the menu options available to each role, keyed by Role
// rather than dispatched through per-role types.
var RoleOptions = map[Role][]string{
	RoleCustomer:      {"Place an order", "View my orders"},
	RoleAdministrator: {"View inventory", "Manage users"},
	RoleSupplier:      {"Update stock", "Process shipments"},
}
