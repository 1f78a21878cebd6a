package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"shopplus/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products.txt")
	content := "P1,Widget,9.99,5\nP2,Gadget,3.5,0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	st := NewProductStore(path)
	products, err := st.Load()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, models.Product{ID: "P1", Name: "Widget", UnitPrice: 9.99, Quantity: 5}, products[0])
	assert.Equal(t, models.Product{ID: "P2", Name: "Gadget", UnitPrice: 3.5, Quantity: 0}, products[1])

	// saving what was loaded reproduces the well-formed file
	out := NewProductStore(filepath.Join(dir, "out.txt"))
	require.NoError(t, out.Save(products))
	written, err := os.ReadFile(out.Path())
	require.NoError(t, err)
	assert.Equal(t, content, string(written))
}

func TestLoadSkipsShortLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.txt")
	content := "P1,Widget,9.99\nP2,Gadget,3.5,7\n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	products, err := NewProductStore(path).Load()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "P2", products[0].ID)
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	st := NewProductStore(filepath.Join(t.TempDir(), "absent.txt"))
	products, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestLoadMalformedNumberFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.txt")
	require.NoError(t, os.WriteFile(path, []byte("P1,Widget,cheap,5\n"), 0o644))

	_, err := NewProductStore(path).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestOrderAppendAndLoad(t *testing.T) {
	st := NewOrderStore(filepath.Join(t.TempDir(), "orders.txt"))

	first := models.Order{
		CustomerEmail: "a@x.com",
		ProductID:     "P1",
		PlacedAt:      time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
	}
	second := models.Order{
		CustomerEmail: "b@x.com",
		ProductID:     "P2",
		PlacedAt:      time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
	}
	require.NoError(t, st.Append(first))
	require.NoError(t, st.Append(second))

	orders, err := st.Load()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first, orders[0])
	assert.Equal(t, second, orders[1])
}

func TestShipmentAppendAndLoad(t *testing.T) {
	st := NewShipmentStore(filepath.Join(t.TempDir(), "shipments.txt"))

	shipment := models.Shipment{
		SupplierEmail: "s@x.com",
		ProductID:     "P1",
		Quantity:      1,
		ShippedAt:     time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, st.Append(shipment))

	shipments, err := st.Load()
	require.NoError(t, err)
	require.Len(t, shipments, 1)
	assert.Equal(t, shipment, shipments[0])
}

func TestAccountUnknownRoleSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.txt")
	content := "wizard,Bob,bob@x.com,pw\nCustomer,Ana,ana@x.com,secret\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	accounts, err := NewAccountStore(path).Load()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, models.RoleCustomer, accounts[0].Role)
	assert.Equal(t, "ana@x.com", accounts[0].Email)
}
