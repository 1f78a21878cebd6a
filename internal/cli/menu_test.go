package cli

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"shopplus/internal/models"
	"shopplus/internal/service"
	"shopplus/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type menuFixture struct {
	menu          *Menu
	productStore  *store.ProductStore
	orderStore    *store.OrderStore
	shipmentStore *store.ShipmentStore
}

func newMenuFixture(t *testing.T, script string, out *strings.Builder) *menuFixture {
	t.Helper()
	dir := t.TempDir()

	accountStore := store.NewAccountStore(filepath.Join(dir, "accounts.txt"))
	require.NoError(t, accountStore.Save([]models.Account{
		{Role: models.RoleSupplier, Name: "Sam", Email: "sam@x.com", Password: "pw"},
		{Role: models.RoleCustomer, Name: "Ana", Email: "ana@x.com", Password: "pw"},
	}))
	productStore := store.NewProductStore(filepath.Join(dir, "products.txt"))
	require.NoError(t, productStore.Save([]models.Product{
		{ID: "P1", Name: "Widget", UnitPrice: 9.99, Quantity: 1},
	}))
	orderStore := store.NewOrderStore(filepath.Join(dir, "orders.txt"))
	require.NoError(t, orderStore.Save([]models.Order{
		{CustomerEmail: "ana@x.com", ProductID: "P1", PlacedAt: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)},
	}))
	shipmentStore := store.NewShipmentStore(filepath.Join(dir, "shipments.txt"))

	accounts, err := service.NewAccountService(accountStore)
	require.NoError(t, err)
	inventory, err := service.NewInventoryService(productStore)
	require.NoError(t, err)
	orders, err := service.NewOrderBook(orderStore)
	require.NoError(t, err)
	processor := service.NewShipmentProcessor(inventory, orders, shipmentStore)

	return &menuFixture{
		menu:          NewMenu(accounts, inventory, orders, processor, strings.NewReader(script), out),
		productStore:  productStore,
		orderStore:    orderStore,
		shipmentStore: shipmentStore,
	}
}

func TestSupplierProcessesShipment(t *testing.T) {
	script := strings.Join([]string{
		"1",         // log in
		"sam@x.com", // email
		"pw",        // password
		"2",         // process shipments
		"1",         // ship the first pending order
		"3",         // back to main menu
		"3",         // exit
	}, "\n") + "\n"

	var out strings.Builder
	fx := newMenuFixture(t, script, &out)
	fx.menu.Run()

	assert.Contains(t, out.String(), "Shipment completed")

	products, err := fx.productStore.Load()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 0, products[0].Quantity)

	orders, err := fx.orderStore.Load()
	require.NoError(t, err)
	assert.Empty(t, orders)

	shipments, err := fx.shipmentStore.Load()
	require.NoError(t, err)
	require.Len(t, shipments, 1)
	assert.Equal(t, "sam@x.com", shipments[0].SupplierEmail)
	assert.Equal(t, "P1", shipments[0].ProductID)
}

func TestCustomerPlacesOrder(t *testing.T) {
	script := strings.Join([]string{
		"1",         // log in
		"ana@x.com", // email
		"pw",        // password
		"1",         // place an order
		"P1",        // product id
		"3",         // back to main menu
		"3",         // exit
	}, "\n") + "\n"

	var out strings.Builder
	fx := newMenuFixture(t, script, &out)
	fx.menu.Run()

	assert.Contains(t, out.String(), "Order placed")

	orders, err := fx.orderStore.Load()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ana@x.com", orders[1].CustomerEmail)
}

func TestLoginRejected(t *testing.T) {
	script := strings.Join([]string{
		"1",         // log in
		"sam@x.com", // email
		"nope",      // wrong password
		"3",         // exit
	}, "\n") + "\n"

	var out strings.Builder
	fx := newMenuFixture(t, script, &out)
	fx.menu.Run()

	assert.Contains(t, out.String(), "Authentication failed")
}
