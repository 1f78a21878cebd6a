package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"shopplus/internal/models"
	"shopplus/internal/service"
)

// Menu drives the console workflow: login/registration at the top level,
// then a submenu per role
type Menu struct {
	accounts  *service.AccountService
	inventory *service.InventoryService
	orders    *service.OrderBook
	processor *service.ShipmentProcessor
	in        *bufio.Scanner
	out       io.Writer
}

// NewMenu creates a new console menu
func NewMenu(
	accounts *service.AccountService,
	inventory *service.InventoryService,
	orders *service.OrderBook,
	processor *service.ShipmentProcessor,
	in io.Reader,
	out io.Writer,
) *Menu {
	return &Menu{
		accounts:  accounts,
		inventory: inventory,
		orders:    orders,
		processor: processor,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run loops on the main menu until the user exits or input ends
func (m *Menu) Run() {
	for {
		fmt.Fprintln(m.out, "\n=== Welcome to ShopPlus ===")
		fmt.Fprintln(m.out, "1. Log in")
		fmt.Fprintln(m.out, "2. Register")
		fmt.Fprintln(m.out, "3. Exit")

		choice, ok := m.prompt("Select an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.login()
		case "2":
			m.register()
		case "3":
			fmt.Fprintln(m.out, "Thanks for using ShopPlus.")
			return
		default:
			fmt.Fprintln(m.out, "Invalid option, try again.")
		}
	}
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *Menu) login() {
	email, ok := m.prompt("\nEmail: ")
	if !ok {
		return
	}
	password, ok := m.prompt("Password: ")
	if !ok {
		return
	}

	account, err := m.accounts.Authenticate(email, password)
	if err != nil {
		fmt.Fprintf(m.out, "Authentication failed: %v\n", err)
		return
	}

	fmt.Fprintf(m.out, "\nLogged in as %s (%s)\n", account.Name, account.Role)
	switch account.Role {
	case models.RoleCustomer:
		m.customerMenu(account)
	case models.RoleAdministrator:
		m.adminMenu()
	case models.RoleSupplier:
		m.supplierMenu(account)
	}
}

func (m *Menu) register() {
	fmt.Fprintln(m.out, "\n=== New account ===")
	name, ok := m.prompt("Name: ")
	if !ok {
		return
	}
	email, ok := m.prompt("Email: ")
	if !ok {
		return
	}
	password, ok := m.prompt("Password: ")
	if !ok {
		return
	}
	roleToken, ok := m.prompt("Role (customer / administrator / supplier): ")
	if !ok {
		return
	}

	role, valid := models.ParseRole(roleToken)
	if !valid {
		fmt.Fprintln(m.out, "Invalid role.")
		return
	}

	account := models.Account{Role: role, Name: name, Email: email, Password: password}
	if err := m.accounts.Register(account); err != nil {
		fmt.Fprintf(m.out, "Failed to register account: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Account registered.")
}

// roleMenu prints the options looked up for the role, runs the chosen
// action, and returns when the user picks the back option
func (m *Menu) roleMenu(role models.Role, actions []func()) {
	options := models.RoleOptions[role]
	for {
		fmt.Fprintln(m.out)
		for i, option := range options {
			fmt.Fprintf(m.out, "%d. %s\n", i+1, option)
		}
		fmt.Fprintf(m.out, "%d. Back to main menu\n", len(options)+1)

		choice, ok := m.prompt("Select an option: ")
		if !ok {
			return
		}
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(options)+1 {
			fmt.Fprintln(m.out, "Invalid option.")
			continue
		}
		if n == len(options)+1 {
			return
		}
		actions[n-1]()
	}
}

func (m *Menu) customerMenu(account *models.Account) {
	m.roleMenu(models.RoleCustomer, []func(){
		func() { m.placeOrder(account) },
		func() { m.viewOrders(account) },
	})
}

func (m *Menu) adminMenu() {
	m.roleMenu(models.RoleAdministrator, []func(){
		m.showInventory,
		m.manageUsers,
	})
}

func (m *Menu) supplierMenu(account *models.Account) {
	m.roleMenu(models.RoleSupplier, []func(){
		m.updateStock,
		func() { m.processShipment(account) },
	})
}

func (m *Menu) placeOrder(account *models.Account) {
	id, ok := m.prompt("Product ID to order: ")
	if !ok {
		return
	}

	product, err := m.inventory.FindByID(id)
	if err != nil {
		fmt.Fprintf(m.out, "%v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Found: %s - $%.2f\n", product.Name, product.UnitPrice)

	order := models.Order{
		CustomerEmail: account.Email,
		ProductID:     product.ID,
		PlacedAt:      time.Now(),
	}
	if err := m.orders.Append(order); err != nil {
		fmt.Fprintf(m.out, "Failed to save order: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Order placed. Waiting for a supplier shipment.")
}

func (m *Menu) viewOrders(account *models.Account) {
	mine := m.orders.ListByCustomer(account.Email)
	if len(mine) == 0 {
		fmt.Fprintln(m.out, "You have no pending orders.")
		return
	}
	fmt.Fprintln(m.out, "\nYour orders:")
	for _, order := range mine {
		fmt.Fprintf(m.out, "- Product ID: %s | Placed: %s\n",
			order.ProductID, order.PlacedAt.Format("2006-01-02 15:04"))
	}
}

func (m *Menu) showInventory() {
	fmt.Fprintln(m.out, "\nCurrent inventory:")
	for _, p := range m.inventory.ListAll() {
		fmt.Fprintf(m.out, "%s - %s - $%.2f - Stock: %d\n", p.ID, p.Name, p.UnitPrice, p.Quantity)
	}
}

func (m *Menu) manageUsers() {
	for {
		fmt.Fprintln(m.out, "\nUser management:")
		fmt.Fprintln(m.out, "1. List all users")
		fmt.Fprintln(m.out, "2. Find user by email")
		fmt.Fprintln(m.out, "3. Remove user by email")
		fmt.Fprintln(m.out, "4. Back")

		choice, ok := m.prompt("Select an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			fmt.Fprintln(m.out, "\nRegistered users:")
			for _, a := range m.accounts.ListAll() {
				fmt.Fprintf(m.out, "- %s: %s | %s\n", a.Role, a.Name, a.Email)
			}
		case "2":
			email, ok := m.prompt("Email to find: ")
			if !ok {
				return
			}
			account, err := m.accounts.FindByEmail(email)
			if err != nil {
				fmt.Fprintf(m.out, "%v\n", err)
				continue
			}
			fmt.Fprintf(m.out, "Found: %s (%s), %s\n", account.Name, account.Role, account.Email)
		case "3":
			email, ok := m.prompt("Email to remove: ")
			if !ok {
				return
			}
			if err := m.accounts.RemoveByEmail(email); err != nil {
				fmt.Fprintf(m.out, "%v\n", err)
				continue
			}
			fmt.Fprintln(m.out, "User removed.")
		case "4":
			return
		default:
			fmt.Fprintln(m.out, "Invalid option.")
		}
	}
}

func (m *Menu) updateStock() {
	id, ok := m.prompt("Product ID: ")
	if !ok {
		return
	}
	quantityStr, ok := m.prompt("New quantity: ")
	if !ok {
		return
	}
	quantity, err := strconv.Atoi(quantityStr)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid input: quantity must be a number.")
		return
	}

	if err := m.inventory.SetQuantity(id, quantity); err != nil {
		fmt.Fprintf(m.out, "%v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Quantity updated.")
}

func (m *Menu) processShipment(account *models.Account) {
	pending := m.orders.ListAll()
	if len(pending) == 0 {
		fmt.Fprintln(m.out, "No pending orders.")
		return
	}

	fmt.Fprintln(m.out, "\nPending orders:")
	for i, order := range pending {
		fmt.Fprintf(m.out, "%d. Customer: %s | Product ID: %s | Placed: %s\n",
			i+1, order.CustomerEmail, order.ProductID, order.PlacedAt.Format("2006-01-02 15:04"))
	}

	choice, ok := m.prompt("Select the order number to ship: ")
	if !ok {
		return
	}
	selection, err := strconv.Atoi(choice)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid input: selection must be a number.")
		return
	}

	result, err := m.processor.FulfillOrder(selection, account.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSelection):
			fmt.Fprintln(m.out, "Invalid selection.")
		case errors.Is(err, service.ErrProductNotFound):
			fmt.Fprintf(m.out, "Product no longer exists: %v\n", err)
		default:
			fmt.Fprintf(m.out, "Failed to process shipment: %v\n", err)
		}
		return
	}

	if result.Status == service.StatusInsufficientStock {
		fmt.Fprintln(m.out, "Not enough stock for this product.")
		return
	}
	fmt.Fprintf(m.out, "Shipment completed. Stock updated, %d orders remaining.\n", result.Remaining)
}
