// Package terminal implements the menu-driven session over stdin/stdout.
// It only reads lines, prints results, and delegates to the services, so
// every business rule stays testable without a terminal attached.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/tia-rosa/pos/internal/entity"
	ordersvc "github.com/tia-rosa/pos/internal/service/order"
	"github.com/tia-rosa/pos/pkg/fault"
)

// Catalog is the slice of the catalog service the menu needs.
type Catalog interface {
	List(ctx context.Context) ([]entity.Product, error)
	ByID(ctx context.Context, id int64) (*entity.Product, error)
	Register(ctx context.Context, name, category string, price float64) (*entity.Product, error)
}

// Customers is the slice of the customer service the menu needs.
type Customers interface {
	Find(ctx context.Context, id string) (*entity.Customer, error)
	Register(ctx context.Context, id, name, phone string) (*entity.Customer, error)
	List(ctx context.Context) ([]entity.Customer, error)
}

// Orders is the slice of the order service the menu needs.
type Orders interface {
	PlaceOrder(ctx context.Context, customerID string, cart ordersvc.Cart) (*entity.Order, error)
	History(ctx context.Context) ([]entity.Order, error)
	SalesReport(ctx context.Context) ([]ordersvc.CustomerSales, error)
}

// Menu runs the interactive session: a fixed set of numbered actions in an
// unbounded loop until the exit token or end of input.
type Menu struct {
	in        *bufio.Scanner
	out       io.Writer
	catalog   Catalog
	customers Customers
	orders    Orders
	logger    *zap.Logger
}

// New builds a Menu over the given streams.
func New(in io.Reader, out io.Writer, catalog Catalog, customers Customers, orders Orders, logger *zap.Logger) *Menu {
	return &Menu{
		in:        bufio.NewScanner(in),
		out:       out,
		catalog:   catalog,
		customers: customers,
		orders:    orders,
		logger:    logger,
	}
}

// Run loops over the menu until the exit token, end of input, or context
// cancellation. A normal exit returns nil.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu()
		choice, ok := m.readLine()
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			m.placeOrder(ctx)
		case "2":
			m.listProducts(ctx)
		case "3":
			m.listCustomers(ctx)
		case "4":
			m.orderHistory(ctx)
		case "5":
			m.greet(ctx)
		case "6":
			m.salesReport(ctx)
		case "7":
			m.registerProduct(ctx)
		case "0":
			fmt.Fprintln(m.out, "Closing the register. See you next time!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option. Try again.")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "MAIN MENU")
	fmt.Fprintln(m.out, "1. Place order")
	fmt.Fprintln(m.out, "2. List products")
	fmt.Fprintln(m.out, "3. List customers")
	fmt.Fprintln(m.out, "4. Order history")
	fmt.Fprintln(m.out, "5. Greeting / customer registration")
	fmt.Fprintln(m.out, "6. Sales report")
	fmt.Fprintln(m.out, "7. Register product")
	fmt.Fprintln(m.out, "0. Exit")
	fmt.Fprint(m.out, "\nChoose an option: ")
}

func (m *Menu) listProducts(ctx context.Context) {
	products, err := m.catalog.List(ctx)
	if err != nil {
		m.printError(err)
		return
	}

	fmt.Fprintln(m.out, "\nAVAILABLE PRODUCTS:")
	for _, p := range products {
		fmt.Fprintf(m.out, "%d. %s (%s) - R$ %.2f\n", p.ID, p.Name, p.Category, p.Price)
	}
}

func (m *Menu) listCustomers(ctx context.Context) {
	customers, err := m.customers.List(ctx)
	if err != nil {
		m.printError(err)
		return
	}

	fmt.Fprintln(m.out, "\nREGISTERED CUSTOMERS:")
	for _, c := range customers {
		fmt.Fprintf(m.out, "%s | ID: %s | Phone: %s\n", c.Name, c.ID, c.Phone)
	}
}

func (m *Menu) orderHistory(ctx context.Context) {
	orders, err := m.orders.History(ctx)
	if err != nil {
		m.printError(err)
		return
	}

	fmt.Fprintln(m.out)
	for _, o := range orders {
		fmt.Fprintf(m.out, "Order #%d | Customer: %s | Total: R$ %.2f | Date: %s\n",
			o.ID, o.CustomerID, o.Total, o.CreatedAt.Format("02/01/2006 15:04"))
		var items []string
		for _, line := range o.Lines {
			name := fmt.Sprintf("product %d", line.ProductID)
			if line.Product != nil {
				name = line.Product.Name
			}
			items = append(items, fmt.Sprintf("%dx %s", line.Quantity, name))
		}
		fmt.Fprintf(m.out, "Products: %s\n", strings.Join(items, ", "))
		fmt.Fprintln(m.out, strings.Repeat("-", 50))
	}
}

func (m *Menu) salesReport(ctx context.Context) {
	rows, err := m.orders.SalesReport(ctx)
	if err != nil {
		m.printError(err)
		return
	}

	fmt.Fprintln(m.out, "\nCustomers with orders:")
	for _, row := range rows {
		fmt.Fprintf(m.out, "%s | ID: %s | Orders: %d | Total: R$ %.2f\n",
			row.CustomerName, row.CustomerID, row.OrderCount, row.TotalSpent)
	}
}

// greet looks up a document number and either welcomes the returning
// customer or walks through first-time registration.
func (m *Menu) greet(ctx context.Context) {
	fmt.Fprint(m.out, "\nEnter the customer document: ")
	id, ok := m.readLine()
	if !ok {
		return
	}

	found, err := m.customers.Find(ctx, id)
	if err == nil {
		fmt.Fprintf(m.out, "Hello, %s! Welcome back.\n", found.Name)
		return
	}
	if !fault.IsKind(err, fault.KindNotFound) {
		m.printError(err)
		return
	}

	fmt.Fprint(m.out, "Name: ")
	name, ok := m.readLine()
	if !ok {
		return
	}
	fmt.Fprint(m.out, "Phone: ")
	phone, ok := m.readLine()
	if !ok {
		return
	}

	created, err := m.customers.Register(ctx, id, name, phone)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Registration complete. Welcome, %s!\n", created.Name)
}

func (m *Menu) registerProduct(ctx context.Context) {
	fmt.Fprint(m.out, "\nProduct name: ")
	name, ok := m.readLine()
	if !ok {
		return
	}
	fmt.Fprint(m.out, "Category: ")
	category, ok := m.readLine()
	if !ok {
		return
	}
	fmt.Fprint(m.out, "Price (R$): ")
	rawPrice, ok := m.readLine()
	if !ok {
		return
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(rawPrice), 64)
	if err != nil || price < 0 {
		fmt.Fprintln(m.out, "Invalid price. Product not registered.")
		return
	}

	product, err := m.catalog.Register(ctx, name, category, price)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Product %q registered with id %d.\n", product.Name, product.ID)
}

func (m *Menu) printError(err error) {
	fmt.Fprintln(m.out, fault.From(err).Message()+".")
	if m.logger != nil {
		m.logger.Warn("operation failed", zap.Error(err))
	}
}

// readLine reads one input line; ok is false once input is exhausted.
func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}
