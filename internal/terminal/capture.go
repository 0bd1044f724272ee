package terminal

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	ordersvc "github.com/tia-rosa/pos/internal/service/order"
	"github.com/tia-rosa/pos/pkg/fault"
)

// placeOrder drives one capture session: an existing customer, a cart built
// selection by selection, then receipt and persistence. An unknown customer
// aborts before the capture loop starts.
func (m *Menu) placeOrder(ctx context.Context) {
	m.listProducts(ctx)

	fmt.Fprint(m.out, "\nEnter the customer document: ")
	id, ok := m.readLine()
	if !ok {
		return
	}

	found, err := m.customers.Find(ctx, id)
	if err != nil {
		if fault.IsKind(err, fault.KindNotFound) {
			fmt.Fprintln(m.out, "Customer not found. Register the customer first (option 5).")
		} else {
			m.printError(err)
		}
		return
	}

	fmt.Fprintf(m.out, "\nHello again, %s! Let's build your order:\n", found.Name)
	cart := m.captureCart(ctx)

	if len(cart) == 0 {
		fmt.Fprintln(m.out, "Cart is empty; nothing to record.")
		return
	}

	m.printReceipt(cart)

	placed, err := m.orders.PlaceOrder(ctx, found.ID, cart)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "\nOrder #%d saved successfully!\n", placed.ID)
}

// captureCart loops over product selections until the end sentinel or input
// runs out. Bad product ids and bad quantities discard only the current
// selection; the loop keeps collecting.
func (m *Menu) captureCart(ctx context.Context) ordersvc.Cart {
	var cart ordersvc.Cart

	for {
		fmt.Fprint(m.out, "Product id (or 'fim' to finish): ")
		raw, ok := m.readLine()
		if !ok || isSentinel(raw) {
			return cart
		}

		productID, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid product id.")
			continue
		}

		product, err := m.catalog.ByID(ctx, productID)
		if err != nil {
			if fault.IsKind(err, fault.KindNotFound) {
				fmt.Fprintln(m.out, "Product not found.")
			} else {
				m.printError(err)
			}
			continue
		}

		fmt.Fprintf(m.out, "How many %q? ", product.Name)
		rawQty, ok := m.readLine()
		if !ok {
			return cart
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(rawQty))
		if err != nil || quantity <= 0 {
			fmt.Fprintln(m.out, "Invalid quantity. Try again.")
			continue
		}

		cart = append(cart, ordersvc.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  quantity,
			UnitPrice: product.Price,
		})
		fmt.Fprintf(m.out, "%dx %q added to the cart!\n", quantity, product.Name)
	}
}

func (m *Menu) printReceipt(cart ordersvc.Cart) {
	fmt.Fprintln(m.out, "\nRECEIPT:")
	for _, item := range cart {
		fmt.Fprintf(m.out, "%dx %s - R$ %.2f\n", item.Quantity, item.Name, item.Subtotal())
	}
	fmt.Fprintf(m.out, "\nTOTAL: R$ %.2f\n", cart.Total())
}

func isSentinel(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "fim", "end":
		return true
	}
	return false
}
