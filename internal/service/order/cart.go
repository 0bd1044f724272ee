package order

// CartItem is one selection made during order capture. UnitPrice is the
// catalog price at selection time; it does not track later catalog changes.
type CartItem struct {
	ProductID int64
	Name      string
	Quantity  int
	UnitPrice float64
}

// Subtotal is quantity times the captured unit price.
func (i CartItem) Subtotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// Cart is the transient list of selections for one capture session. The same
// product may appear in several entries; nothing is merged.
type Cart []CartItem

// Total sums the subtotals of every entry.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c {
		total += item.Subtotal()
	}
	return total
}
