package domain

// A CartItem is one cart line: a product+variant combination with
// its accumulated quantity and total. Name and prices are cached at
// add time, so a line stays displayable after the product leaves the
// catalog.
type CartItem struct {
	ProductID string
	Name      string
	Variant   Variant
	Label     string
	Service   bool
	Quantity  int
	UnitPrice int64
	LineTotal int64
}

// SameLine reports whether another add request merges into this line.
// The merge key is (productID, variant); quantity is not part of it.
func (it CartItem) SameLine(productID string, v Variant) bool {
	return it.ProductID == productID && it.Variant == v
}

type Totals struct {
	ItemCount  int
	GrandTotal int64
}

func CartTotals(items []CartItem) Totals {
	var t Totals
	for _, it := range items {
		t.ItemCount += it.Quantity
		t.GrandTotal += it.LineTotal
	}
	return t
}

// HasService reports whether any line is a service line with the
// given tag. Drives the withdrawal-code notice in the cart view.
func HasService(items []CartItem, v Variant) bool {
	for _, it := range items {
		if it.Service && it.Variant == v {
			return true
		}
	}
	return false
}
