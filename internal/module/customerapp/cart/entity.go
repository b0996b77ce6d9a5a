package cart

import (
	"github.com/kelvinwijaya/kopitiam/internal/module/customerapp/menu"
)

// CartItem is one line of the session's cart: a menu item snapshot,
// the chosen customizations, and the unit price fixed at the time the
// line was first added. Quantity is at least 1 while the line exists;
// dropping to 0 removes it.
type CartItem struct {
	ItemID         string
	Name           string
	Category       string
	BasePrice      float64
	Customizations menu.CustomizationOptions
	UnitPrice      float64
	Quantity       int64
}

// Matches reports whether the line targets the same (item, full
// customization set) identity. Two lines for the same item with
// different sugar levels are distinct lines.
func (i CartItem) Matches(itemID string, customizations menu.CustomizationOptions) bool {
	return i.ItemID == itemID && i.Customizations.Equal(customizations)
}

// TotalItems sums the quantities over all lines.
func TotalItems(lines []CartItem) int64 {
	var total int64
	for _, line := range lines {
		total += line.Quantity
	}

	return total
}

// Subtotal sums unit price times quantity over all lines.
func Subtotal(lines []CartItem) float64 {
	var total float64
	for _, line := range lines {
		total += line.UnitPrice * float64(line.Quantity)
	}

	return total
}
