package cart

import (
	"pickup/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Item is the catalog data the cart keeps for a line.
type Item struct {
	ID        kernel.UUID
	Name      string
	UnitPrice decimal.Decimal
	ImageRef  string
}

// MaxPriceScale is the number of decimal places a unit price may carry; the
// order store keeps money with two.
const MaxPriceScale = 2

// IsValid reports whether the item can be put into a cart.
func (i Item) IsValid() bool {
	return !i.ID.IsZero() && !i.UnitPrice.IsNegative() && i.UnitPrice.Equal(i.UnitPrice.Round(MaxPriceScale))
}

// Line is one cart entry. Quantity is always at least 1.
type Line struct {
	Item     Item
	Quantity int
}

// Subtotal returns UnitPrice × Quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.Item.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l Line) isEqual(other Line) bool {
	return l.Item.ID.IsEqual(other.Item.ID) &&
		l.Item.Name == other.Item.Name &&
		l.Item.UnitPrice.Equal(other.Item.UnitPrice) &&
		l.Item.ImageRef == other.Item.ImageRef &&
		l.Quantity == other.Quantity
}
