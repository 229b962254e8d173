package order

import (
	"errors"
	"fmt"
	"math"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxQuantity is the largest quantity the order store can keep for a line.
const MaxQuantity = math.MaxInt32

// Line is an ordered item. UnitPrice is the price at submission time.
type Line struct {
	itemID    kernel.UUID
	quantity  int
	unitPrice decimal.Decimal
}

// NewLine validates and builds a line item.
func NewLine(itemID kernel.UUID, quantity int, unitPrice decimal.Decimal) (Line, error) {
	var errQuantity, errPrice error
	if quantity < 1 {
		errQuantity = errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	} else if quantity > MaxQuantity {
		errQuantity = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	if unitPrice.IsNegative() {
		errPrice = errs.NewValueIsInvalidErrorWithCause(
			"unit price is invalid", fmt.Errorf("%s is negative", unitPrice))
	}

	if err := errors.Join(itemID.Validate(), errQuantity, errPrice); err != nil {
		return Line{}, err
	}

	return Line{
		itemID:    itemID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

func (l Line) ItemID() kernel.UUID {
	return l.itemID
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// Subtotal returns UnitPrice × Quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}
