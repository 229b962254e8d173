package cart

import (
	"pickup/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Snapshot is a point-in-time copy of a Cart. Mutating it does not affect the cart.
type Snapshot struct {
	VendorID   *kernel.UUID
	VendorName string
	Lines      []Line
	TotalItems int
	TotalPrice decimal.Decimal

	epoch uint64
}

func (s Snapshot) IsEmpty() bool {
	return len(s.Lines) == 0
}

// Equal compares two snapshots line by line, using decimal equality for prices.
func (s Snapshot) Equal(other Snapshot) bool {
	if (s.VendorID == nil) != (other.VendorID == nil) {
		return false
	}
	if s.VendorID != nil && !s.VendorID.IsEqual(*other.VendorID) {
		return false
	}
	if s.VendorName != other.VendorName ||
		s.TotalItems != other.TotalItems ||
		!s.TotalPrice.Equal(other.TotalPrice) ||
		len(s.Lines) != len(other.Lines) {
		return false
	}
	for i := range s.Lines {
		if !s.Lines[i].isEqual(other.Lines[i]) {
			return false
		}
	}
	return true
}
