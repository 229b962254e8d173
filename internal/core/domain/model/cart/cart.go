package cart

import (
	"slices"

	"pickup/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Cart holds the lines of a single vendor. The zero value is an empty cart.
type Cart struct {
	vendorID   *kernel.UUID
	vendorName string

	lines map[kernel.UUID]Line
	// order keeps first-insertion order so snapshots are deterministic.
	order []kernel.UUID
	// epoch changes every time the cart is emptied.
	epoch uint64
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{
		lines: make(map[kernel.UUID]Line),
	}
}

// AddItem puts one unit of item into the cart.
//
// If the cart already holds lines of another vendor they are discarded and the
// cart restarts with this item alone. An existing line is incremented by one.
// A zero vendor ID or an invalid item leaves the cart unchanged.
func (c *Cart) AddItem(vendorID kernel.UUID, vendorName string, item Item) {
	if vendorID.IsZero() || !item.IsValid() {
		return
	}

	if c.vendorID != nil && !c.vendorID.IsEqual(vendorID) {
		c.Clear()
	}

	if c.lines == nil {
		c.lines = make(map[kernel.UUID]Line)
	}

	if c.vendorID == nil {
		id := vendorID
		c.vendorID = &id
		c.vendorName = vendorName
	}

	if line, ok := c.lines[item.ID]; ok {
		line.Quantity++
		c.lines[item.ID] = line
		return
	}

	c.lines[item.ID] = Line{Item: item, Quantity: 1}
	c.order = append(c.order, item.ID)
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero or
// less removes the line. Unknown items are ignored. There is no upper bound.
func (c *Cart) UpdateQuantity(itemID kernel.UUID, quantity int) {
	line, ok := c.lines[itemID]
	if !ok {
		return
	}

	if quantity <= 0 {
		c.RemoveItem(itemID)
		return
	}

	line.Quantity = quantity
	c.lines[itemID] = line
}

// RemoveItem deletes a line if present. Removing the last line clears the vendor.
func (c *Cart) RemoveItem(itemID kernel.UUID) {
	if _, ok := c.lines[itemID]; !ok {
		return
	}

	delete(c.lines, itemID)
	c.order = slices.DeleteFunc(c.order, func(id kernel.UUID) bool {
		return id.IsEqual(itemID)
	})

	if len(c.lines) == 0 {
		c.Clear()
	}
}

// Clear empties the cart and forgets the vendor.
func (c *Cart) Clear() {
	c.epoch++
	c.vendorID = nil
	c.vendorName = ""
	c.lines = make(map[kernel.UUID]Line)
	c.order = nil
}

// ClearSubmitted takes out of the cart what an order built from submitted
// contains. Lines added or raised after the snapshot was taken keep the
// difference. If the cart was emptied or switched vendor since, it is left as is.
func (c *Cart) ClearSubmitted(submitted Snapshot) {
	if submitted.epoch != c.epoch || submitted.VendorID == nil ||
		c.vendorID == nil || !c.vendorID.IsEqual(*submitted.VendorID) {
		return
	}

	for _, line := range submitted.Lines {
		current, ok := c.lines[line.Item.ID]
		if !ok {
			continue
		}

		remaining := current.Quantity - line.Quantity
		if remaining <= 0 {
			c.RemoveItem(line.Item.ID)
			continue
		}
		current.Quantity = remaining
		c.lines[line.Item.ID] = current
	}
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// VendorID returns the vendor of the cart, or nil when the cart is empty.
func (c *Cart) VendorID() *kernel.UUID {
	if c.vendorID == nil {
		return nil
	}
	id := *c.vendorID
	return &id
}

// VendorName mirrors VendorID.
func (c *Cart) VendorName() string {
	return c.vendorName
}

// Line returns the line of itemID if the cart holds it.
func (c *Cart) Line(itemID kernel.UUID) (Line, bool) {
	line, ok := c.lines[itemID]
	return line, ok
}

// TotalItems is the sum of line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the sum of UnitPrice × Quantity over all lines.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, id := range c.order {
		total = total.Add(c.lines[id].Subtotal())
	}
	return total
}

// Snapshot returns an immutable copy of the cart.
func (c *Cart) Snapshot() Snapshot {
	lines := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		lines = append(lines, c.lines[id])
	}

	return Snapshot{
		VendorID:   c.VendorID(),
		VendorName: c.vendorName,
		Lines:      lines,
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
		epoch:      c.epoch,
	}
}
