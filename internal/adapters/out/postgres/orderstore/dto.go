// Package orderstore keeps orders and their line items in Postgres through GORM.
// It maps between the order aggregate and the orders / order_items tables.
package orderstore

import (
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table. Status is stored by name.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_orders_user_created,priority:1"`
	VendorID    uuid.UUID       `gorm:"type:uuid;not null"`
	PickupTime  string          `gorm:"type:varchar(5);not null"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Notes       string          `gorm:"type:text;not null;default:''"`
	Status      string          `gorm:"type:varchar(16);not null;index:idx_orders_status_created,priority:1"`
	CreatedAt   time.Time       `gorm:"not null;index:idx_orders_user_created,priority:2;index:idx_orders_status_created,priority:2"`
	Items       []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is a row of the order_items table. LineNo keeps the cart order.
type OrderItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	LineNo    int             `gorm:"not null"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain maps the header only; line items are written separately.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:          o.ID().Bytes(),
		UserID:      o.UserID().Bytes(),
		VendorID:    o.VendorID().Bytes(),
		PickupTime:  o.PickupTime().String(),
		TotalAmount: o.TotalAmount(),
		Notes:       o.Notes(),
		Status:      o.Status().String(),
		CreatedAt:   o.CreatedAt().UTC(),
	}
}

func itemsFromDomain(orderID kernel.UUID, lines []order.Line) []OrderItemDTO {
	items := make([]OrderItemDTO, 0, len(lines))
	for i, line := range lines {
		items = append(items, OrderItemDTO{
			ID:        kernel.NewUUID().Bytes(),
			OrderID:   orderID.Bytes(),
			LineNo:    i + 1,
			ItemID:    line.ItemID().Bytes(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
		})
	}
	return items
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	pickupTime, err := kernel.ParseTimeOfDay(dto.PickupTime)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Items))
	for _, item := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(item.ItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		line, lineErr := order.NewLine(itemID, item.Quantity, item.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, userID, vendorID, pickupTime, dto.TotalAmount, dto.Notes, status, dto.CreatedAt, lines)
}
