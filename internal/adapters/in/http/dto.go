package http

import (
	"time"

	"pickup/internal/core/application/usecases/queries"
	"pickup/internal/core/domain/model/cart"

	"github.com/shopspring/decimal"
)

// AddCartItemRequest carries the catalog data of the item being added.
type AddCartItemRequest struct {
	VendorID   string          `json:"vendorId"   validate:"required,uuid"`
	VendorName string          `json:"vendorName" validate:"required,max=200"`
	ItemID     string          `json:"itemId"     validate:"required,uuid"`
	Name       string          `json:"name"       validate:"required,max=200"`
	Price      decimal.Decimal `json:"price"`
	ImageRef   string          `json:"imageRef"   validate:"max=500"`
}

// UpdateCartItemRequest sets a line quantity; zero or less removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"lte=999"`
}

type SubmitOrderRequest struct {
	PickupTime string `json:"pickupTime"`
	Notes      string `json:"notes" validate:"max=500"`
}

type ErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type CartLineResponse struct {
	ItemID    string          `json:"itemId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	ImageRef  string          `json:"imageRef,omitempty"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	VendorID   *string            `json:"vendorId"`
	VendorName string             `json:"vendorName,omitempty"`
	Lines      []CartLineResponse `json:"lines"`
	TotalItems int                `json:"totalItems"`
	TotalPrice decimal.Decimal    `json:"totalPrice"`
}

type PickupSlotResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PickupSlotsResponse sets Available to false when no slot is left, which
// disables checkout in the client.
type PickupSlotsResponse struct {
	Slots     []PickupSlotResponse `json:"slots"`
	Available bool                 `json:"available"`
}

type SubmitOrderResponse struct {
	OrderID string `json:"orderId"`
}

type OrderLineResponse struct {
	ItemID    string          `json:"itemId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	VendorID    string              `json:"vendorId"`
	PickupTime  string              `json:"pickupTime"`
	PickupLabel string              `json:"pickupLabel"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	Notes       string              `json:"notes,omitempty"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
	Cancellable bool                `json:"cancellable"`
	Lines       []OrderLineResponse `json:"lines"`
}

func toCartResponse(s cart.Snapshot) CartResponse {
	resp := CartResponse{
		VendorName: s.VendorName,
		Lines:      make([]CartLineResponse, 0, len(s.Lines)),
		TotalItems: s.TotalItems,
		TotalPrice: s.TotalPrice,
	}
	if s.VendorID != nil {
		id := s.VendorID.String()
		resp.VendorID = &id
	}

	for _, line := range s.Lines {
		resp.Lines = append(resp.Lines, CartLineResponse{
			ItemID:    line.Item.ID.String(),
			Name:      line.Item.Name,
			UnitPrice: line.Item.UnitPrice,
			ImageRef:  line.Item.ImageRef,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal(),
		})
	}
	return resp
}

func toOrderResponse(o queries.ListUserOrdersQueryResponse) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, OrderLineResponse{
			ItemID:    line.ItemID.String(),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	return OrderResponse{
		ID:          o.ID.String(),
		VendorID:    o.VendorID.String(),
		PickupTime:  o.PickupTime,
		PickupLabel: o.PickupLabel,
		TotalAmount: o.TotalAmount,
		Notes:       o.Notes,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		Cancellable: o.Cancellable,
		Lines:       lines,
	}
}
