package orderstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/core/ports"
	"pickup/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderStore implements ports.OrderStore on GORM.
type GormOrderStore struct {
	db *gorm.DB
}

func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

// CreateOrderHeader inserts the orders row. The aggregate's identifier becomes
// the header identifier.
func (s *GormOrderStore) CreateOrderHeader(ctx context.Context, o *order.Order) (kernel.UUID, error) {
	if err := o.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	dto := fromDomain(o)
	if err := s.db.WithContext(ctx).Omit("Items").Create(&dto).Error; err != nil {
		return kernel.UUID{}, err
	}

	return o.ID(), nil
}

// CreateOrderLines inserts all line items of a header in one statement.
func (s *GormOrderStore) CreateOrderLines(ctx context.Context, orderID kernel.UUID, lines []order.Line) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	items := itemsFromDomain(orderID, lines)
	return s.db.WithContext(ctx).Create(&items).Error
}

// UpdateOrderStatus only writes when the row still has status from, so a
// transition made by someone else in the meantime is never overwritten.
func (s *GormOrderStore) UpdateOrderStatus(ctx context.Context, orderID kernel.UUID, from, to order.Status) error {
	if err := errors.Join(orderID.Validate(), from.Validate(), to.Validate()); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", orderID.Bytes(), from.String()).
		Update("status", to.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", orderID.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", orderID.String())
	}

	return fmt.Errorf("%w: order %s is no longer %s", ports.ErrOrderStatusChanged, orderID, from)
}

func (s *GormOrderStore) GetOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := s.withItems(ctx).First(&dto, "id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListOrdersForUser returns the user's orders newest first.
func (s *GormOrderStore) ListOrdersForUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := s.withItems(ctx).
		Where("user_id = ?", userID.Bytes()).
		Order("created_at DESC").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// ListOrphanedOrderIDs finds pending headers older than createdBefore with no line items.
func (s *GormOrderStore) ListOrphanedOrderIDs(ctx context.Context, createdBefore time.Time) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	err := s.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status = ?", order.Pending.String()).
		Where("created_at < ?", createdBefore.UTC()).
		Where("NOT EXISTS (SELECT 1 FROM order_items WHERE order_items.order_id = orders.id)").
		Order("created_at").
		Pluck("id", &raw).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, id := range raw {
		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, orderID)
	}

	return ids, nil
}

func (s *GormOrderStore) withItems(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("line_no")
	})
}
