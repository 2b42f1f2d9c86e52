package orderstore

import (
	"context"
	"errors"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderStore implements ports.OrderStore using GORM.
type GormOrderStore struct {
	db *gorm.DB
}

// NewGormOrderStore creates a new GORM order store.
func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

// NextOrderID allocates the next order id as max existing id plus one.
// Concurrent completions are serialized per session upstream; ids only need
// to be unique across the low webhook write rate, matching the original
// store's allocation convention.
func (s *GormOrderStore) NextOrderID(ctx context.Context) (int, error) {
	var next int
	err := s.db.WithContext(ctx).
		Raw(`SELECT COALESCE(MAX(order_id), 0) + 1 FROM order_items`).
		Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

// InsertOrderItem persists one order row, resolving the menu item by name.
// Matching is case-insensitive: spoken item names arrive in whatever casing
// the NLU platform produced.
func (s *GormOrderStore) InsertOrderItem(ctx context.Context, item string, quantity int, orderID int) error {
	var foodItem FoodItemDTO
	err := s.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", item).
		First(&foodItem).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("foodItem", item)
		}
		return err
	}

	row := OrderItemDTO{
		OrderID:    orderID,
		FoodItemID: foodItem.ID,
		Quantity:   quantity,
	}
	return s.db.WithContext(ctx).Create(&row).Error
}

// InsertOrderTracking persists the tracking row for an order.
func (s *GormOrderStore) InsertOrderTracking(ctx context.Context, orderID int, status string) error {
	row := OrderTrackingDTO{
		OrderID: orderID,
		Status:  status,
	}
	return s.db.WithContext(ctx).Create(&row).Error
}

// OrderStatus returns the tracking status for an order id.
func (s *GormOrderStore) OrderStatus(ctx context.Context, orderID int) (string, error) {
	var row OrderTrackingDTO
	err := s.db.WithContext(ctx).First(&row, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("orderID", orderID)
		}
		return "", err
	}
	return row.Status, nil
}

// TotalPrice computes the order total by joining item rows with menu prices.
func (s *GormOrderStore) TotalPrice(ctx context.Context, orderID int) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(oi.quantity * fi.price), 0)
		FROM order_items oi
		JOIN food_items fi ON fi.id = oi.food_item_id
		WHERE oi.order_id = ?
	`, orderID).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
