// Package orderstore provides the GORM-backed OrderStore implementation and
// the data transfer objects mapping persisted orders to relational tables.
// A persisted order is a set of item rows sharing an order id plus one
// tracking row; item prices live in the food_items reference table.
package orderstore

// FoodItemDTO is a row of the menu reference table. Prices are joined in
// when an order total is computed.
type FoodItemDTO struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"uniqueIndex;not null"`
	Price float64
}

// TableName specifies the database table name for menu items.
func (FoodItemDTO) TableName() string {
	return "food_items"
}

// OrderItemDTO is one (item, quantity) row of a persisted order.
type OrderItemDTO struct {
	ID         uint `gorm:"primaryKey"`
	OrderID    int  `gorm:"index;not null"`
	FoodItemID uint `gorm:"not null"`
	Quantity   int  `gorm:"not null"`
}

// TableName specifies the database table name for order rows.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderTrackingDTO is the tracking row written when an order is placed.
type OrderTrackingDTO struct {
	OrderID int    `gorm:"primaryKey"`
	Status  string `gorm:"not null"`
}

// TableName specifies the database table name for tracking rows.
func (OrderTrackingDTO) TableName() string {
	return "order_tracking"
}
