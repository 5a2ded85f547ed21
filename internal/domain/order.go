package domain

import (
	"context"
	"time"
)

// Order status values. "req" and "mat" count as in progress.
const (
	OrderStatusRequested = "req"
	OrderStatusMatched   = "mat"
	OrderStatusComplete  = "com"
	OrderStatusCancelled = "cancel"
)

// Order represents one luggage delivery between a hotel and a pickup point.
type Order struct {
	BaseModel
	OrderNum    string     `gorm:"size:30;uniqueIndex;not null" json:"order_num"`
	HotelID     uint       `gorm:"index;not null" json:"hotel_id"`
	PartnerID   uint       `gorm:"index;not null" json:"partner_id"`
	RiderID     *uint      `gorm:"index" json:"rider_id"`
	Status      string     `gorm:"size:10;not null;default:req" json:"status"`
	Price       int64      `gorm:"not null" json:"price"`
	PickupAt    time.Time  `json:"pickup_at"`
	DeliveredAt *time.Time `json:"delivered_at"`
}

// OrderDraft is the editable subset of an order. OrderNum is assigned by the
// server on create and never editable.
type OrderDraft struct {
	HotelID   uint      `json:"hotel_id"`
	PartnerID uint      `json:"partner_id"`
	RiderID   *uint     `json:"rider_id"`
	Status    string    `json:"status"`
	Price     int64     `json:"price"`
	PickupAt  time.Time `json:"pickup_at"`
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusRequested, OrderStatusMatched, OrderStatusComplete, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderRepository defines the data access interface for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id uint) (*Order, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Order], error)
	Update(ctx context.Context, order *Order) error
	Delete(ctx context.Context, id uint) error
}

// OrderService defines the business logic interface for orders.
type OrderService interface {
	Create(ctx context.Context, draft OrderDraft) (*Order, error)
	Get(ctx context.Context, id uint) (*Order, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Order], error)
	Update(ctx context.Context, id uint, draft OrderDraft) (*Order, error)
	Delete(ctx context.Context, id uint) error
}
