package domain

import "context"

// Rider approval status values.
const (
	RiderStatusPending  = "pending"
	RiderStatusApproved = "approved"
	RiderStatusRejected = "rejected"
)

// Rider represents a delivery courier. Riders sign up through the app and
// stay pending until staff approve them here.
type Rider struct {
	BaseModel
	UserID      uint    `gorm:"index;not null" json:"user_id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Phone       string  `gorm:"size:30" json:"phone"`
	Address     string  `gorm:"size:255;not null" json:"address"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Bank        string  `gorm:"size:50" json:"bank"`
	BankAccount string  `gorm:"size:50" json:"bank_account"`
	Status      string  `gorm:"size:10;not null;default:pending" json:"status"`
}

// RiderDraft is the editable subset of a rider.
type RiderDraft struct {
	UserID      uint    `json:"user_id"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Bank        string  `json:"bank"`
	BankAccount string  `json:"bank_account"`
	Status      string  `json:"status"`
}

// ValidRiderStatus reports whether s is a known rider status.
func ValidRiderStatus(s string) bool {
	switch s {
	case RiderStatusPending, RiderStatusApproved, RiderStatusRejected:
		return true
	}
	return false
}

// RiderRepository defines the data access interface for riders.
type RiderRepository interface {
	Create(ctx context.Context, rider *Rider) error
	GetByID(ctx context.Context, id uint) (*Rider, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Rider], error)
	Update(ctx context.Context, rider *Rider) error
	Delete(ctx context.Context, id uint) error
}

// RiderService defines the business logic interface for riders.
type RiderService interface {
	Create(ctx context.Context, draft RiderDraft) (*Rider, error)
	Get(ctx context.Context, id uint) (*Rider, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Rider], error)
	Update(ctx context.Context, id uint, draft RiderDraft) (*Rider, error)
	Delete(ctx context.Context, id uint) error
}
