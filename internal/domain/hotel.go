package domain

import "context"

// Hotel represents a partner hotel where guests drop off or receive luggage.
type Hotel struct {
	BaseModel
	KrName  string  `gorm:"size:100;not null" json:"kr_name"`
	EnName  string  `gorm:"size:100" json:"en_name"`
	Manager string  `gorm:"size:100" json:"manager"`
	Phone   string  `gorm:"size:30" json:"phone"`
	Address string  `gorm:"size:255;not null" json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Active  bool    `gorm:"not null;default:true" json:"active"`
}

// HotelDraft is the editable subset of a hotel. It is the only payload shape
// accepted by create and update; server-owned fields cannot leak through it.
type HotelDraft struct {
	KrName  string  `json:"kr_name"`
	EnName  string  `json:"en_name"`
	Manager string  `json:"manager"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Active  bool    `json:"active"`
}

// HotelRepository defines the data access interface for hotels.
type HotelRepository interface {
	Create(ctx context.Context, hotel *Hotel) error
	GetByID(ctx context.Context, id uint) (*Hotel, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Hotel], error)
	Update(ctx context.Context, hotel *Hotel) error
	Delete(ctx context.Context, id uint) error
}

// HotelService defines the business logic interface for hotels.
type HotelService interface {
	Create(ctx context.Context, draft HotelDraft) (*Hotel, error)
	Get(ctx context.Context, id uint) (*Hotel, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Hotel], error)
	Update(ctx context.Context, id uint, draft HotelDraft) (*Hotel, error)
	Delete(ctx context.Context, id uint) error
}
