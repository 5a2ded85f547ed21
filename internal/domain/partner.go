package domain

import "context"

// Partner store status values. New stores start as PartnerStatusRequested and
// are activated by staff after review.
const (
	PartnerStatusRequested = "REQ"
	PartnerStatusReserved  = "RES"
	PartnerStatusActive    = "ACT"
)

// Partner represents a pickup-point store (cafe, convenience store, ...)
// where riders collect and drop luggage.
type Partner struct {
	BaseModel
	UserID      uint    `gorm:"index;not null" json:"user_id"`
	BusinessNum string  `gorm:"size:20;not null" json:"business_num"`
	KrName      string  `gorm:"size:100;not null" json:"kr_name"`
	EnName      string  `gorm:"size:100" json:"en_name"`
	Manager     string  `gorm:"size:100" json:"manager"`
	Phone       string  `gorm:"size:30" json:"phone"`
	Address     string  `gorm:"size:255;not null" json:"address"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	LogoPath    string  `gorm:"size:255" json:"logo_path"`
	Status      string  `gorm:"size:10;not null;default:REQ" json:"status"`
}

// PartnerDraft is the editable subset of a partner store.
type PartnerDraft struct {
	UserID      uint    `json:"user_id"`
	BusinessNum string  `json:"business_num"`
	KrName      string  `json:"kr_name"`
	EnName      string  `json:"en_name"`
	Manager     string  `json:"manager"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	LogoPath    string  `json:"logo_path"`
	Status      string  `json:"status"`
}

// ValidPartnerStatus reports whether s is a known partner status.
func ValidPartnerStatus(s string) bool {
	switch s {
	case PartnerStatusRequested, PartnerStatusReserved, PartnerStatusActive:
		return true
	}
	return false
}

// PartnerRepository defines the data access interface for partner stores.
type PartnerRepository interface {
	Create(ctx context.Context, partner *Partner) error
	GetByID(ctx context.Context, id uint) (*Partner, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Partner], error)
	Update(ctx context.Context, partner *Partner) error
	Delete(ctx context.Context, id uint) error
}

// PartnerService defines the business logic interface for partner stores.
type PartnerService interface {
	Create(ctx context.Context, draft PartnerDraft) (*Partner, error)
	Get(ctx context.Context, id uint) (*Partner, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Partner], error)
	Update(ctx context.Context, id uint, draft PartnerDraft) (*Partner, error)
	Delete(ctx context.Context, id uint) error
}
