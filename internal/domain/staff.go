package domain

import "context"

// Staff is a console operator account. Riders and partner owners never log in
// here; this table only holds internal staff.
type Staff struct {
	BaseModel
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
}

// StaffRepository defines the data access interface for staff accounts.
type StaffRepository interface {
	Create(ctx context.Context, staff *Staff) error
	GetByID(ctx context.Context, id uint) (*Staff, error)
	GetByEmail(ctx context.Context, email string) (*Staff, error)
}
