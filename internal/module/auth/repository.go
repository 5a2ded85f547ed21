package auth

import (
	"context"

	"gorm.io/gorm"

	"github.com/luggio/console/internal/domain"
	"github.com/luggio/console/internal/pkg"
)

// staffRepository implements domain.StaffRepository using GORM.
type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new StaffRepository backed by the given GORM database.
func NewStaffRepository(db *gorm.DB) domain.StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) Create(ctx context.Context, staff *domain.Staff) error {
	if err := r.db.WithContext(ctx).Create(staff).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *staffRepository) GetByID(ctx context.Context, id uint) (*domain.Staff, error) {
	var staff domain.Staff
	if err := r.db.WithContext(ctx).First(&staff, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &staff, nil
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	var staff domain.Staff
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&staff).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &staff, nil
}
