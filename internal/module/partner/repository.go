package partner

import (
	"context"

	"gorm.io/gorm"

	"github.com/luggio/console/internal/domain"
	"github.com/luggio/console/internal/pkg"
)

var (
	searchColumns       = []string{"kr_name", "en_name", "manager", "business_num", "address"}
	allowedFilterFields = []string{"status"}
)

// partnerRepository implements domain.PartnerRepository using GORM.
type partnerRepository struct {
	db *gorm.DB
}

// NewRepository creates a new PartnerRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.PartnerRepository {
	return &partnerRepository{db: db}
}

func (r *partnerRepository) Create(ctx context.Context, partner *domain.Partner) error {
	if err := r.db.WithContext(ctx).Create(partner).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *partnerRepository) GetByID(ctx context.Context, id uint) (*domain.Partner, error) {
	var partner domain.Partner
	if err := r.db.WithContext(ctx).First(&partner, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &partner, nil
}

func (r *partnerRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Partner], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Partner{}).
		Scopes(
			pkg.Search(req, searchColumns),
			pkg.Filter(req, allowedFilterFields),
		)

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var partners []domain.Partner
	if err := base.Scopes(pkg.Paginate(req)).
		Order("id DESC").
		Find(&partners).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(partners, total, req), nil
}

func (r *partnerRepository) Update(ctx context.Context, partner *domain.Partner) error {
	if err := r.db.WithContext(ctx).Save(partner).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *partnerRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Partner{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
