package rider

import (
	"context"

	"gorm.io/gorm"

	"github.com/luggio/console/internal/domain"
	"github.com/luggio/console/internal/pkg"
)

var (
	searchColumns       = []string{"name", "phone", "address"}
	allowedFilterFields = []string{"status"}
)

// riderRepository implements domain.RiderRepository using GORM.
type riderRepository struct {
	db *gorm.DB
}

// NewRepository creates a new RiderRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.RiderRepository {
	return &riderRepository{db: db}
}

func (r *riderRepository) Create(ctx context.Context, rider *domain.Rider) error {
	if err := r.db.WithContext(ctx).Create(rider).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *riderRepository) GetByID(ctx context.Context, id uint) (*domain.Rider, error) {
	var rider domain.Rider
	if err := r.db.WithContext(ctx).First(&rider, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &rider, nil
}

func (r *riderRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Rider], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Rider{}).
		Scopes(
			pkg.Search(req, searchColumns),
			pkg.Filter(req, allowedFilterFields),
		)

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var riders []domain.Rider
	if err := base.Scopes(pkg.Paginate(req)).
		Order("id DESC").
		Find(&riders).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(riders, total, req), nil
}

func (r *riderRepository) Update(ctx context.Context, rider *domain.Rider) error {
	if err := r.db.WithContext(ctx).Save(rider).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *riderRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Rider{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
