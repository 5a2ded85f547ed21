package hotel

import (
	"context"

	"gorm.io/gorm"

	"github.com/luggio/console/internal/domain"
	"github.com/luggio/console/internal/pkg"
)

// Columns the list endpoint may search and filter on.
var (
	searchColumns       = []string{"kr_name", "en_name", "manager", "address"}
	allowedFilterFields = []string{"active"}
)

// hotelRepository implements domain.HotelRepository using GORM.
type hotelRepository struct {
	db *gorm.DB
}

// NewRepository creates a new HotelRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.HotelRepository {
	return &hotelRepository{db: db}
}

// Create inserts a new hotel into the database.
func (r *hotelRepository) Create(ctx context.Context, hotel *domain.Hotel) error {
	if err := r.db.WithContext(ctx).Create(hotel).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a hotel by its primary key.
func (r *hotelRepository) GetByID(ctx context.Context, id uint) (*domain.Hotel, error) {
	var hotel domain.Hotel
	if err := r.db.WithContext(ctx).First(&hotel, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &hotel, nil
}

// List returns a paginated, searched, and filtered list of hotels.
func (r *hotelRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Hotel], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Hotel{}).
		Scopes(
			pkg.Search(req, searchColumns),
			pkg.Filter(req, allowedFilterFields),
		)

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var hotels []domain.Hotel
	if err := base.Scopes(pkg.Paginate(req)).
		Order("id DESC").
		Find(&hotels).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(hotels, total, req), nil
}

// Update saves changes to an existing hotel.
func (r *hotelRepository) Update(ctx context.Context, hotel *domain.Hotel) error {
	if err := r.db.WithContext(ctx).Save(hotel).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a hotel by ID.
func (r *hotelRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Hotel{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
