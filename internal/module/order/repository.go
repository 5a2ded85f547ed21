package order

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/luggio/console/internal/domain"
	"github.com/luggio/console/internal/pkg"
)

var (
	searchColumns       = []string{"order_num"}
	allowedFilterFields = []string{"hotel_id", "partner_id", "rider_id"}
)

const dateLayout = "2006-01-02"

// orderRepository implements domain.OrderRepository using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewRepository creates a new OrderRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uint) (*domain.Order, error) {
	var order domain.Order
	if err := r.db.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &order, nil
}

// List returns a paginated list of orders. Besides the common search and
// equality filters, start_date and end_date (YYYY-MM-DD, inclusive) bound
// the pickup time, and a comma-separated status value matches any of the
// listed statuses (the in-progress view asks for "req,mat").
func (r *orderRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Order], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Order{}).
		Scopes(
			pkg.Search(req, searchColumns),
			pkg.Filter(req, allowedFilterFields),
			statusFilter(req),
			pickupRange(req),
		)

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var orders []domain.Order
	if err := base.Scopes(pkg.Paginate(req)).
		Order("id DESC").
		Find(&orders).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(orders, total, req), nil
}

func (r *orderRepository) Update(ctx context.Context, order *domain.Order) error {
	if err := r.db.WithContext(ctx).Save(order).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Order{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// statusFilter applies the status filter. The value may carry several
// statuses separated by commas, which become an IN condition. Unknown
// status values are dropped; an all-unknown value matches nothing rather
// than everything.
func statusFilter(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		raw, ok := req.Filter["status"]
		if !ok || raw == "" {
			return db
		}
		var statuses []string
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); domain.ValidOrderStatus(s) {
				statuses = append(statuses, s)
			}
		}
		if len(statuses) == 0 {
			return db.Where("1 = 0")
		}
		if len(statuses) == 1 {
			return db.Where("status = ?", statuses[0])
		}
		return db.Where("status IN ?", statuses)
	}
}

// pickupRange bounds pickup_at by the optional start_date/end_date filter
// values. Malformed dates are ignored rather than failing the query.
func pickupRange(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if raw, ok := req.Filter["start_date"]; ok {
			if from, err := time.Parse(dateLayout, raw); err == nil {
				db = db.Where("pickup_at >= ?", from)
			}
		}
		if raw, ok := req.Filter["end_date"]; ok {
			if until, err := time.Parse(dateLayout, raw); err == nil {
				db = db.Where("pickup_at < ?", until.AddDate(0, 0, 1))
			}
		}
		return db
	}
}
