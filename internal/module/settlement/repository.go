package settlement

import (
	"context"

	"gorm.io/gorm"

	"github.com/luggio/console/internal/domain"
	"github.com/luggio/console/internal/pkg"
)

var (
	searchColumns       = []string{"rider_name", "bank", "bank_account"}
	allowedFilterFields = []string{"status", "month", "rider_id"}
)

// settlementRepository implements domain.SettlementRepository using GORM.
type settlementRepository struct {
	db *gorm.DB
}

// NewRepository creates a new SettlementRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.SettlementRepository {
	return &settlementRepository{db: db}
}

func (r *settlementRepository) GetByID(ctx context.Context, id uint) (*domain.Settlement, error) {
	var settlement domain.Settlement
	if err := r.db.WithContext(ctx).First(&settlement, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &settlement, nil
}

func (r *settlementRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Settlement], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Settlement{}).
		Scopes(
			pkg.Search(req, searchColumns),
			pkg.Filter(req, allowedFilterFields),
		)

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var settlements []domain.Settlement
	if err := base.Scopes(pkg.Paginate(req)).
		Order("id DESC").
		Find(&settlements).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(settlements, total, req), nil
}

func (r *settlementRepository) Update(ctx context.Context, settlement *domain.Settlement) error {
	if err := r.db.WithContext(ctx).Save(settlement).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// SummaryByMonth aggregates amounts and status counts for one month. A month
// with no settlements yields a zero summary, not an error.
func (r *settlementRepository) SummaryByMonth(ctx context.Context, month string) (*domain.SettlementSummary, error) {
	summary := domain.SettlementSummary{Month: month}

	row := r.db.WithContext(ctx).Model(&domain.Settlement{}).
		Where("month = ?", month).
		Select(
			"COALESCE(SUM(amount), 0), "+
				"COALESCE(SUM(fee), 0), "+
				"COALESCE(SUM(payout), 0), "+
				"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0), "+
				"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0), "+
				"COUNT(*)",
			domain.SettlementStatusPaid, domain.SettlementStatusFailed,
		).Row()

	if err := row.Scan(
		&summary.TotalAmount,
		&summary.TotalFee,
		&summary.TotalPayout,
		&summary.PaidCount,
		&summary.FailedCount,
		&summary.TotalCount,
	); err != nil {
		return nil, pkg.MapDBError(err)
	}

	return &summary, nil
}
