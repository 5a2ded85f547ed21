package notice

import (
	"context"

	"gorm.io/gorm"

	"github.com/luggio/console/internal/domain"
	"github.com/luggio/console/internal/pkg"
)

var (
	searchColumns       = []string{"title", "content", "author"}
	allowedFilterFields = []string{"pinned"}
)

// noticeRepository implements domain.NoticeRepository using GORM.
type noticeRepository struct {
	db *gorm.DB
}

// NewRepository creates a new NoticeRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) Create(ctx context.Context, notice *domain.Notice) error {
	if err := r.db.WithContext(ctx).Create(notice).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *noticeRepository) GetByID(ctx context.Context, id uint) (*domain.Notice, error) {
	var notice domain.Notice
	if err := r.db.WithContext(ctx).First(&notice, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &notice, nil
}

// List returns notices with pinned announcements first.
func (r *noticeRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Notice], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Notice{}).
		Scopes(
			pkg.Search(req, searchColumns),
			pkg.Filter(req, allowedFilterFields),
		)

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var notices []domain.Notice
	if err := base.Scopes(pkg.Paginate(req)).
		Order("pinned DESC, id DESC").
		Find(&notices).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(notices, total, req), nil
}

func (r *noticeRepository) Update(ctx context.Context, notice *domain.Notice) error {
	if err := r.db.WithContext(ctx).Save(notice).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *noticeRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Notice{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
