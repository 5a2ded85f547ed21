package qna

import (
	"context"

	"gorm.io/gorm"

	"github.com/luggio/console/internal/domain"
	"github.com/luggio/console/internal/pkg"
)

var (
	searchColumns       = []string{"title", "content", "writer"}
	allowedFilterFields = []string{"answered"}
)

// qnaRepository implements domain.QnARepository using GORM.
type qnaRepository struct {
	db *gorm.DB
}

// NewRepository creates a new QnARepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.QnARepository {
	return &qnaRepository{db: db}
}

func (r *qnaRepository) Create(ctx context.Context, qna *domain.QnA) error {
	if err := r.db.WithContext(ctx).Create(qna).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *qnaRepository) GetByID(ctx context.Context, id uint) (*domain.QnA, error) {
	var qna domain.QnA
	if err := r.db.WithContext(ctx).First(&qna, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &qna, nil
}

func (r *qnaRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.QnA], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.QnA{}).
		Scopes(
			pkg.Search(req, searchColumns),
			pkg.Filter(req, allowedFilterFields),
		)

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var tickets []domain.QnA
	if err := base.Scopes(pkg.Paginate(req)).
		Order("id DESC").
		Find(&tickets).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(tickets, total, req), nil
}

func (r *qnaRepository) Update(ctx context.Context, qna *domain.QnA) error {
	if err := r.db.WithContext(ctx).Save(qna).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *qnaRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.QnA{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
