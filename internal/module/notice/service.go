package notice

import (
	"context"
	"strings"

	"github.com/luggio/console/internal/domain"
)

// noticeService implements domain.NoticeService.
type noticeService struct {
	repo domain.NoticeRepository
}

// NewService creates a new NoticeService with the given repository.
func NewService(repo domain.NoticeRepository) domain.NoticeService {
	return &noticeService{repo: repo}
}

func (s *noticeService) Create(ctx context.Context, draft domain.NoticeDraft) (*domain.Notice, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}

	notice := &domain.Notice{}
	applyDraft(notice, draft)

	if err := s.repo.Create(ctx, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

func (s *noticeService) Get(ctx context.Context, id uint) (*domain.Notice, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *noticeService) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Notice], error) {
	return s.repo.List(ctx, req)
}

func (s *noticeService) Update(ctx context.Context, id uint, draft domain.NoticeDraft) (*domain.Notice, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}

	notice, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyDraft(notice, draft)

	if err := s.repo.Update(ctx, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

func (s *noticeService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func validateDraft(draft *domain.NoticeDraft) error {
	draft.Title = strings.TrimSpace(draft.Title)

	if draft.Title == "" {
		return domain.NewAppError(domain.CodeValidation, "title is required", nil)
	}
	if strings.TrimSpace(draft.Content) == "" {
		return domain.NewAppError(domain.CodeValidation, "content is required", nil)
	}
	return nil
}

func applyDraft(notice *domain.Notice, draft domain.NoticeDraft) {
	notice.Title = draft.Title
	notice.Content = draft.Content
	notice.Author = draft.Author
	notice.Pinned = draft.Pinned
}
