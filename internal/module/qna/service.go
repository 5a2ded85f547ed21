package qna

import (
	"context"
	"strings"
	"time"

	"github.com/luggio/console/internal/domain"
)

// qnaService implements domain.QnAService.
type qnaService struct {
	repo domain.QnARepository
	now  func() time.Time
}

// NewService creates a new QnAService with the given repository.
func NewService(repo domain.QnARepository) domain.QnAService {
	return &qnaService{repo: repo, now: time.Now}
}

func (s *qnaService) Get(ctx context.Context, id uint) (*domain.QnA, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *qnaService) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.QnA], error) {
	return s.repo.List(ctx, req)
}

// Answer writes the staff answer on a ticket. A non-empty answer marks the
// ticket answered and records when. Clearing the answer puts the ticket back
// in the waiting queue.
func (s *qnaService) Answer(ctx context.Context, id uint, draft domain.QnADraft) (*domain.QnA, error) {
	qna, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	answer := strings.TrimSpace(draft.Answer)
	qna.Answer = answer
	if answer == "" {
		qna.Answered = false
		qna.AnsweredAt = nil
	} else {
		if !qna.Answered {
			answeredAt := s.now()
			qna.AnsweredAt = &answeredAt
		}
		qna.Answered = true
	}

	if err := s.repo.Update(ctx, qna); err != nil {
		return nil, err
	}
	return qna, nil
}

func (s *qnaService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
