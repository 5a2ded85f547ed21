package qna

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/luggio/console/internal/domain"
)

func setupService(t *testing.T) (domain.QnAService, domain.QnARepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.QnA{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repo := NewRepository(db)
	return NewService(repo), repo
}

func newTicket(t *testing.T, repo domain.QnARepository, title string) *domain.QnA {
	t.Helper()
	qna := &domain.QnA{Title: title, Content: "where is my suitcase", Writer: "guest"}
	if err := repo.Create(context.Background(), qna); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return qna
}

func TestAnswer_MarksTicketAnswered(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()
	ticket := newTicket(t, repo, "missing bag")

	fixed := time.Date(2025, 7, 14, 10, 30, 0, 0, time.UTC)
	svc.(*qnaService).now = func() time.Time { return fixed }

	answered, err := svc.Answer(ctx, ticket.ID, domain.QnADraft{Answer: "It is at the front desk."})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !answered.Answered {
		t.Error("ticket not marked answered")
	}
	if answered.AnsweredAt == nil || !answered.AnsweredAt.Equal(fixed) {
		t.Errorf("AnsweredAt = %v, want %v", answered.AnsweredAt, fixed)
	}
	if answered.Answer != "It is at the front desk." {
		t.Errorf("Answer = %q", answered.Answer)
	}
}

func TestAnswer_KeepsOriginalTimestampOnEdit(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()
	ticket := newTicket(t, repo, "missing bag")

	first := time.Date(2025, 7, 14, 10, 30, 0, 0, time.UTC)
	svc.(*qnaService).now = func() time.Time { return first }
	if _, err := svc.Answer(ctx, ticket.ID, domain.QnADraft{Answer: "Checking."}); err != nil {
		t.Fatalf("Answer: %v", err)
	}

	svc.(*qnaService).now = func() time.Time { return first.Add(time.Hour) }
	edited, err := svc.Answer(ctx, ticket.ID, domain.QnADraft{Answer: "Found it."})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if edited.AnsweredAt == nil || !edited.AnsweredAt.Equal(first) {
		t.Errorf("AnsweredAt = %v, want original %v", edited.AnsweredAt, first)
	}
}

func TestAnswer_ClearingReturnsTicketToWaiting(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()
	ticket := newTicket(t, repo, "missing bag")

	if _, err := svc.Answer(ctx, ticket.ID, domain.QnADraft{Answer: "Checking."}); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	cleared, err := svc.Answer(ctx, ticket.ID, domain.QnADraft{Answer: "  "})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if cleared.Answered {
		t.Error("ticket still marked answered after clearing")
	}
	if cleared.AnsweredAt != nil {
		t.Errorf("AnsweredAt = %v, want nil", cleared.AnsweredAt)
	}
}

func TestAnswer_UnknownTicket(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Answer(context.Background(), 999, domain.QnADraft{Answer: "hello"})
	if !domain.IsNotFound(err) {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestList_WaitingFilter(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		newTicket(t, repo, "open ticket")
	}
	answered := newTicket(t, repo, "closed ticket")
	if _, err := svc.Answer(ctx, answered.ID, domain.QnADraft{Answer: "Done."}); err != nil {
		t.Fatalf("Answer: %v", err)
	}

	result, err := svc.List(ctx, domain.PageRequest{
		Page: 1, Limit: 9,
		Filter: map[string]string{"answered": "false"},
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Pagination.Total != 3 {
		t.Errorf("waiting total = %d, want 3", result.Pagination.Total)
	}
	for _, item := range result.Items {
		if item.Answered {
			t.Errorf("answered ticket %d in waiting list", item.ID)
		}
	}
}
