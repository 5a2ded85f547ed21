package domain

import (
	"context"
	"time"
)

// QnA is a support ticket raised by a rider, partner, or guest.
// A ticket stays "waiting" until staff write an answer.
type QnA struct {
	BaseModel
	Title      string     `gorm:"size:200;not null" json:"title"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	Writer     string     `gorm:"size:100;not null" json:"writer"`
	Answer     string     `gorm:"type:text" json:"answer"`
	Answered   bool       `gorm:"not null;default:false" json:"answered"`
	AnsweredAt *time.Time `json:"answered_at"`
}

// QnADraft is the editable subset of a ticket: staff only ever edit the
// answer. Writing a non-empty answer marks the ticket answered.
type QnADraft struct {
	Answer string `json:"answer"`
}

// QnARepository defines the data access interface for support tickets.
type QnARepository interface {
	Create(ctx context.Context, qna *QnA) error
	GetByID(ctx context.Context, id uint) (*QnA, error)
	List(ctx context.Context, req PageRequest) (*PageResult[QnA], error)
	Update(ctx context.Context, qna *QnA) error
	Delete(ctx context.Context, id uint) error
}

// QnAService defines the business logic interface for support tickets.
type QnAService interface {
	Get(ctx context.Context, id uint) (*QnA, error)
	List(ctx context.Context, req PageRequest) (*PageResult[QnA], error)
	Answer(ctx context.Context, id uint, draft QnADraft) (*QnA, error)
	Delete(ctx context.Context, id uint) error
}
