package domain

import "context"

// Notice is an announcement shown to riders and partner stores.
type Notice struct {
	BaseModel
	Title   string `gorm:"size:200;not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	Author  string `gorm:"size:100" json:"author"`
	Pinned  bool   `gorm:"not null;default:false" json:"pinned"`
}

// NoticeDraft is the editable subset of a notice.
type NoticeDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
	Pinned  bool   `json:"pinned"`
}

// NoticeRepository defines the data access interface for notices.
type NoticeRepository interface {
	Create(ctx context.Context, notice *Notice) error
	GetByID(ctx context.Context, id uint) (*Notice, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Notice], error)
	Update(ctx context.Context, notice *Notice) error
	Delete(ctx context.Context, id uint) error
}

// NoticeService defines the business logic interface for notices.
type NoticeService interface {
	Create(ctx context.Context, draft NoticeDraft) (*Notice, error)
	Get(ctx context.Context, id uint) (*Notice, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Notice], error)
	Update(ctx context.Context, id uint, draft NoticeDraft) (*Notice, error)
	Delete(ctx context.Context, id uint) error
}
