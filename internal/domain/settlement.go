package domain

import "context"

// Settlement payout status values.
const (
	SettlementStatusPending = "pending"
	SettlementStatusPaid    = "paid"
	SettlementStatusFailed  = "failed"
)

// Settlement is one rider's payout for one month.
type Settlement struct {
	BaseModel
	RiderID     uint   `gorm:"index;not null" json:"rider_id"`
	RiderName   string `gorm:"size:100" json:"rider_name"`
	Month       string `gorm:"size:7;index;not null" json:"month"` // YYYY-MM
	Amount      int64  `gorm:"not null" json:"amount"`
	Fee         int64  `gorm:"not null" json:"fee"`
	Payout      int64  `gorm:"not null" json:"payout"`
	Status      string `gorm:"size:10;not null;default:pending" json:"status"`
	Bank        string `gorm:"size:50" json:"bank"`
	BankAccount string `gorm:"size:50" json:"bank_account"`
	Memo        string `gorm:"size:255" json:"memo"`
}

// SettlementRetry carries the corrected transfer details used to re-queue a
// failed payout.
type SettlementRetry struct {
	Bank        string `json:"bank"`
	BankAccount string `json:"bank_account"`
	Memo        string `json:"memo"`
}

// SettlementSummary aggregates one month of settlements.
type SettlementSummary struct {
	Month       string `json:"month"`
	TotalAmount int64  `json:"total_amount"`
	TotalFee    int64  `json:"total_fee"`
	TotalPayout int64  `json:"total_payout"`
	PaidCount   int64  `json:"paid_count"`
	FailedCount int64  `json:"failed_count"`
	TotalCount  int64  `json:"total_count"`
}

// SettlementRepository defines the data access interface for settlements.
type SettlementRepository interface {
	GetByID(ctx context.Context, id uint) (*Settlement, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Settlement], error)
	Update(ctx context.Context, settlement *Settlement) error
	SummaryByMonth(ctx context.Context, month string) (*SettlementSummary, error)
}

// SettlementService defines the business logic interface for settlements.
type SettlementService interface {
	Get(ctx context.Context, id uint) (*Settlement, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Settlement], error)
	Summary(ctx context.Context, month string) (*SettlementSummary, error)
	Retry(ctx context.Context, id uint, retry SettlementRetry) (*Settlement, error)
}
