package settlement

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/luggio/console/internal/domain"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// settlementService implements domain.SettlementService.
type settlementService struct {
	repo domain.SettlementRepository
}

// NewService creates a new SettlementService with the given repository.
func NewService(repo domain.SettlementRepository) domain.SettlementService {
	return &settlementService{repo: repo}
}

func (s *settlementService) Get(ctx context.Context, id uint) (*domain.Settlement, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *settlementService) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Settlement], error) {
	return s.repo.List(ctx, req)
}

func (s *settlementService) Summary(ctx context.Context, month string) (*domain.SettlementSummary, error) {
	if !monthPattern.MatchString(month) {
		return nil, domain.NewAppError(domain.CodeValidation,
			fmt.Sprintf("invalid month %q, expected YYYY-MM", month), nil)
	}
	return s.repo.SummaryByMonth(ctx, month)
}

// Retry re-queues a failed payout with corrected transfer details. Only
// settlements in the failed state can be retried.
func (s *settlementService) Retry(ctx context.Context, id uint, retry domain.SettlementRetry) (*domain.Settlement, error) {
	settlement, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if settlement.Status != domain.SettlementStatusFailed {
		return nil, domain.NewAppError(domain.CodeValidation,
			fmt.Sprintf("settlement %d is %s, only failed payouts can be retried", id, settlement.Status), nil)
	}

	if bank := strings.TrimSpace(retry.Bank); bank != "" {
		settlement.Bank = bank
	}
	if account := strings.TrimSpace(retry.BankAccount); account != "" {
		settlement.BankAccount = account
	}
	settlement.Memo = strings.TrimSpace(retry.Memo)
	settlement.Status = domain.SettlementStatusPending

	if err := s.repo.Update(ctx, settlement); err != nil {
		return nil, err
	}
	return settlement, nil
}
