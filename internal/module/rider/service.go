package rider

import (
	"context"
	"strings"

	"github.com/luggio/console/internal/domain"
)

// riderService implements domain.RiderService.
type riderService struct {
	repo domain.RiderRepository
}

// NewService creates a new RiderService with the given repository.
func NewService(repo domain.RiderRepository) domain.RiderService {
	return &riderService{repo: repo}
}

// Create validates the draft, builds a Rider, and persists it. New riders
// without an explicit status stay pending until staff approve them.
func (s *riderService) Create(ctx context.Context, draft domain.RiderDraft) (*domain.Rider, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}
	if draft.Status == "" {
		draft.Status = domain.RiderStatusPending
	}

	rider := &domain.Rider{}
	applyDraft(rider, draft)

	if err := s.repo.Create(ctx, rider); err != nil {
		return nil, err
	}
	return rider, nil
}

func (s *riderService) Get(ctx context.Context, id uint) (*domain.Rider, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *riderService) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Rider], error) {
	return s.repo.List(ctx, req)
}

func (s *riderService) Update(ctx context.Context, id uint, draft domain.RiderDraft) (*domain.Rider, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}

	rider, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if draft.Status == "" {
		draft.Status = rider.Status
	}
	applyDraft(rider, draft)

	if err := s.repo.Update(ctx, rider); err != nil {
		return nil, err
	}
	return rider, nil
}

func (s *riderService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func validateDraft(draft *domain.RiderDraft) error {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Address = strings.TrimSpace(draft.Address)

	if draft.Name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if draft.Address == "" {
		return domain.NewAppError(domain.CodeValidation, "address is required", nil)
	}
	if draft.Status != "" && !domain.ValidRiderStatus(draft.Status) {
		return domain.NewAppError(domain.CodeValidation, "unknown status", nil)
	}
	return nil
}

func applyDraft(rider *domain.Rider, draft domain.RiderDraft) {
	rider.UserID = draft.UserID
	rider.Name = draft.Name
	rider.Phone = draft.Phone
	rider.Address = draft.Address
	rider.Lat = draft.Lat
	rider.Lng = draft.Lng
	rider.Bank = draft.Bank
	rider.BankAccount = draft.BankAccount
	rider.Status = draft.Status
}
