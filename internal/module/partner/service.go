package partner

import (
	"context"
	"strings"

	"github.com/luggio/console/internal/domain"
)

// partnerService implements domain.PartnerService.
type partnerService struct {
	repo domain.PartnerRepository
}

// NewService creates a new PartnerService with the given repository.
func NewService(repo domain.PartnerRepository) domain.PartnerService {
	return &partnerService{repo: repo}
}

// Create validates the draft, builds a Partner, and persists it.
// New stores without an explicit status start as requested.
func (s *partnerService) Create(ctx context.Context, draft domain.PartnerDraft) (*domain.Partner, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}
	if draft.Status == "" {
		draft.Status = domain.PartnerStatusRequested
	}

	partner := &domain.Partner{}
	applyDraft(partner, draft)

	if err := s.repo.Create(ctx, partner); err != nil {
		return nil, err
	}
	return partner, nil
}

func (s *partnerService) Get(ctx context.Context, id uint) (*domain.Partner, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *partnerService) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Partner], error) {
	return s.repo.List(ctx, req)
}

func (s *partnerService) Update(ctx context.Context, id uint, draft domain.PartnerDraft) (*domain.Partner, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}

	partner, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if draft.Status == "" {
		draft.Status = partner.Status
	}
	applyDraft(partner, draft)

	if err := s.repo.Update(ctx, partner); err != nil {
		return nil, err
	}
	return partner, nil
}

func (s *partnerService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func validateDraft(draft *domain.PartnerDraft) error {
	draft.KrName = strings.TrimSpace(draft.KrName)
	draft.BusinessNum = strings.TrimSpace(draft.BusinessNum)
	draft.Address = strings.TrimSpace(draft.Address)

	if draft.KrName == "" {
		return domain.NewAppError(domain.CodeValidation, "kr_name is required", nil)
	}
	if draft.BusinessNum == "" {
		return domain.NewAppError(domain.CodeValidation, "business_num is required", nil)
	}
	if draft.Address == "" {
		return domain.NewAppError(domain.CodeValidation, "address is required", nil)
	}
	if draft.Status != "" && !domain.ValidPartnerStatus(draft.Status) {
		return domain.NewAppError(domain.CodeValidation, "unknown status", nil)
	}
	return nil
}

func applyDraft(partner *domain.Partner, draft domain.PartnerDraft) {
	partner.UserID = draft.UserID
	partner.BusinessNum = draft.BusinessNum
	partner.KrName = draft.KrName
	partner.EnName = draft.EnName
	partner.Manager = draft.Manager
	partner.Phone = draft.Phone
	partner.Address = draft.Address
	partner.Lat = draft.Lat
	partner.Lng = draft.Lng
	partner.LogoPath = draft.LogoPath
	partner.Status = draft.Status
}
