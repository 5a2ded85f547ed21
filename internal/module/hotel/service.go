package hotel

import (
	"context"
	"strings"

	"github.com/luggio/console/internal/domain"
)

// hotelService implements domain.HotelService.
type hotelService struct {
	repo domain.HotelRepository
}

// NewService creates a new HotelService with the given repository.
func NewService(repo domain.HotelRepository) domain.HotelService {
	return &hotelService{repo: repo}
}

// Create validates the draft, builds a Hotel, and persists it.
func (s *hotelService) Create(ctx context.Context, draft domain.HotelDraft) (*domain.Hotel, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}

	hotel := &domain.Hotel{}
	applyDraft(hotel, draft)

	if err := s.repo.Create(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

// Get retrieves a hotel by ID.
func (s *hotelService) Get(ctx context.Context, id uint) (*domain.Hotel, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a paginated list of hotels.
func (s *hotelService) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Hotel], error) {
	return s.repo.List(ctx, req)
}

// Update loads the existing hotel, applies the draft, and persists it.
func (s *hotelService) Update(ctx context.Context, id uint, draft domain.HotelDraft) (*domain.Hotel, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}

	hotel, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyDraft(hotel, draft)

	if err := s.repo.Update(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

// Delete removes a hotel by ID.
func (s *hotelService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func validateDraft(draft *domain.HotelDraft) error {
	draft.KrName = strings.TrimSpace(draft.KrName)
	draft.EnName = strings.TrimSpace(draft.EnName)
	draft.Address = strings.TrimSpace(draft.Address)

	if draft.KrName == "" {
		return domain.NewAppError(domain.CodeValidation, "kr_name is required", nil)
	}
	if draft.Address == "" {
		return domain.NewAppError(domain.CodeValidation, "address is required", nil)
	}
	return nil
}

// applyDraft copies the editable fields onto the model. Server-owned
// fields (ID, timestamps) are untouchable through drafts.
func applyDraft(hotel *domain.Hotel, draft domain.HotelDraft) {
	hotel.KrName = draft.KrName
	hotel.EnName = draft.EnName
	hotel.Manager = draft.Manager
	hotel.Phone = draft.Phone
	hotel.Address = draft.Address
	hotel.Lat = draft.Lat
	hotel.Lng = draft.Lng
	hotel.Active = draft.Active
}
