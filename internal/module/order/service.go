package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/luggio/console/internal/domain"
)

// orderService implements domain.OrderService.
type orderService struct {
	repo domain.OrderRepository
	now  func() time.Time
}

// NewService creates a new OrderService with the given repository.
func NewService(repo domain.OrderRepository) domain.OrderService {
	return &orderService{repo: repo, now: time.Now}
}

// Create validates the draft, assigns a server-generated order number,
// and persists the order.
func (s *orderService) Create(ctx context.Context, draft domain.OrderDraft) (*domain.Order, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}
	if draft.Status == "" {
		draft.Status = domain.OrderStatusRequested
	}

	order := &domain.Order{OrderNum: s.newOrderNum()}
	applyDraft(order, draft)

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) Get(ctx context.Context, id uint) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *orderService) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Order], error) {
	return s.repo.List(ctx, req)
}

// Update applies the draft to an existing order. The order number never
// changes; completing an order stamps its delivery time.
func (s *orderService) Update(ctx context.Context, id uint, draft domain.OrderDraft) (*domain.Order, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if draft.Status == "" {
		draft.Status = order.Status
	}
	applyDraft(order, draft)

	if order.Status == domain.OrderStatusComplete && order.DeliveredAt == nil {
		t := s.now()
		order.DeliveredAt = &t
	}

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// newOrderNum builds an order number like LG-20260831-1A2B3C4D. The date
// keeps them humanly sortable; the random suffix avoids coordination.
func (s *orderService) newOrderNum() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("LG-%s-%s", s.now().Format("20060102"), suffix)
}

func validateDraft(draft *domain.OrderDraft) error {
	if draft.HotelID == 0 {
		return domain.NewAppError(domain.CodeValidation, "hotel_id is required", nil)
	}
	if draft.PartnerID == 0 {
		return domain.NewAppError(domain.CodeValidation, "partner_id is required", nil)
	}
	if draft.Price < 0 {
		return domain.NewAppError(domain.CodeValidation, "price must not be negative", nil)
	}
	if draft.Status != "" && !domain.ValidOrderStatus(draft.Status) {
		return domain.NewAppError(domain.CodeValidation, "unknown status", nil)
	}
	return nil
}

func applyDraft(order *domain.Order, draft domain.OrderDraft) {
	order.HotelID = draft.HotelID
	order.PartnerID = draft.PartnerID
	order.RiderID = draft.RiderID
	order.Status = draft.Status
	order.Price = draft.Price
	order.PickupAt = draft.PickupAt
}
