package console

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/luggio/console/internal/domain"
	"github.com/luggio/console/internal/listview"
	"github.com/luggio/console/internal/workflow"
)

// Entity collection paths.
const (
	PathHotels      = "/api/v1/hotels"
	PathPartners    = "/api/v1/partners"
	PathRiders      = "/api/v1/riders"
	PathOrders      = "/api/v1/orders"
	PathNotices     = "/api/v1/notices"
	PathQnA         = "/api/v1/qna"
	PathSettlements = "/api/v1/settlements"
)

// FilterAll is the unfiltered view every screen starts on.
const FilterAll = ""

// Deps carries the collaborators shared by all submission workflows.
// Confirm is the UI's confirmation dialog; Geocode resolves addresses.
type Deps struct {
	Client  *Client
	Confirm workflow.ConfirmFunc
	Geocode workflow.GeocodeFunc
}

func newList[T any](c *Client, path string, cfg listview.Config) *listview.Controller[T] {
	return listview.NewController[T](cfg, func(ctx context.Context, q listview.Query) (*listview.Page[T], error) {
		return FetchPage[T](ctx, c, path, q)
	})
}

type mutationSpec[D any] struct {
	path       string
	validate   func(workflow.Input[D]) error
	applyPoint func(*D, workflow.Point)
	applyPath  func(*D, string)
}

// newCreate builds a create workflow: on success the list returns to
// page 1 so the new record's likely position is visible.
func newCreate[D any](d Deps, spec mutationSpec[D], refreshFirst func()) *workflow.Workflow[D] {
	cfg := workflow.Config[D]{
		Validate:   spec.validate,
		Confirm:    d.Confirm,
		Geocode:    d.Geocode,
		ApplyPoint: spec.applyPoint,
		ApplyPath:  spec.applyPath,
		Persist: func(ctx context.Context, draft D) error {
			return d.Client.Create(ctx, spec.path, draft)
		},
		Refresh: refreshFirst,
	}
	if spec.applyPath != nil {
		cfg.Upload = d.Client.UploadImage
	}
	return workflow.New(cfg)
}

// newEdit builds an update workflow for one record: on success the list
// re-queries with its current view state.
func newEdit[D any](d Deps, spec mutationSpec[D], id uint, refresh func()) *workflow.Workflow[D] {
	cfg := workflow.Config[D]{
		Validate:   spec.validate,
		Confirm:    d.Confirm,
		Geocode:    d.Geocode,
		ApplyPoint: spec.applyPoint,
		ApplyPath:  spec.applyPath,
		Persist: func(ctx context.Context, draft D) error {
			return d.Client.Update(ctx, spec.path, id, draft)
		},
		Refresh: refresh,
	}
	if spec.applyPath != nil {
		cfg.Upload = d.Client.UploadImage
	}
	return workflow.New(cfg)
}

func newDeleter(d Deps, path string, refresh func()) *workflow.Deleter {
	return &workflow.Deleter{
		Confirm: d.Confirm,
		Delete: func(ctx context.Context, id uint) error {
			return d.Client.Delete(ctx, path, id)
		},
		Refresh: refresh,
	}
}

// ---- Hotels ----

func NewHotelList(c *Client) *listview.Controller[domain.Hotel] {
	return newList[domain.Hotel](c, PathHotels, listview.Config{
		Limit:     9,
		GroupSize: 10,
		Debounce:  500 * time.Millisecond,
		Filters: map[string]map[string]string{
			FilterAll: {},
			"active":  {"active": "true"},
		},
	})
}

var hotelSpec = mutationSpec[domain.HotelDraft]{
	path: PathHotels,
	validate: func(in workflow.Input[domain.HotelDraft]) error {
		errs := workflow.FieldErrors{}
		if in.Draft.KrName == "" {
			errs["kr_name"] = "required"
		}
		if in.Address == "" {
			errs["address"] = "required"
		}
		if len(errs) > 0 {
			return errs
		}
		return nil
	},
	applyPoint: func(d *domain.HotelDraft, p workflow.Point) {
		d.Lat, d.Lng = p.Lat, p.Lng
	},
}

func NewHotelCreate(d Deps, list *listview.Controller[domain.Hotel]) *workflow.Workflow[domain.HotelDraft] {
	return newCreate(d, hotelSpec, list.RefreshFirstPage)
}

func NewHotelEdit(d Deps, id uint, list *listview.Controller[domain.Hotel]) *workflow.Workflow[domain.HotelDraft] {
	return newEdit(d, hotelSpec, id, list.Refresh)
}

func NewHotelDeleter(d Deps, list *listview.Controller[domain.Hotel]) *workflow.Deleter {
	return newDeleter(d, PathHotels, list.Refresh)
}

// ---- Partners ----

func NewPartnerList(c *Client) *listview.Controller[domain.Partner] {
	return newList[domain.Partner](c, PathPartners, listview.Config{
		Limit:     9,
		GroupSize: 10,
		Debounce:  500 * time.Millisecond,
		Filters: map[string]map[string]string{
			FilterAll:   {},
			"requested": {"status": domain.PartnerStatusRequested},
			"reserved":  {"status": domain.PartnerStatusReserved},
			"active":    {"status": domain.PartnerStatusActive},
		},
	})
}

var partnerSpec = mutationSpec[domain.PartnerDraft]{
	path: PathPartners,
	validate: func(in workflow.Input[domain.PartnerDraft]) error {
		errs := workflow.FieldErrors{}
		if in.Draft.KrName == "" {
			errs["kr_name"] = "required"
		}
		if in.Draft.BusinessNum == "" {
			errs["business_num"] = "required"
		}
		if in.Address == "" {
			errs["address"] = "required"
		}
		if in.Draft.Status != "" && !domain.ValidPartnerStatus(in.Draft.Status) {
			errs["status"] = "unknown status"
		}
		if len(errs) > 0 {
			return errs
		}
		return nil
	},
	applyPoint: func(d *domain.PartnerDraft, p workflow.Point) {
		d.Lat, d.Lng = p.Lat, p.Lng
	},
	applyPath: func(d *domain.PartnerDraft, path string) {
		d.LogoPath = path
	},
}

func NewPartnerCreate(d Deps, list *listview.Controller[domain.Partner]) *workflow.Workflow[domain.PartnerDraft] {
	return newCreate(d, partnerSpec, list.RefreshFirstPage)
}

func NewPartnerEdit(d Deps, id uint, list *listview.Controller[domain.Partner]) *workflow.Workflow[domain.PartnerDraft] {
	return newEdit(d, partnerSpec, id, list.Refresh)
}

func NewPartnerDeleter(d Deps, list *listview.Controller[domain.Partner]) *workflow.Deleter {
	return newDeleter(d, PathPartners, list.Refresh)
}

// ---- Riders ----

func NewRiderList(c *Client) *listview.Controller[domain.Rider] {
	return newList[domain.Rider](c, PathRiders, listview.Config{
		Limit:     9,
		GroupSize: 10,
		Debounce:  500 * time.Millisecond,
		Filters: map[string]map[string]string{
			FilterAll:  {},
			"pending":  {"status": domain.RiderStatusPending},
			"approved": {"status": domain.RiderStatusApproved},
			"rejected": {"status": domain.RiderStatusRejected},
		},
	})
}

var riderSpec = mutationSpec[domain.RiderDraft]{
	path: PathRiders,
	validate: func(in workflow.Input[domain.RiderDraft]) error {
		errs := workflow.FieldErrors{}
		if in.Draft.Name == "" {
			errs["name"] = "required"
		}
		if in.Address == "" {
			errs["address"] = "required"
		}
		if in.Draft.Status != "" && !domain.ValidRiderStatus(in.Draft.Status) {
			errs["status"] = "unknown status"
		}
		if len(errs) > 0 {
			return errs
		}
		return nil
	},
	applyPoint: func(d *domain.RiderDraft, p workflow.Point) {
		d.Lat, d.Lng = p.Lat, p.Lng
	},
}

func NewRiderCreate(d Deps, list *listview.Controller[domain.Rider]) *workflow.Workflow[domain.RiderDraft] {
	return newCreate(d, riderSpec, list.RefreshFirstPage)
}

func NewRiderEdit(d Deps, id uint, list *listview.Controller[domain.Rider]) *workflow.Workflow[domain.RiderDraft] {
	return newEdit(d, riderSpec, id, list.Refresh)
}

func NewRiderDeleter(d Deps, list *listview.Controller[domain.Rider]) *workflow.Deleter {
	return newDeleter(d, PathRiders, list.Refresh)
}

// ---- Orders ----

func NewOrderList(c *Client) *listview.Controller[domain.Order] {
	return newList[domain.Order](c, PathOrders, listview.Config{
		Limit:     7,
		GroupSize: 10,
		Debounce:  400 * time.Millisecond,
		Filters: map[string]map[string]string{
			FilterAll:   {},
			"requested": {"status": domain.OrderStatusRequested},
			"matched":   {"status": domain.OrderStatusMatched},
			// Dispatchers mostly watch orders that still need action, so
			// the in-progress view spans both open statuses. The server
			// treats a comma-separated status value as an IN match.
			"in_progress": {"status": domain.OrderStatusRequested + "," + domain.OrderStatusMatched},
			"complete":    {"status": domain.OrderStatusComplete},
			"cancelled":   {"status": domain.OrderStatusCancelled},
		},
	})
}

var orderSpec = mutationSpec[domain.OrderDraft]{
	path: PathOrders,
	validate: func(in workflow.Input[domain.OrderDraft]) error {
		errs := workflow.FieldErrors{}
		if in.Draft.HotelID == 0 {
			errs["hotel_id"] = "required"
		}
		if in.Draft.PartnerID == 0 {
			errs["partner_id"] = "required"
		}
		if in.Draft.Status != "" && !domain.ValidOrderStatus(in.Draft.Status) {
			errs["status"] = "unknown status"
		}
		if len(errs) > 0 {
			return errs
		}
		return nil
	},
}

func NewOrderCreate(d Deps, list *listview.Controller[domain.Order]) *workflow.Workflow[domain.OrderDraft] {
	return newCreate(d, orderSpec, list.RefreshFirstPage)
}

func NewOrderEdit(d Deps, id uint, list *listview.Controller[domain.Order]) *workflow.Workflow[domain.OrderDraft] {
	return newEdit(d, orderSpec, id, list.Refresh)
}

func NewOrderDeleter(d Deps, list *listview.Controller[domain.Order]) *workflow.Deleter {
	return newDeleter(d, PathOrders, list.Refresh)
}

// ---- Notices ----

func NewNoticeList(c *Client) *listview.Controller[domain.Notice] {
	return newList[domain.Notice](c, PathNotices, listview.Config{
		Limit:     9,
		GroupSize: 10,
		Debounce:  400 * time.Millisecond,
		Filters: map[string]map[string]string{
			FilterAll: {},
			"pinned":  {"pinned": "true"},
		},
	})
}

var noticeSpec = mutationSpec[domain.NoticeDraft]{
	path: PathNotices,
	validate: func(in workflow.Input[domain.NoticeDraft]) error {
		errs := workflow.FieldErrors{}
		if in.Draft.Title == "" {
			errs["title"] = "required"
		}
		if in.Draft.Content == "" {
			errs["content"] = "required"
		}
		if len(errs) > 0 {
			return errs
		}
		return nil
	},
}

func NewNoticeCreate(d Deps, list *listview.Controller[domain.Notice]) *workflow.Workflow[domain.NoticeDraft] {
	return newCreate(d, noticeSpec, list.RefreshFirstPage)
}

func NewNoticeEdit(d Deps, id uint, list *listview.Controller[domain.Notice]) *workflow.Workflow[domain.NoticeDraft] {
	return newEdit(d, noticeSpec, id, list.Refresh)
}

func NewNoticeDeleter(d Deps, list *listview.Controller[domain.Notice]) *workflow.Deleter {
	return newDeleter(d, PathNotices, list.Refresh)
}

// ---- QnA ----

func NewQnAList(c *Client) *listview.Controller[domain.QnA] {
	return newList[domain.QnA](c, PathQnA, listview.Config{
		Limit:     9,
		GroupSize: 10,
		Debounce:  400 * time.Millisecond,
		Filters: map[string]map[string]string{
			FilterAll:  {},
			"waiting":  {"answered": "false"},
			"answered": {"answered": "true"},
		},
	})
}

// NewQnAAnswer builds the answer workflow for one ticket. Tickets carry
// no address or image; the pipeline is validate, confirm, persist.
func NewQnAAnswer(d Deps, id uint, list *listview.Controller[domain.QnA]) *workflow.Workflow[domain.QnADraft] {
	return newEdit(d, mutationSpec[domain.QnADraft]{
		path: PathQnA,
		validate: func(in workflow.Input[domain.QnADraft]) error {
			if in.Draft.Answer == "" {
				return workflow.FieldErrors{"answer": "required"}
			}
			return nil
		},
	}, id, list.Refresh)
}

func NewQnADeleter(d Deps, list *listview.Controller[domain.QnA]) *workflow.Deleter {
	return newDeleter(d, PathQnA, list.Refresh)
}

// ---- Settlements ----

// NewSettlementList builds the settlement list. The month is supplied
// through SetParam("month", "YYYY-MM").
func NewSettlementList(c *Client) *listview.Controller[domain.Settlement] {
	return newList[domain.Settlement](c, PathSettlements, listview.Config{
		Limit:     5,
		GroupSize: 5,
		Debounce:  300 * time.Millisecond,
		Filters: map[string]map[string]string{
			FilterAll: {},
			"pending": {"status": domain.SettlementStatusPending},
			"paid":    {"status": domain.SettlementStatusPaid},
			"failed":  {"status": domain.SettlementStatusFailed},
		},
	})
}

// FetchSettlementSummary loads the aggregate figures for one month.
func FetchSettlementSummary(ctx context.Context, c *Client, month string) (*domain.SettlementSummary, error) {
	u, err := url.Parse(c.baseURL + PathSettlements + "/summary")
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("month", month)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	var out domain.SettlementSummary
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RetrySettlement re-queues a failed payout with corrected transfer
// details.
func (c *Client) RetrySettlement(ctx context.Context, id uint, retry domain.SettlementRetry) error {
	return c.send(ctx, http.MethodPost, fmt.Sprintf("%s/%d/retry", PathSettlements, id), retry)
}
