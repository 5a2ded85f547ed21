package settlement

import (
	"github.com/gin-gonic/gin"

	"github.com/luggio/console/internal/domain"
	"github.com/luggio/console/internal/pkg"
)

// SettlementHandler handles REST API requests for rider settlements.
type SettlementHandler struct {
	svc domain.SettlementService
}

// NewHandler creates a new SettlementHandler with the given service.
func NewHandler(svc domain.SettlementService) *SettlementHandler {
	return &SettlementHandler{svc: svc}
}

// Get handles GET /api/v1/settlements/:id.
func (h *SettlementHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	settlement, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, settlement)
}

// List handles GET /api/v1/settlements.
func (h *SettlementHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Summary handles GET /api/v1/settlements/summary.
func (h *SettlementHandler) Summary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context(), c.Query("month"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, summary)
}

// Retry handles POST /api/v1/settlements/:id/retry.
func (h *SettlementHandler) Retry(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var retry domain.SettlementRetry
	if !pkg.BindAndValidate(c, &retry) {
		return
	}

	settlement, err := h.svc.Retry(c.Request.Context(), id, retry)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, settlement)
}
