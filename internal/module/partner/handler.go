package partner

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luggio/console/internal/domain"
	"github.com/luggio/console/internal/pkg"
)

// PartnerHandler handles REST API requests for the partner resource.
type PartnerHandler struct {
	svc domain.PartnerService
}

// NewHandler creates a new PartnerHandler with the given service.
func NewHandler(svc domain.PartnerService) *PartnerHandler {
	return &PartnerHandler{svc: svc}
}

// Create handles POST /api/v1/partners.
func (h *PartnerHandler) Create(c *gin.Context) {
	var draft domain.PartnerDraft
	if !pkg.BindAndValidate(c, &draft) {
		return
	}

	partner, err := h.svc.Create(c.Request.Context(), draft)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    partner,
	})
}

// Get handles GET /api/v1/partners/:id.
func (h *PartnerHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	partner, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, partner)
}

// List handles GET /api/v1/partners.
func (h *PartnerHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/partners/:id.
func (h *PartnerHandler) Update(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var draft domain.PartnerDraft
	if !pkg.BindAndValidate(c, &draft) {
		return
	}

	partner, err := h.svc.Update(c.Request.Context(), id, draft)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, partner)
}

// Delete handles DELETE /api/v1/partners/:id.
func (h *PartnerHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
