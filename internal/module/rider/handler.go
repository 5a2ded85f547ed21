package rider

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luggio/console/internal/domain"
	"github.com/luggio/console/internal/pkg"
)

// RiderHandler handles REST API requests for the rider resource.
type RiderHandler struct {
	svc domain.RiderService
}

// NewHandler creates a new RiderHandler with the given service.
func NewHandler(svc domain.RiderService) *RiderHandler {
	return &RiderHandler{svc: svc}
}

// Create handles POST /api/v1/riders.
func (h *RiderHandler) Create(c *gin.Context) {
	var draft domain.RiderDraft
	if !pkg.BindAndValidate(c, &draft) {
		return
	}

	rider, err := h.svc.Create(c.Request.Context(), draft)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    rider,
	})
}

// Get handles GET /api/v1/riders/:id.
func (h *RiderHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	rider, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, rider)
}

// List handles GET /api/v1/riders.
func (h *RiderHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/riders/:id.
func (h *RiderHandler) Update(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var draft domain.RiderDraft
	if !pkg.BindAndValidate(c, &draft) {
		return
	}

	rider, err := h.svc.Update(c.Request.Context(), id, draft)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, rider)
}

// Delete handles DELETE /api/v1/riders/:id.
func (h *RiderHandler) Delete(c *gin.Context) {
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
