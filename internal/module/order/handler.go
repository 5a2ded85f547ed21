package order

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luggio/console/internal/domain"
	"github.com/luggio/console/internal/pkg"
)

// OrderHandler handles REST API requests for the order resource.
type OrderHandler struct {
	svc domain.OrderService
}

// NewHandler creates a new OrderHandler with the given service.
func NewHandler(svc domain.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// Create handles POST /api/v1/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var draft domain.OrderDraft
	if !pkg.BindAndValidate(c, &draft) {
		return
	}

	order, err := h.svc.Create(c.Request.Context(), draft)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    order,
	})
}

// Get handles GET /api/v1/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	order, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, order)
}

// List handles GET /api/v1/orders.
func (h *OrderHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var draft domain.OrderDraft
	if !pkg.BindAndValidate(c, &draft) {
		return
	}

	order, err := h.svc.Update(c.Request.Context(), id, draft)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, order)
}

// Delete handles DELETE /api/v1/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
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
