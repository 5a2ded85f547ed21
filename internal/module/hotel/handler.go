package hotel

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luggio/console/internal/domain"
	"github.com/luggio/console/internal/pkg"
)

// HotelHandler handles REST API requests for the hotel resource.
type HotelHandler struct {
	svc domain.HotelService
}

// NewHandler creates a new HotelHandler with the given service.
func NewHandler(svc domain.HotelService) *HotelHandler {
	return &HotelHandler{svc: svc}
}

// Create handles POST /api/v1/hotels.
func (h *HotelHandler) Create(c *gin.Context) {
	var draft domain.HotelDraft
	if !pkg.BindAndValidate(c, &draft) {
		return
	}

	hotel, err := h.svc.Create(c.Request.Context(), draft)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    hotel,
	})
}

// Get handles GET /api/v1/hotels/:id.
func (h *HotelHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	hotel, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, hotel)
}

// List handles GET /api/v1/hotels.
func (h *HotelHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/hotels/:id.
func (h *HotelHandler) Update(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var draft domain.HotelDraft
	if !pkg.BindAndValidate(c, &draft) {
		return
	}

	hotel, err := h.svc.Update(c.Request.Context(), id, draft)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, hotel)
}

// Delete handles DELETE /api/v1/hotels/:id.
func (h *HotelHandler) Delete(c *gin.Context) {
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
