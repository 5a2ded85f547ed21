package notice

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luggio/console/internal/domain"
	"github.com/luggio/console/internal/pkg"
)

// NoticeHandler handles REST API requests for the notice resource.
type NoticeHandler struct {
	svc domain.NoticeService
}

// NewHandler creates a new NoticeHandler with the given service.
func NewHandler(svc domain.NoticeService) *NoticeHandler {
	return &NoticeHandler{svc: svc}
}

// Create handles POST /api/v1/notices.
func (h *NoticeHandler) Create(c *gin.Context) {
	var draft domain.NoticeDraft
	if !pkg.BindAndValidate(c, &draft) {
		return
	}

	notice, err := h.svc.Create(c.Request.Context(), draft)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    notice,
	})
}

// Get handles GET /api/v1/notices/:id.
func (h *NoticeHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	notice, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, notice)
}

// List handles GET /api/v1/notices.
func (h *NoticeHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/notices/:id.
func (h *NoticeHandler) Update(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var draft domain.NoticeDraft
	if !pkg.BindAndValidate(c, &draft) {
		return
	}

	notice, err := h.svc.Update(c.Request.Context(), id, draft)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, notice)
}

// Delete handles DELETE /api/v1/notices/:id.
func (h *NoticeHandler) Delete(c *gin.Context) {
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
