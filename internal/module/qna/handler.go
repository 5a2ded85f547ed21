package qna

import (
	"github.com/gin-gonic/gin"

	"github.com/luggio/console/internal/domain"
	"github.com/luggio/console/internal/pkg"
)

// QnAHandler handles REST API requests for support tickets.
type QnAHandler struct {
	svc domain.QnAService
}

// NewHandler creates a new QnAHandler with the given service.
func NewHandler(svc domain.QnAService) *QnAHandler {
	return &QnAHandler{svc: svc}
}

// Get handles GET /api/v1/qna/:id.
func (h *QnAHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	qna, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, qna)
}

// List handles GET /api/v1/qna.
func (h *QnAHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Answer handles PUT /api/v1/qna/:id.
func (h *QnAHandler) Answer(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var draft domain.QnADraft
	if !pkg.BindAndValidate(c, &draft) {
		return
	}

	qna, err := h.svc.Answer(c.Request.Context(), id, draft)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, qna)
}

// Delete handles DELETE /api/v1/qna/:id.
func (h *QnAHandler) Delete(c *gin.Context) {
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
