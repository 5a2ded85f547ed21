package qna

import "github.com/gin-gonic/gin"

// QnAModule implements the app.Module interface for the support ticket domain.
type QnAModule struct {
	handler *QnAHandler
}

// NewModule creates a new QnAModule with the given handler.
// Panics if h is nil.
func NewModule(h *QnAHandler) *QnAModule {
	if h == nil {
		panic("qna.NewModule: handler must not be nil")
	}
	return &QnAModule{handler: h}
}

// RegisterRoutes registers QnA API routes.
func (m *QnAModule) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/qna/:id", m.handler.Get)
	api.GET("/qna", m.handler.List)
	api.PUT("/qna/:id", m.handler.Answer)
	api.DELETE("/qna/:id", m.handler.Delete)
}
