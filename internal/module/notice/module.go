package notice

import "github.com/gin-gonic/gin"

// NoticeModule implements the app.Module interface for the notice domain.
type NoticeModule struct {
	handler *NoticeHandler
}

// NewModule creates a new NoticeModule with the given handler.
// Panics if h is nil.
func NewModule(h *NoticeHandler) *NoticeModule {
	if h == nil {
		panic("notice.NewModule: handler must not be nil")
	}
	return &NoticeModule{handler: h}
}

// RegisterRoutes registers notice API routes.
func (m *NoticeModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/notices", m.handler.Create)
	api.GET("/notices/:id", m.handler.Get)
	api.GET("/notices", m.handler.List)
	api.PUT("/notices/:id", m.handler.Update)
	api.DELETE("/notices/:id", m.handler.Delete)
}
