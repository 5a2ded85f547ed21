package partner

import "github.com/gin-gonic/gin"

// PartnerModule implements the app.Module interface for the partner domain.
type PartnerModule struct {
	handler *PartnerHandler
}

// NewModule creates a new PartnerModule with the given handler.
// Panics if h is nil.
func NewModule(h *PartnerHandler) *PartnerModule {
	if h == nil {
		panic("partner.NewModule: handler must not be nil")
	}
	return &PartnerModule{handler: h}
}

// RegisterRoutes registers partner API routes.
func (m *PartnerModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/partners", m.handler.Create)
	api.GET("/partners/:id", m.handler.Get)
	api.GET("/partners", m.handler.List)
	api.PUT("/partners/:id", m.handler.Update)
	api.DELETE("/partners/:id", m.handler.Delete)
}
