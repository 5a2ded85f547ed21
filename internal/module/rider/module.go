package rider

import "github.com/gin-gonic/gin"

// RiderModule implements the app.Module interface for the rider domain.
type RiderModule struct {
	handler *RiderHandler
}

// NewModule creates a new RiderModule with the given handler.
// Panics if h is nil.
func NewModule(h *RiderHandler) *RiderModule {
	if h == nil {
		panic("rider.NewModule: handler must not be nil")
	}
	return &RiderModule{handler: h}
}

// RegisterRoutes registers rider API routes.
func (m *RiderModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/riders", m.handler.Create)
	api.GET("/riders/:id", m.handler.Get)
	api.GET("/riders", m.handler.List)
	api.PUT("/riders/:id", m.handler.Update)
	api.DELETE("/riders/:id", m.handler.Delete)
}
