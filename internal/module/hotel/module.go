package hotel

import "github.com/gin-gonic/gin"

// HotelModule implements the app.Module interface for the hotel domain.
type HotelModule struct {
	handler *HotelHandler
}

// NewModule creates a new HotelModule with the given handler.
// Panics if h is nil.
func NewModule(h *HotelHandler) *HotelModule {
	if h == nil {
		panic("hotel.NewModule: handler must not be nil")
	}
	return &HotelModule{handler: h}
}

// RegisterRoutes registers hotel API routes.
func (m *HotelModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/hotels", m.handler.Create)
	api.GET("/hotels/:id", m.handler.Get)
	api.GET("/hotels", m.handler.List)
	api.PUT("/hotels/:id", m.handler.Update)
	api.DELETE("/hotels/:id", m.handler.Delete)
}
