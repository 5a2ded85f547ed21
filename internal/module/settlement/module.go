package settlement

import "github.com/gin-gonic/gin"

// SettlementModule implements the app.Module interface for the settlement domain.
type SettlementModule struct {
	handler *SettlementHandler
}

// NewModule creates a new SettlementModule with the given handler.
// Panics if h is nil.
func NewModule(h *SettlementHandler) *SettlementModule {
	if h == nil {
		panic("settlement.NewModule: handler must not be nil")
	}
	return &SettlementModule{handler: h}
}

// RegisterRoutes registers settlement API routes.
func (m *SettlementModule) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/settlements/summary", m.handler.Summary)
	api.GET("/settlements/:id", m.handler.Get)
	api.GET("/settlements", m.handler.List)
	api.POST("/settlements/:id/retry", m.handler.Retry)
}
