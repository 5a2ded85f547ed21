package upload

import "github.com/gin-gonic/gin"

// UploadModule implements the app.Module interface for file uploads.
type UploadModule struct {
	handler *UploadHandler
}

// NewModule creates a new UploadModule with the given handler.
// Panics if h is nil.
func NewModule(h *UploadHandler) *UploadModule {
	if h == nil {
		panic("upload.NewModule: handler must not be nil")
	}
	return &UploadModule{handler: h}
}

// RegisterRoutes registers upload API routes.
func (m *UploadModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/uploads", m.handler.Upload)
}
