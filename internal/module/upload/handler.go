package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/luggio/console/internal/domain"
	"github.com/luggio/console/internal/pkg"
)

// allowedExtensions lists the image types partner logos may use.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// UploadHandler stores multipart image uploads and returns the path the
// client substitutes into its draft.
type UploadHandler struct {
	dir      string
	maxBytes int64
}

// NewHandler creates an UploadHandler storing files under dir with the
// given size limit in megabytes.
func NewHandler(dir string, maxSizeMB int) *UploadHandler {
	return &UploadHandler{dir: dir, maxBytes: int64(maxSizeMB) << 20}
}

// Upload handles POST /api/v1/uploads.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "file field is required", err))
		return
	}

	if file.Size > h.maxBytes {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation,
			fmt.Sprintf("file exceeds %d MB", h.maxBytes>>20), nil))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation,
			fmt.Sprintf("file type %q is not allowed", ext), nil))
		return
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeInternal, "failed to prepare upload directory", err))
		return
	}

	// Server-generated name; the original filename never reaches disk.
	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(h.dir, name)); err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeUpload, "failed to store file", err))
		return
	}

	pkg.Success(c, gin.H{"path": "/uploads/" + name})
}
