// server/internal/api/handlers/upload_handler.go
package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"cleanconnect-api-server/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ObjectStore is what the upload proxy needs from the media host. The S3
// uploader implements it; tests substitute a stub.
type ObjectStore interface {
	UploadFile(ctx context.Context, file io.Reader, objectKey, contentType string) (string, error)
	DeleteFile(ctx context.Context, objectKey string) error
}

type UploadHandler struct {
	// Store is nil when upload credentials are not configured; every request
	// then fails with a fixed operator-facing message.
	Store         ObjectStore
	MaxSizeBytes  int64
	DefaultFolder string
}

type DeleteUploadRequest struct {
	PublicID string `json:"publicId" binding:"required"`
}

// Accepted image MIME types; image/jpg is tolerated as an alias.
var validImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// Upload accepts one multipart image and proxies it to the media host.
// Type and size are validated before any upstream call is made.
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.Store == nil {
		writeError(c, apperr.New(apperr.Configuration, "Image upload service not configured. Please contact administrator."))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		writeError(c, apperr.New(apperr.Upload, "No file provided"))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !validImageTypes[contentType] {
		writeError(c, apperr.New(apperr.Upload, "Invalid file type. Only JPEG, PNG, and WebP are allowed."))
		return
	}

	if fileHeader.Size > h.MaxSizeBytes {
		writeError(c, apperr.New(apperr.Upload, fmt.Sprintf("File size too large. Maximum size is %dMB.", h.MaxSizeBytes/(1024*1024))))
		return
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = h.DefaultFolder
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeError(c, apperr.Wrap(apperr.Upload, "Failed to read uploaded file", err))
		return
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	objectKey := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	url, err := h.Store.UploadFile(c.Request.Context(), file, objectKey, contentType)
	if err != nil {
		writeError(c, apperr.Wrap(apperr.Persistence, "Upload failed", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "publicId": objectKey})
}

// Delete removes an uploaded asset by its publicId.
func (h *UploadHandler) Delete(c *gin.Context) {
	if h.Store == nil {
		writeError(c, apperr.New(apperr.Configuration, "Image upload service not configured. Please contact administrator."))
		return
	}

	var req DeleteUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.New(apperr.Upload, "No public ID provided"))
		return
	}

	if err := h.Store.DeleteFile(c.Request.Context(), req.PublicID); err != nil {
		writeError(c, apperr.Wrap(apperr.Persistence, "Delete failed", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
