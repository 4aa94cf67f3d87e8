package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubObjectStore struct {
	uploads   int
	deletes   int
	lastKey   string
	lastType  string
	returnURL string
	err       error
}

func (s *stubObjectStore) UploadFile(_ context.Context, _ io.Reader, objectKey, contentType string) (string, error) {
	s.uploads++
	s.lastKey = objectKey
	s.lastType = contentType
	if s.err != nil {
		return "", s.err
	}
	return s.returnURL, nil
}

func (s *stubObjectStore) DeleteFile(_ context.Context, objectKey string) error {
	s.deletes++
	s.lastKey = objectKey
	return s.err
}

func multipartUpload(t *testing.T, fieldContentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="photo.jpg"`)
	header.Set("Content-Type", fieldContentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func performUpload(h *UploadHandler, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	c.Request.Header.Set("Content-Type", contentType)
	h.Upload(c)
	return w
}

func TestUploadRejectsNonImageBeforeStoreCall(t *testing.T) {
	store := &stubObjectStore{returnURL: "https://cdn.example.com/x.jpg"}
	h := &UploadHandler{Store: store, MaxSizeBytes: 10 << 20, DefaultFolder: "cleanconnect"}

	body, ct := multipartUpload(t, "application/pdf", []byte("%PDF-1.4"))
	w := performUpload(h, body, ct)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid file type")
	assert.Equal(t, 0, store.uploads)
}

func TestUploadRejectsOversizedFileBeforeStoreCall(t *testing.T) {
	store := &stubObjectStore{}
	h := &UploadHandler{Store: store, MaxSizeBytes: 16, DefaultFolder: "cleanconnect"}

	body, ct := multipartUpload(t, "image/jpeg", bytes.Repeat([]byte("a"), 64))
	w := performUpload(h, body, ct)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "File size too large")
	assert.Equal(t, 0, store.uploads)
}

func TestUploadRejectsMissingFile(t *testing.T) {
	store := &stubObjectStore{}
	h := &UploadHandler{Store: store, MaxSizeBytes: 10 << 20, DefaultFolder: "cleanconnect"}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.Close())

	w := performUpload(h, body, writer.FormDataContentType())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No file provided")
	assert.Equal(t, 0, store.uploads)
}

func TestUploadFailsWhenStoreUnconfigured(t *testing.T) {
	h := &UploadHandler{Store: nil, MaxSizeBytes: 10 << 20, DefaultFolder: "cleanconnect"}

	body, ct := multipartUpload(t, "image/jpeg", []byte("jpegdata"))
	w := performUpload(h, body, ct)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "not configured")
}

func TestUploadProxiesValidImage(t *testing.T) {
	store := &stubObjectStore{returnURL: "https://cdn.example.com/cleanconnect/abc.jpg"}
	h := &UploadHandler{Store: store, MaxSizeBytes: 10 << 20, DefaultFolder: "cleanconnect"}

	body, ct := multipartUpload(t, "image/jpeg", []byte("jpegdata"))
	w := performUpload(h, body, ct)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, store.uploads)
	assert.Equal(t, "image/jpeg", store.lastType)
	assert.Regexp(t, `^cleanconnect/[0-9a-f-]{36}\.jpg$`, store.lastKey)
	assert.Contains(t, w.Body.String(), store.returnURL)
	assert.Contains(t, w.Body.String(), store.lastKey)
}

func TestDeleteRemovesAssetByPublicID(t *testing.T) {
	store := &stubObjectStore{}
	h := &UploadHandler{Store: store, MaxSizeBytes: 10 << 20, DefaultFolder: "cleanconnect"}

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/uploads",
		bytes.NewBufferString(`{"publicId":"cleanconnect/abc.jpg"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Delete(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, store.deletes)
	assert.Equal(t, "cleanconnect/abc.jpg", store.lastKey)
}
