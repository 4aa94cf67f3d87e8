package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"cleanconnect-api-server/internal/models"
	"cleanconnect-api-server/internal/pickup"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type recordingPickupStore struct {
	mu      sync.Mutex
	inserts int
}

func (s *recordingPickupStore) InsertPickupRequest(_ context.Context, _ *models.PickupRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inserts++
	return "id", nil
}

func performCreatePickup(h *PickupHandler, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/pickups", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.CreatePickup(c)
	return w
}

func TestCreatePickupRejectsFourImages(t *testing.T) {
	store := &recordingPickupStore{}
	h := &PickupHandler{Service: pickup.NewService(store)}

	body := `{
		"wasteType": "plastic",
		"estimatedWeight": "5",
		"address": "12 MG Road",
		"scheduledDate": "2025-01-01",
		"images": ["https://cdn/a.jpg", "https://cdn/b.jpg", "https://cdn/c.jpg", "https://cdn/d.jpg"]
	}`
	w := performCreatePickup(h, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "At most 3 images are allowed")
	assert.Equal(t, 0, store.inserts)
}

func TestCreatePickupAcceptsThreeImagesAtTheCap(t *testing.T) {
	store := &recordingPickupStore{}
	h := &PickupHandler{Service: pickup.NewService(store)}

	body := `{
		"wasteType": "plastic",
		"estimatedWeight": "5",
		"address": "12 MG Road",
		"scheduledDate": "2025-01-01",
		"images": ["https://cdn/a.jpg", "https://cdn/b.jpg", "https://cdn/c.jpg"]
	}`
	w := performCreatePickup(h, body)

	// The cap lets three images through; the gateway then rejects the
	// anonymous test context, proving the request got past the form layer.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, store.inserts)
}
