// server/internal/pickup/service.go
package pickup

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"cleanconnect-api-server/internal/apperr"
	"cleanconnect-api-server/internal/models"
	"cleanconnect-api-server/internal/pricing"

	"github.com/google/uuid"
)

// Store persists pickup request documents. The Mongo implementation lives in
// internal/database.
type Store interface {
	InsertPickupRequest(ctx context.Context, req *models.PickupRequest) (string, error)
}

// Identity carries the two ids the submission gateway may resolve a user
// from: the profile document id, and the auth session id as fallback.
type Identity struct {
	ProfileID string
	SessionID string
}

// Service is the submission gateway: it validates a draft, resolves the
// acting user, prices the request and hands the document to the store.
type Service struct {
	Store Store

	// AssignRecycler is an optional extension point for recycler matching.
	// There is no default implementation; when nil (always, today) the
	// request is created unassigned.
	AssignRecycler func(req *models.PickupRequest) (string, bool)

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewService builds a submission gateway over the given store.
func NewService(store Store) *Service {
	return &Service{
		Store:    store,
		Now:      time.Now,
		inFlight: make(map[string]struct{}),
	}
}

// Submit validates and persists one pickup request. Preconditions are checked
// in order and the first failure wins. Only one submission per user may be in
// flight at a time; a second concurrent call fails without touching the store.
func (s *Service) Submit(ctx context.Context, id Identity, draft Draft) (*models.PickupRequest, error) {
	userID := id.ProfileID
	if userID == "" {
		userID = id.SessionID
	}
	if userID == "" {
		return nil, apperr.New(apperr.NotAuthenticated, "Please sign in to schedule a pickup")
	}

	if !s.begin(userID) {
		return nil, apperr.New(apperr.Validation, "A pickup submission is already in progress")
	}
	defer s.end(userID)

	wasteType := models.WasteType(draft.WasteType)
	if draft.WasteType == "" || !models.IsValidWasteType(wasteType) {
		return nil, apperr.New(apperr.Validation, "Please select a waste type")
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(draft.EstimatedWeight), 64)
	if err != nil || weight <= 0 {
		return nil, apperr.New(apperr.Validation, "Estimated weight must be a positive number")
	}

	if strings.TrimSpace(draft.Address) == "" {
		return nil, apperr.New(apperr.Validation, "Pickup address is required")
	}

	if draft.ScheduledDate == "" {
		return nil, apperr.New(apperr.Validation, "Scheduled date is required")
	}
	scheduledDate, err := time.Parse("2006-01-02", draft.ScheduledDate)
	if err != nil {
		return nil, apperr.New(apperr.Validation, "Scheduled date must be in YYYY-MM-DD format")
	}

	if !models.IsValidTimeSlot(draft.ScheduledTime) {
		return nil, apperr.New(apperr.Validation, "Invalid preferred time slot")
	}

	now := s.Now()
	req := &models.PickupRequest{
		RequestID:       fmt.Sprintf("PICK-%s", uuid.New().String()[:8]),
		UserID:          userID,
		RecyclerID:      "",
		WasteType:       wasteType,
		EstimatedWeight: weight,
		Address:         strings.TrimSpace(draft.Address),
		ScheduledDate:   scheduledDate,
		ScheduledTime:   draft.ScheduledTime,
		Status:          models.StatusPending,
		EstimatedPrice:  pricing.Estimate(wasteType, draft.EstimatedWeight),
		Notes:           draft.Notes,
		Images:          draft.Images,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if s.AssignRecycler != nil {
		if recyclerID, ok := s.AssignRecycler(req); ok {
			req.RecyclerID = recyclerID
		}
	}

	if _, err := s.Store.InsertPickupRequest(ctx, req); err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "Failed to create pickup request", err)
	}

	return req, nil
}

func (s *Service) begin(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[userID]; busy {
		return false
	}
	s.inFlight[userID] = struct{}{}
	return true
}

func (s *Service) end(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, userID)
}
