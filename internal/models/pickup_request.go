// server/internal/models/pickup_request.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PickupRequest is a household's ask for a recycler to collect categorized
// waste. EstimatedPrice is a point-in-time snapshot computed at submission;
// it is persisted and never recomputed.
type PickupRequest struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequestID       string             `bson:"requestID" json:"requestID"` // e.g., "PICK-1a2b3c4d"
	UserID          string             `bson:"userID" json:"userID"`
	RecyclerID      string             `bson:"recyclerID" json:"recyclerID"` // empty until assignment exists
	WasteType       WasteType          `bson:"wasteType" json:"wasteType"`
	EstimatedWeight float64            `bson:"estimatedWeight" json:"estimatedWeight"` // kilograms
	Address         string             `bson:"address" json:"address"`
	ScheduledDate   time.Time          `bson:"scheduledDate" json:"scheduledDate"`
	ScheduledTime   string             `bson:"scheduledTime,omitempty" json:"scheduledTime,omitempty"` // morning, afternoon, evening, any
	Status          string             `bson:"status" json:"status"`
	EstimatedPrice  float64            `bson:"estimatedPrice" json:"estimatedPrice"`
	ActualPrice     float64            `bson:"actualPrice,omitempty" json:"actualPrice,omitempty"` // set by the recycler on completion
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Images          []string           `bson:"images,omitempty" json:"images,omitempty"` // hosted image URLs, at most 3
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
