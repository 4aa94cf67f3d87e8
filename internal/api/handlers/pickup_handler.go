// server/internal/api/handlers/pickup_handler.go
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cleanconnect-api-server/internal/models"
	"cleanconnect-api-server/internal/pickup"
	"cleanconnect-api-server/internal/pricing"
	"cleanconnect-api-server/internal/socket"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PickupHandler struct {
	DB      *mongo.Database
	Service *pickup.Service
	Hub     *socket.Hub
}

type CreatePickupRequest struct {
	WasteType       string   `json:"wasteType"`
	EstimatedWeight string   `json:"estimatedWeight"`
	Address         string   `json:"address"`
	ScheduledDate   string   `json:"scheduledDate"` // YYYY-MM-DD
	ScheduledTime   string   `json:"scheduledTime"`
	Notes           string   `json:"notes"`
	Images          []string `json:"images"`
}

type UpdateStatusRequest struct {
	Status      string  `json:"status" binding:"required"`
	ActualPrice float64 `json:"actualPrice"`
}

// GetEstimate prices a prospective request from the fixed table. Weight is
// taken as the raw form string; anything that does not parse estimates to 0.
func (h *PickupHandler) GetEstimate(c *gin.Context) {
	wasteType := models.WasteType(c.Query("wasteType"))
	weight := c.Query("weight")
	c.JSON(http.StatusOK, gin.H{
		"wasteType":      wasteType,
		"estimatedPrice": pricing.Estimate(wasteType, weight),
	})
}

// GetWasteTypes returns the supported categories and their fixed rates.
func (h *PickupHandler) GetWasteTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"wasteTypes": models.AllWasteTypes, "pricePerKg": pricing.PricePerKg})
}

// CreatePickup validates and persists a new pickup request for the
// authenticated user.
func (h *PickupHandler) CreatePickup(c *gin.Context) {
	var req CreatePickupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Form-layer cap: the attachment manager itself accepts any count, the
	// boundary that accepts the form does not.
	if len(req.Images) > pickup.MaxImages {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("At most %d images are allowed", pickup.MaxImages)})
		return
	}

	identity := h.resolveIdentity(c)

	draft := pickup.Draft{
		WasteType:       req.WasteType,
		EstimatedWeight: req.EstimatedWeight,
		Address:         req.Address,
		ScheduledDate:   req.ScheduledDate,
		ScheduledTime:   req.ScheduledTime,
		Notes:           req.Notes,
		Images:          req.Images,
	}

	created, err := h.Service.Submit(c.Request.Context(), identity, draft)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetMyPickups lists the authenticated user's requests, newest first.
func (h *PickupHandler) GetMyPickups(c *gin.Context) {
	userID := c.GetString("user_id")

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := h.DB.Collection("pickupRequests").Find(context.Background(), bson.M{"userID": userID}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query pickup requests"})
		return
	}
	defer cursor.Close(context.Background())

	var requests []models.PickupRequest
	if err = cursor.All(context.Background(), &requests); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode pickup requests"})
		return
	}

	if requests == nil {
		requests = []models.PickupRequest{}
	}

	c.JSON(http.StatusOK, requests)
}

// GetOpenPickups lists pending requests for recyclers, soonest pickup first.
// An optional wasteType query narrows the result.
func (h *PickupHandler) GetOpenPickups(c *gin.Context) {
	filter := bson.M{"status": models.StatusPending}
	if wasteType := c.Query("wasteType"); wasteType != "" {
		filter["wasteType"] = wasteType
	}

	opts := options.Find().SetSort(bson.D{{Key: "scheduledDate", Value: 1}})
	cursor, err := h.DB.Collection("pickupRequests").Find(context.Background(), filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query pickup requests"})
		return
	}
	defer cursor.Close(context.Background())

	var requests []models.PickupRequest
	if err = cursor.All(context.Background(), &requests); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode pickup requests"})
		return
	}

	if requests == nil {
		requests = []models.PickupRequest{}
	}

	c.JSON(http.StatusOK, requests)
}

// GetPickup returns one request by its requestID. Households may only read
// their own.
func (h *PickupHandler) GetPickup(c *gin.Context) {
	requestID := c.Param("id")

	var request models.PickupRequest
	err := h.DB.Collection("pickupRequests").FindOne(context.Background(), bson.M{"requestID": requestID}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pickup request not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pickup request"})
		}
		return
	}

	userType := c.GetString("user_type")
	if userType == models.UserTypeHousehold && request.UserID != c.GetString("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this pickup request"})
		return
	}

	c.JSON(http.StatusOK, request)
}

// UpdateStatus transitions a request (recycler or admin only) and notifies
// the requesting user over the websocket hub.
func (h *PickupHandler) UpdateStatus(c *gin.Context) {
	requestID := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.IsValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown pickup status"})
		return
	}

	set := bson.M{"status": req.Status, "updatedAt": time.Now()}
	if req.ActualPrice > 0 {
		set["actualPrice"] = req.ActualPrice
	}

	collection := h.DB.Collection("pickupRequests")
	var updated models.PickupRequest
	err := collection.FindOneAndUpdate(
		context.Background(),
		bson.M{"requestID": requestID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pickup request not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pickup request"})
		}
		return
	}

	h.notifyStatusChange(&updated)

	c.JSON(http.StatusOK, updated)
}

// Cancel lets the owner cancel a request that is still pending.
func (h *PickupHandler) Cancel(c *gin.Context) {
	requestID := c.Param("id")
	userID := c.GetString("user_id")

	collection := h.DB.Collection("pickupRequests")
	filter := bson.M{"requestID": requestID, "userID": userID, "status": models.StatusPending}
	update := bson.M{"$set": bson.M{"status": models.StatusCancelled, "updatedAt": time.Now()}}

	result, err := collection.UpdateOne(context.Background(), filter, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel pickup request"})
		return
	}
	if result.ModifiedCount == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Pickup request is not pending or does not belong to you"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pickup request cancelled"})
}

// resolveIdentity builds the fallback chain for the submission gateway: the
// profile document id when one exists, else the session id from the token.
func (h *PickupHandler) resolveIdentity(c *gin.Context) pickup.Identity {
	sessionID := c.GetString("user_id")
	identity := pickup.Identity{SessionID: sessionID}

	if sessionID == "" {
		return identity
	}
	user, ok := h.lookupProfile(sessionID)
	if ok {
		identity.ProfileID = user.ID.Hex()
	}
	return identity
}

func (h *PickupHandler) lookupProfile(userID string) (models.User, bool) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.User{}, false
	}
	var user models.User
	err = h.DB.Collection("users").FindOne(context.Background(), bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		return models.User{}, false
	}
	return user, true
}

func (h *PickupHandler) notifyStatusChange(req *models.PickupRequest) {
	if h.Hub == nil {
		return
	}
	notification := map[string]interface{}{
		"event":     "pickup_status_changed",
		"requestID": req.RequestID,
		"status":    req.Status,
	}
	payload, _ := json.Marshal(notification)
	h.Hub.Send(req.UserID, payload)
}
