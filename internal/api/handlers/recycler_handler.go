// server/internal/api/handlers/recycler_handler.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"cleanconnect-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RecyclerHandler struct {
	DB *mongo.Database
}

type RegisterRecyclerRequest struct {
	Name         string                       `json:"name" binding:"required"`
	Phone        string                       `json:"phone" binding:"required"`
	Email        string                       `json:"email"`
	Address      string                       `json:"address" binding:"required"`
	Area         string                       `json:"area" binding:"required"`
	WasteTypes   []models.WasteType           `json:"wasteTypes" binding:"required,min=1"`
	PricePerKg   map[models.WasteType]float64 `json:"pricePerKg"`
	Availability models.Availability          `json:"availability"`
}

type UpdateRatingRequest struct {
	Rating float64 `json:"rating" binding:"required,min=0,max=5"`
}

// Register creates a new recycler profile. Profiles start unverified and do
// not appear in listings until an admin verifies them.
func (h *RecyclerHandler) Register(c *gin.Context) {
	var req RegisterRecyclerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, wt := range req.WasteTypes {
		if !models.IsValidWasteType(wt) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown waste type: " + string(wt)})
			return
		}
	}

	newRecycler := models.Recycler{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		Area:         req.Area,
		WasteTypes:   req.WasteTypes,
		Rating:       0,
		IsVerified:   false,
		PricePerKg:   models.NormalizePriceTable(req.PricePerKg),
		Availability: req.Availability,
		CreatedAt:    time.Now(),
	}

	result, err := h.DB.Collection("recyclers").InsertOne(context.Background(), newRecycler)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register recycler"})
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		newRecycler.ID = oid
	}

	c.JSON(http.StatusCreated, newRecycler)
}

// List returns verified recyclers, best rated first. Optional area and
// wasteType queries narrow the result.
func (h *RecyclerHandler) List(c *gin.Context) {
	filter := bson.M{"isVerified": true}
	if area := c.Query("area"); area != "" {
		filter["area"] = area
	}
	if wasteType := c.Query("wasteType"); wasteType != "" {
		filter["wasteTypes"] = wasteType
	}

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	cursor, err := h.DB.Collection("recyclers").Find(context.Background(), filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query recyclers"})
		return
	}
	defer cursor.Close(context.Background())

	var recyclers []models.Recycler
	if err = cursor.All(context.Background(), &recyclers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode recyclers"})
		return
	}

	if recyclers == nil {
		recyclers = []models.Recycler{}
	}

	c.JSON(http.StatusOK, recyclers)
}

// Get returns one recycler by document id.
func (h *RecyclerHandler) Get(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recycler id"})
		return
	}

	var recycler models.Recycler
	err = h.DB.Collection("recyclers").FindOne(context.Background(), bson.M{"_id": oid}).Decode(&recycler)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recycler not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recycler"})
		}
		return
	}

	c.JSON(http.StatusOK, recycler)
}

// UpdateRating overwrites the recycler's rating. Simplified: the client sends
// the already-averaged value, individual ratings are not stored.
func (h *RecyclerHandler) UpdateRating(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recycler id"})
		return
	}

	var req UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.DB.Collection("recyclers").UpdateOne(
		context.Background(),
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"rating": req.Rating}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rating"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recycler not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating updated successfully"})
}

// Verify marks a recycler profile as verified (admin only).
func (h *RecyclerHandler) Verify(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recycler id"})
		return
	}

	result, err := h.DB.Collection("recyclers").UpdateOne(
		context.Background(),
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"isVerified": true}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify recycler"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recycler not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recycler verified successfully"})
}
