// server/internal/api/handlers/challenge_handler.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"cleanconnect-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChallengeHandler struct {
	DB *mongo.Database
}

type UpdateProgressRequest struct {
	Progress float64 `json:"progress" binding:"min=0"`
}

// List returns challenges. With ?active=1 only currently running ones are
// returned, soonest ending first; otherwise everything, newest ending first.
func (h *ChallengeHandler) List(c *gin.Context) {
	filter := bson.M{}
	sort := bson.D{{Key: "endDate", Value: -1}}
	if c.Query("active") == "1" {
		filter = bson.M{"isActive": true, "endDate": bson.M{"$gte": time.Now()}}
		sort = bson.D{{Key: "endDate", Value: 1}}
	}

	cursor, err := h.DB.Collection("challenges").Find(context.Background(), filter, options.Find().SetSort(sort))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query challenges"})
		return
	}
	defer cursor.Close(context.Background())

	var challenges []models.Challenge
	if err = cursor.All(context.Background(), &challenges); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode challenges"})
		return
	}

	if challenges == nil {
		challenges = []models.Challenge{}
	}

	c.JSON(http.StatusOK, challenges)
}

// Get returns one challenge by document id.
func (h *ChallengeHandler) Get(c *gin.Context) {
	oid, err := objectIDParam(c, c.Param("id"))
	if err != nil {
		return
	}

	var challenge models.Challenge
	err = h.DB.Collection("challenges").FindOne(context.Background(), bson.M{"_id": oid}).Decode(&challenge)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve challenge"})
		}
		return
	}

	c.JSON(http.StatusOK, challenge)
}

// ListMyProgress returns the authenticated user's progress across every
// challenge they have joined.
func (h *ChallengeHandler) ListMyProgress(c *gin.Context) {
	userID := c.GetString("user_id")

	cursor, err := h.DB.Collection("userProgress").Find(context.Background(), bson.M{"userID": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query progress"})
		return
	}
	defer cursor.Close(context.Background())

	var progress []models.UserProgress
	if err = cursor.All(context.Background(), &progress); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode progress"})
		return
	}

	if progress == nil {
		progress = []models.UserProgress{}
	}

	c.JSON(http.StatusOK, progress)
}

// Join adds the authenticated user to a challenge's participants and creates
// a zero progress entry if one does not exist.
func (h *ChallengeHandler) Join(c *gin.Context) {
	challengeID := c.Param("id")
	userID := c.GetString("user_id")

	oid, err := objectIDParam(c, challengeID)
	if err != nil {
		return
	}

	result, err := h.DB.Collection("challenges").UpdateOne(
		context.Background(),
		bson.M{"_id": oid},
		bson.M{"$addToSet": bson.M{"participants": userID}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join challenge"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
		return
	}

	// Initialize progress once; later joins keep the existing entry.
	progressColl := h.DB.Collection("userProgress")
	count, err := progressColl.CountDocuments(context.Background(), bson.M{"userID": userID, "challengeID": challengeID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize progress"})
		return
	}
	if count == 0 {
		_, err = progressColl.InsertOne(context.Background(), models.UserProgress{
			UserID:      userID,
			ChallengeID: challengeID,
			Progress:    0,
			LastUpdated: time.Now(),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize progress"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Joined challenge successfully"})
}

// GetProgress returns the authenticated user's progress on one challenge.
func (h *ChallengeHandler) GetProgress(c *gin.Context) {
	challengeID := c.Param("id")
	userID := c.GetString("user_id")

	var progress models.UserProgress
	err := h.DB.Collection("userProgress").FindOne(
		context.Background(),
		bson.M{"userID": userID, "challengeID": challengeID},
	).Decode(&progress)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "No progress found for this challenge"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve progress"})
		}
		return
	}

	c.JSON(http.StatusOK, progress)
}

// UpdateProgress upserts the authenticated user's progress on one challenge.
func (h *ChallengeHandler) UpdateProgress(c *gin.Context) {
	challengeID := c.Param("id")
	userID := c.GetString("user_id")

	var req UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.DB.Collection("userProgress").UpdateOne(
		context.Background(),
		bson.M{"userID": userID, "challengeID": challengeID},
		bson.M{"$set": bson.M{"progress": req.Progress, "lastUpdated": time.Now()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Progress updated successfully"})
}
