// server/internal/api/handlers/tip_handler.go
package handlers

import (
	"context"
	"net/http"

	"cleanconnect-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TipHandler struct {
	DB *mongo.Database
}

// List returns active tips, optionally filtered by category.
func (h *TipHandler) List(c *gin.Context) {
	filter := bson.M{"isActive": true}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}

	cursor, err := h.DB.Collection("tips").Find(context.Background(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query tips"})
		return
	}
	defer cursor.Close(context.Background())

	var tips []models.Tip
	if err = cursor.All(context.Background(), &tips); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode tips"})
		return
	}

	if tips == nil {
		tips = []models.Tip{}
	}

	c.JSON(http.StatusOK, tips)
}

// Random returns one randomly chosen active tip.
func (h *TipHandler) Random(c *gin.Context) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "isActive", Value: true}}}},
		bson.D{{Key: "$sample", Value: bson.D{{Key: "size", Value: 1}}}},
	}
	cursor, err := h.DB.Collection("tips").Aggregate(context.Background(), pipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query tips"})
		return
	}
	defer cursor.Close(context.Background())

	var tips []models.Tip
	if err = cursor.All(context.Background(), &tips); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode tips"})
		return
	}
	if len(tips) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No tips available"})
		return
	}

	c.JSON(http.StatusOK, tips[0])
}
