// server/internal/api/handlers/quiz_handler.go
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"cleanconnect-api-server/internal/apperr"
	"cleanconnect-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuizHandler struct {
	DB *mongo.Database
}

type SubmitResultRequest struct {
	QuizID         string `json:"quizID" binding:"required"`
	Score          int    `json:"score" binding:"min=0"`
	TotalQuestions int    `json:"totalQuestions" binding:"required,min=1"`
	PointsEarned   int    `json:"pointsEarned" binding:"min=0"`
}

// GetQuestions draws a random sample from the question bank. Defaults to 5.
func (h *QuizHandler) GetQuestions(c *gin.Context) {
	count := 5
	if raw := c.Query("count"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 20 {
			count = n
		}
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sample", Value: bson.D{{Key: "size", Value: count}}}},
	}
	cursor, err := h.DB.Collection("quizQuestions").Aggregate(context.Background(), pipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query quiz questions"})
		return
	}
	defer cursor.Close(context.Background())

	var questions []models.QuizQuestion
	if err = cursor.All(context.Background(), &questions); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode quiz questions"})
		return
	}

	if questions == nil {
		questions = []models.QuizQuestion{}
	}

	c.JSON(http.StatusOK, questions)
}

// SubmitResult stores a completed attempt and credits the earned points to
// the user's balance.
func (h *QuizHandler) SubmitResult(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SubmitResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := models.QuizResult{
		UserID:         userID,
		QuizID:         req.QuizID,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		PointsEarned:   req.PointsEarned,
		CompletedAt:    time.Now(),
	}

	if _, err := h.DB.Collection("quizResults").InsertOne(context.Background(), result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save quiz result"})
		return
	}

	if req.PointsEarned > 0 {
		if err := h.creditPoints(userID, req.PointsEarned); err != nil {
			writeError(c, apperr.Wrap(apperr.Persistence, "Failed to credit points", err))
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Quiz result saved", "pointsEarned": req.PointsEarned})
}

// creditPoints adds earned points to the user's balance. The response claims
// the credit, so a failure here fails the whole request.
func (h *QuizHandler) creditPoints(userID string, points int) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return err
	}
	_, err = h.DB.Collection("users").UpdateOne(
		context.Background(),
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"points": points}},
	)
	return err
}
