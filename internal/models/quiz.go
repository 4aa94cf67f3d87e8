package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuizQuestion is one entry in the seeded question bank.
type QuizQuestion struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Question      string             `bson:"question" json:"question"`
	Options       []string           `bson:"options" json:"options"`
	CorrectAnswer int                `bson:"correctAnswer" json:"correctAnswer"` // index into Options
	Explanation   string             `bson:"explanation" json:"explanation"`
	Difficulty    string             `bson:"difficulty" json:"difficulty"` // easy, medium, hard
	Category      string             `bson:"category" json:"category"`     // segregation, recycling, environment
	Points        int                `bson:"points" json:"points"`
}

// QuizResult records a completed quiz attempt.
type QuizResult struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         string             `bson:"userID" json:"userID"`
	QuizID         string             `bson:"quizID" json:"quizID"`
	Score          int                `bson:"score" json:"score"`
	TotalQuestions int                `bson:"totalQuestions" json:"totalQuestions"`
	PointsEarned   int                `bson:"pointsEarned" json:"pointsEarned"`
	CompletedAt    time.Time          `bson:"completedAt" json:"completedAt"`
}
