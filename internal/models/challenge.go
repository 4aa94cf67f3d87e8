package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Challenge is a time-boxed community or individual goal that rewards points.
type Challenge struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Type         string             `bson:"type" json:"type"` // individual or community
	Target       float64            `bson:"target" json:"target"`
	Unit         string             `bson:"unit" json:"unit"` // e.g., "kg", "pickups"
	StartDate    time.Time          `bson:"startDate" json:"startDate"`
	EndDate      time.Time          `bson:"endDate" json:"endDate"`
	Reward       int                `bson:"reward" json:"reward"` // points on completion
	Participants []string           `bson:"participants" json:"participants"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
}

// UserProgress tracks how far a user has come on one challenge.
type UserProgress struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userID" json:"userID"`
	ChallengeID string             `bson:"challengeID" json:"challengeID"`
	Progress    float64            `bson:"progress" json:"progress"`
	LastUpdated time.Time          `bson:"lastUpdated" json:"lastUpdated"`
}
