package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User account types.
const (
	UserTypeHousehold = "household"
	UserTypeRecycler  = "recycler"
	UserTypeBusiness  = "business"
	UserTypeAdmin     = "admin"
)

// User struct matches the document in MongoDB.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	Password  string             `bson:"password" json:"-"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   string             `bson:"address,omitempty" json:"address,omitempty"`
	UserType  string             `bson:"userType" json:"userType"` // household, recycler, business, admin
	Points    int                `bson:"points" json:"points"`     // gamification balance
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsValidUserType reports whether t is an accepted account type for signup.
// Admin accounts are seeded, never self-registered.
func IsValidUserType(t string) bool {
	switch t {
	case UserTypeHousehold, UserTypeRecycler, UserTypeBusiness:
		return true
	}
	return false
}
