package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Tip is a short waste-handling tip shown on the tips page.
type Tip struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Content  string             `bson:"content" json:"content"`
	Category string             `bson:"category" json:"category"` // segregation, recycling, composting, reduction
	IsActive bool               `bson:"isActive" json:"isActive"`
}
