package database

import (
	"context"

	"cleanconnect-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PickupStore is the Mongo implementation of pickup.Store.
type PickupStore struct {
	DB *mongo.Database
}

// InsertPickupRequest appends one document to the pickupRequests collection
// and returns the store-assigned id.
func (s *PickupStore) InsertPickupRequest(ctx context.Context, req *models.PickupRequest) (string, error) {
	result, err := s.DB.Collection("pickupRequests").InsertOne(ctx, req)
	if err != nil {
		return "", err
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	req.ID = oid
	return oid.Hex(), nil
}
