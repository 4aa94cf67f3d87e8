// server/internal/api/handlers/respond.go
package handlers

import (
	"net/http"

	"cleanconnect-api-server/internal/apperr"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// writeError maps a tagged error to its HTTP status and surfaces the most
// specific message available, matching the one-notification-per-failure
// policy of the client.
func writeError(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.UserMessage(err)})
}

// objectIDParam parses a path parameter as a Mongo object id, writing the 400
// response itself on failure.
func objectIDParam(c *gin.Context, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
	}
	return oid, err
}
