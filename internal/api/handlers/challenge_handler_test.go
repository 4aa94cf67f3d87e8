package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func performJoin(h *ChallengeHandler, userID, challengeID string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/challenges/"+challengeID+"/join", nil)
	c.Params = gin.Params{{Key: "id", Value: challengeID}}
	c.Set("user_id", userID)
	h.Join(c)
	return w
}

func TestJoinChallenge(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("joins and initializes progress", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateCursorResponse(0, "cleanconnect.userProgress", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		h := &ChallengeHandler{DB: mt.DB}
		w := performJoin(h, "user-1", primitive.NewObjectID().Hex())

		assert.Equal(mt, http.StatusOK, w.Code)
		assert.Contains(mt, w.Body.String(), "Joined challenge successfully")
	})

	mt.Run("failed progress init fails the request", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateCursorResponse(0, "cleanconnect.userProgress", mtest.FirstBatch),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11601, Message: "operation was interrupted"}),
		)

		h := &ChallengeHandler{DB: mt.DB}
		w := performJoin(h, "user-1", primitive.NewObjectID().Hex())

		assert.Equal(mt, http.StatusInternalServerError, w.Code)
		assert.Contains(mt, w.Body.String(), "Failed to initialize progress")
	})
}

func TestGetChallenge(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns a challenge by id", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		now := primitive.NewDateTimeFromTime(time.Now())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "cleanconnect.challenges", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "title", Value: "Plastic-Free Week Challenge"},
			{Key: "type", Value: "individual"},
			{Key: "startDate", Value: now},
			{Key: "endDate", Value: now},
			{Key: "isActive", Value: true},
		}))

		h := &ChallengeHandler{DB: mt.DB}
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/challenges/"+oid.Hex(), nil)
		c.Params = gin.Params{{Key: "id", Value: oid.Hex()}}
		h.Get(c)

		assert.Equal(mt, http.StatusOK, w.Code)
		assert.Contains(mt, w.Body.String(), "Plastic-Free Week Challenge")
	})

	mt.Run("unknown id is a 404", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "cleanconnect.challenges", mtest.FirstBatch))

		h := &ChallengeHandler{DB: mt.DB}
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		id := primitive.NewObjectID().Hex()
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/challenges/"+id, nil)
		c.Params = gin.Params{{Key: "id", Value: id}}
		h.Get(c)

		assert.Equal(mt, http.StatusNotFound, w.Code)
	})
}

func TestListMyProgress(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("empty progress is an empty array", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "cleanconnect.userProgress", mtest.FirstBatch))

		h := &ChallengeHandler{DB: mt.DB}
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/users/me/progress", nil)
		c.Set("user_id", "user-1")
		h.ListMyProgress(c)

		assert.Equal(mt, http.StatusOK, w.Code)
		assert.Equal(mt, "[]", w.Body.String())
	})

	mt.Run("lists the user's entries", func(mt *mtest.T) {
		now := primitive.NewDateTimeFromTime(time.Now())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "cleanconnect.userProgress", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "userID", Value: "user-1"},
				{Key: "challengeID", Value: "chal-1"},
				{Key: "progress", Value: 3.5},
				{Key: "lastUpdated", Value: now},
			},
		))

		h := &ChallengeHandler{DB: mt.DB}
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/users/me/progress", nil)
		c.Set("user_id", "user-1")
		h.ListMyProgress(c)

		assert.Equal(mt, http.StatusOK, w.Code)
		assert.Contains(mt, w.Body.String(), `"challengeID":"chal-1"`)
	})
}
