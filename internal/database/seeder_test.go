// server/internal/database/seeder_test.go
package database

import (
	"testing"

	"cleanconnect-api-server/config"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestSeedAdminSkipsWithoutPassword(t *testing.T) {
	// No password configured means no database access at all.
	require.NoError(t, SeedAdmin(nil, config.AdminConfig{Email: "admin@cleanconnect.in"}))
}

func TestSeedAdminKeepsExistingAccount(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("existing admin is not reseeded", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "cleanconnect.users", mtest.FirstBatch,
			bson.D{{Key: "n", Value: 1}}))

		err := SeedAdmin(mt.DB, config.AdminConfig{Email: "admin@cleanconnect.in", Password: "pw"})
		require.NoError(mt, err)
	})
}
