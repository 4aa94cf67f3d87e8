// server/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "cleanconnect", cfg.Mongo.DBName)
	assert.Equal(t, "24h", cfg.JWT.Expiration)
	assert.Equal(t, int64(10), cfg.Upload.MaxSizeMB)
	assert.Equal(t, "cleanconnect", cfg.Upload.DefaultFolder)
	assert.Equal(t, "admin@cleanconnect.in", cfg.Admin.Email)
	assert.Empty(t, cfg.Admin.Password)
}

func TestLoadConfigReadsAdminCredentialsFromEnv(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "ops@cleanconnect.in")
	t.Setenv("ADMIN_PASSWORD", "super-secret")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "ops@cleanconnect.in", cfg.Admin.Email)
	assert.Equal(t, "super-secret", cfg.Admin.Password)
}
