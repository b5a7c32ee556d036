package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{"server":{"address":":9000"},"pagination":{"pageSize":25},"redis":{"addr":"cache:6379"}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	t.Setenv("APP_CONFIG", path)
	t.Setenv("SERVER_ADDR", ":9100")
	t.Setenv("JWT_ALGORITHM", " hs512 ")
	t.Setenv("JWT_EXPIRATION", "90m")
	t.Setenv("DB_SOCKET", "yes")

	cfg := Load()

	assert.Equal(t, ":9100", cfg.Server.Address)
	assert.Equal(t, 25, cfg.Pagination.PageSize)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, "HS512", cfg.Middleware.JWT.SigningMethod)
	assert.Equal(t, 90*time.Minute, cfg.Middleware.JWT.ExpireDuration)
	assert.True(t, cfg.Database.UseUnixSock)
}

func TestLoad_UnsupportedAlgorithmKeepsDefault(t *testing.T) {
	t.Setenv("APP_CONFIG", filepath.Join(t.TempDir(), "missing.json"))
	t.Setenv("JWT_ALGORITHM", "RS256")

	cfg := Load()
	assert.Equal(t, "HS256", cfg.Middleware.JWT.SigningMethod)
}

func TestLoad_DoesNotMutateDefaults(t *testing.T) {
	t.Setenv("APP_CONFIG", filepath.Join(t.TempDir(), "missing.json"))
	t.Setenv("PAGE_SIZE", "3")

	cfg := Load()
	assert.Equal(t, 3, cfg.Pagination.PageSize)
	assert.Equal(t, 10, Default().Pagination.PageSize)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Middleware.JWT.Secret = "  "
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Pagination.PageSize = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Auth.BcryptCost = 0
	assert.Error(t, cfg.Validate())
}

func TestDSN(t *testing.T) {
	cfg := Default()
	dsn := cfg.DSN()
	assert.True(t, strings.HasPrefix(dsn, "root:root@tcp(localhost:3306)/photos?"), dsn)
	assert.Contains(t, dsn, "clientFoundRows=true")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")

	cfg.Database.UseUnixSock = true
	cfg.Database.Host = "/var/run/mysqld/mysqld.sock"
	assert.Contains(t, cfg.DSN(), "@unix(/var/run/mysqld/mysqld.sock)/photos")
}

func TestSplitEnvList(t *testing.T) {
	assert.Nil(t, splitEnvList(""))
	assert.Equal(t, []string{"a", "b"}, splitEnvList(" a, ,b "))
}
