package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// Ensure a clean environment for the keys we assert on.
	for _, key := range []string{
		"SERVER_PORT", "GIN_MODE", "JWT_EXPIRY_HOURS", "BCRYPT_COST",
		"OFFERING_CACHE_TTL_SECONDS", "ALLOWED_ORIGINS", "MAX_DB_CONNS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 30*time.Second, cfg.OfferingCacheTTL)
	assert.Equal(t, int32(16), cfg.MaxDBConns)
	assert.Nil(t, cfg.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("JWT_EXPIRY_HOURS", "2")
	t.Setenv("OFFERING_CACHE_TTL_SECONDS", "5")
	t.Setenv("ALLOWED_ORIGINS", "https://portal.campushq.edu, https://admin.campushq.edu")

	cfg := Load()

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 5*time.Second, cfg.OfferingCacheTTL)
	assert.Equal(t, []string{"https://portal.campushq.edu", "https://admin.campushq.edu"}, cfg.AllowedOrigins)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("BCRYPT_COST", "not-a-number")

	cfg := Load()
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "login:student:42", CacheKey.StudentSessionKey(42))
	assert.Equal(t, "semester:3:department:1:offerings", CacheKey.OfferingListKey(3, 1))
	assert.Equal(t, "offering:abc:seats", CacheKey.SeatUpdateChannel("abc"))
}
