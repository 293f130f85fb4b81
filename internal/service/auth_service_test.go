package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/advising-backend/internal/config"
)

func newTestAuthService(expiry time.Duration) *AuthService {
	cfg := &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  expiry,
		BcryptCost: 4, // Min cost keeps the test fast.
	}
	return NewAuthService(cfg, nil)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	svc := newTestAuthService(time.Hour)

	hash, err := svc.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	require.NoError(t, svc.CheckPassword(hash, "correct horse battery staple"))
	require.ErrorIs(t, svc.CheckPassword(hash, "wrong password"), ErrInvalidCredentials)
}

func TestFacultyTokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(time.Hour)

	token, err := svc.GenerateFacultyToken(42, 3)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeFaculty, claims.TokenType)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, 3, claims.DepartmentID)
	assert.NotEmpty(t, claims.ID)
}

func TestAdminTokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(time.Hour)

	token, err := svc.GenerateAdminToken(7)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeAdmin, claims.TokenType)
	assert.Equal(t, 7, claims.UserID)
	assert.Zero(t, claims.DepartmentID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := newTestAuthService(time.Hour)
	token, err := issuer.GenerateAdminToken(7)
	require.NoError(t, err)

	verifier := NewAuthService(&config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour}, nil)
	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := newTestAuthService(-time.Minute)

	token, err := svc.GenerateAdminToken(7)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(time.Hour)

	_, err := svc.ValidateToken("not.a.jwt")
	require.Error(t, err)
}
