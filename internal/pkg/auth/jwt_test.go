package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(expiry time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: expiry,
		TokenIssuer: "openlms-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(time.Hour)

	token, expiresIn, err := svc.GenerateToken(42, "U001", "an@example.edu", "teacher")
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.AccountID)
	assert.Equal(t, "U001", claims.UserID)
	assert.Equal(t, "an@example.edu", claims.Email)
	assert.Equal(t, "teacher", claims.Role)
	assert.Equal(t, "openlms-test", claims.Issuer)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testService(-time.Minute)

	token, _, err := svc.GenerateToken(1, "U001", "x@example.edu", "student")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.True(t, errors.Is(err, ErrExpiredToken))
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := testService(time.Hour).GenerateToken(1, "U001", "x@example.edu", "student")
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "another-secret", TokenExpiry: time.Hour})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("bearer abc.def.ghi")
	require.NoError(t, err, "scheme comparison is case-insensitive")
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.True(t, errors.Is(err, ErrInvalidFormat))

	_, err = ExtractBearerToken("Basic dXNlcjpwYXNz")
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}
