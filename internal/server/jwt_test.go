package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htaso/evaltracker/internal/config"
)

func testJWTService(secret string) *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: secret, ExpirationHours: 1})
}

func TestJWTGenerateAndValidate(t *testing.T) {
	svc := testJWTService("test-secret")

	token, err := svc.GenerateToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, AdminSubject, claims.TokenSubject())

	// The claims stay a valid jwt.Claims implementation: the embedded
	// two-value GetSubject must not be shadowed by the adapter method.
	subject, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, AdminSubject, subject)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := testJWTService("secret-a").GenerateToken()
	require.NoError(t, err)

	_, err = testJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTRejectsEmptyToken(t *testing.T) {
	_, err := testJWTService("test-secret").ValidateToken("")
	assert.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	_, err := testJWTService("test-secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTValidatorAdapter(t *testing.T) {
	svc := testJWTService("test-secret")
	token, err := svc.GenerateToken()
	require.NoError(t, err)

	claims, err := svc.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, AdminSubject, claims.TokenSubject())
}
