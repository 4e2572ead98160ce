package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m, err := NewTokenManager("secret", time.Hour)
	require.NoError(t, err)

	token, err := m.GenerateToken("alice")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestValidateRejectsOtherSecret(t *testing.T) {
	a, _ := NewTokenManager("secret-a", time.Hour)
	b, _ := NewTokenManager("secret-b", time.Hour)

	token, err := a.GenerateToken("alice")
	require.NoError(t, err)

	_, err = b.ValidateToken(token)
	assert.Error(t, err)
	assert.False(t, IsExpired(err))
}

func TestValidateExpired(t *testing.T) {
	m, _ := NewTokenManager("secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := m.GenerateToken("alice")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, IsExpired(err))
}

func TestValidateRejectsNoneAlgorithm(t *testing.T) {
	m, _ := NewTokenManager("secret", time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Username: "mallory"})
	s, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.ValidateToken(s)
	assert.Error(t, err)
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	_, err := NewTokenManager("", time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
}
