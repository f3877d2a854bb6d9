package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewManager("test-secret", 15)

	token, err := manager.GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", 15).GenerateToken(1)
	require.NoError(t, err)

	_, err = NewManager("secret-b", 15).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	token, err := NewManager("test-secret", -1).GenerateToken(1)
	require.NoError(t, err)

	_, err = NewManager("test-secret", -1).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := NewManager("test-secret", 15).ValidateToken("not.a.token")
	assert.Error(t, err)
}
