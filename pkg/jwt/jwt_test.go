package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse(t *testing.T) {
	token, err := Generate("secret", "user-1", "admin", "printer-supplies", 5)
	require.NoError(t, err)

	userID, role, err := Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "admin", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := Generate("secret", "user-1", "operator", "printer-supplies", 5)
	require.NoError(t, err)

	_, _, err = Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := Generate("secret", "user-1", "operator", "printer-supplies", -1)
	require.NoError(t, err)

	_, _, err = Parse("secret", token)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := Generate("", "u", "admin", "i", 5)
	assert.Error(t, err)
	_, _, err = Parse("", "x.y.z")
	assert.Error(t, err)
}
