package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/cantina-api/pkg/jwt"
)

const (
	secret   = "test-secret"
	userID   = "00000000-0000-0000-0000-000000000001"
	username = "maria"
	issuer   = "cantina-api-test"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := jwt.Generate(secret, userID, username, issuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	gotID, gotUsername, err := jwt.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, username, gotUsername)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := jwt.Generate("", userID, username, issuer, 60)
	assert.Error(t, err)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := jwt.Generate(secret, userID, username, issuer, 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro-secret", token)
	assert.Error(t, err)
}

func TestParse_ExpiredToken(t *testing.T) {
	// expiración negativa: el token nace vencido
	token, err := jwt.Generate(secret, userID, username, issuer, -5)
	require.NoError(t, err)

	_, _, err = jwt.Parse(secret, token)
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	_, _, err := jwt.Parse(secret, "no-es-un-jwt")
	assert.Error(t, err)
}
