package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/storemanager/inventario-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateYParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user-1", "admin", "storemanager-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "admin", role)
}

func TestParseConSecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user-1", "empleado", "storemanager-test", 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err, "un token firmado con otro secret debe rechazarse")
}

func TestParseTokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user-1", "admin", "storemanager-test", -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un token expirado debe rechazarse")
}

func TestGenerateSinSecret(t *testing.T) {
	_, err := pkgjwt.Generate("", "user-1", "admin", "storemanager-test", 60)
	assert.Error(t, err)
}
