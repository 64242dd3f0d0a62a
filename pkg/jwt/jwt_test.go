package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jcastro/personas-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testEmail  = "admin@example.com"
	testIssuer = "personas-api-test"
	testExpMin = 60
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "HS256", testUserID, testEmail, "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, email, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testEmail, email)
	assert.Equal(t, "admin", role)
}

func TestGenerate_AlgoritmoVacioUsaHS256(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "", testUserID, testEmail, "vendedor", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "vendedor", role)
}

func TestGenerate_HS512(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "HS512", testUserID, testEmail, "contador", testIssuer, testExpMin)
	require.NoError(t, err)

	userID, _, _, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
}

func TestGenerate_AlgoritmoNoSoportado(t *testing.T) {
	_, err := pkgjwt.Generate(testSecret, "RS256", testUserID, testEmail, "admin", testIssuer, testExpMin)
	assert.Error(t, err, "solo se admiten algoritmos HMAC")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "HS256", testUserID, testEmail, "admin", testIssuer, testExpMin)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "HS256", testUserID, testEmail, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "HS256", testUserID, testEmail, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestParse_TokenMalformado(t *testing.T) {
	_, _, _, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}
