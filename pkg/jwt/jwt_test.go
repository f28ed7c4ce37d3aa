package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Styllo-POS/pkg/jwt"
)

const secret = "segredo-de-teste"

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "sess-1", "52998224725", "Funcionario", "styllo-test", 5)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID())
	assert.Equal(t, "52998224725", claims.Username)
	assert.Equal(t, "Funcionario", claims.Role)
}

func TestParse_Rejects(t *testing.T) {
	expired, err := pkgjwt.Generate(secret, "sess-1", "admin", "Administrador", "styllo-test", -1)
	require.NoError(t, err)
	_, err = pkgjwt.Parse(secret, expired)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken, "expirado")

	other, err := pkgjwt.Generate("otro-secreto", "sess-1", "admin", "Administrador", "styllo-test", 5)
	require.NoError(t, err)
	_, err = pkgjwt.Parse(secret, other)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken, "firma")

	_, err = pkgjwt.Parse(secret, "no-es-jwt")
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)

	_, err = pkgjwt.Generate("", "s", "u", "r", "i", 5)
	assert.Error(t, err)
}
