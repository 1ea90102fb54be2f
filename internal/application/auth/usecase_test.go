package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Costeo-api/internal/application/auth"
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/pkg/jwt"
)

func newAuthUseCase(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.NewAuthUseCase(auth.Config{
		AdminUser:         "operador",
		AdminPasswordHash: string(hash),
		JWTSecret:         "clave-de-prueba",
		JWTIssuer:         "costeo-api",
		JWTExpMinutes:     15,
	})
}

func TestLogin_CredencialesValidasEmiteToken(t *testing.T) {
	uc := newAuthUseCase(t)

	resp, err := uc.Login(dto.LoginRequest{Username: "operador", Password: "secreto123"})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "operador", resp.Username)

	username, err := jwt.Parse("clave-de-prueba", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "operador", username)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Username: "operador", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioDesconocido(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Username: "intruso", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
