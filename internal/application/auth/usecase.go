package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/pkg/jwt"
)

// Config credenciales del operador y parámetros del token. No hay base de
// usuarios: el único operador vive en la configuración, con su contraseña
// ya hasheada con bcrypt.
type Config struct {
	AdminUser         string
	AdminPasswordHash string
	JWTSecret         string
	JWTIssuer         string
	JWTExpMinutes     int
}

// AuthUseCase caso de uso de autenticación: login del operador configurado.
type AuthUseCase struct {
	cfg Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(cfg Config) *AuthUseCase {
	return &AuthUseCase{cfg: cfg}
}

// Login verifica usuario y contraseña contra la configuración y genera el
// JWT. La comparación de usuario es en tiempo constante y el bcrypt se
// evalúa siempre, para no filtrar cuál de los dos campos falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(in.Username), []byte(uc.cfg.AdminUser)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(uc.cfg.AdminPasswordHash), []byte(in.Password))
	if !userOK || passErr != nil {
		return nil, fmt.Errorf("credenciales rechazadas: %w", domain.ErrUnauthorized)
	}

	token, err := jwt.Generate(uc.cfg.JWTSecret, uc.cfg.AdminUser, uc.cfg.JWTIssuer, uc.cfg.JWTExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{Token: token, Username: uc.cfg.AdminUser}, nil
}
