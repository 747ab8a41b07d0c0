package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier valida un par usuario/contraseña y emite un token.
// Hoy existe una sola implementación con credencial fija; la interfaz deja
// espacio para un backing multi-usuario sin tocar el resto del servicio.
type CredentialVerifier interface {
	Login(username, password string) (string, error)
}

// AuthService compara contra la credencial fija del servicio. La contraseña
// se guarda como hash bcrypt desde la construcción; nunca en claro.
type AuthService struct {
	username     string
	passwordHash []byte
	jwtServ      *JWTService
}

func NewAuthService(username, password string, jwtServ *JWTService) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash credential: %w", err)
	}
	return &AuthService{
		username:     username,
		passwordHash: hash,
		jwtServ:      jwtServ,
	}, nil
}

// Login devuelve un token firmado si la credencial coincide. Campos vacíos
// simplemente no coinciden; no son un error aparte.
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.username {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwtServ.Generate(username)
}
