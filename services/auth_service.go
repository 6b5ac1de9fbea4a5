package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

// AuthService is the admin password gate. The league has a single admin
// account configured as a bcrypt hash; a successful login yields a signed
// session token for the write endpoints.
type AuthService interface {
	Login(password string) (string, error)
}

type authService struct {
	adminPasswordHash []byte
	jwtSecret         []byte
}

func NewAuthService(adminPasswordHash string, jwtSecret []byte) AuthService {
	return &authService{
		adminPasswordHash: []byte(adminPasswordHash),
		jwtSecret:         jwtSecret,
	}
}

func (s *authService) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", ErrInvalidPassword
		}
		return "", fmt.Errorf("failed to compare password hash: %w", err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  now.Add(sessionTTL).Unix(),
		"iat":  now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
