package usecases

import (
	"github.com/vforit/ticktrack/internal/infrastructure/auth"
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	Generate(userID uint, username string) (*auth.TokenPair, error)
	GenerateAccess(userID uint, username string) (string, error)
	Verify(tokenString string) (*auth.Claims, error)
}
