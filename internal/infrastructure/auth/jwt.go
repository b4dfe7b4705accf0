package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vforit/ticktrack/internal/shared/biztime"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims carried by every issued token. Fresh marks access tokens minted
// directly by login; tokens minted via refresh are not fresh and cannot
// drive the endpoints that demand recent credential entry.
type Claims struct {
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	TokenType TokenType `json:"token_type"`
	Fresh     bool      `json:"fresh"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type JWTService struct {
	secret            []byte
	accessExpMinutes  int
	refreshExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes, refreshExpMinutes int) *JWTService {
	return &JWTService{
		secret:            []byte(secret),
		accessExpMinutes:  accessExpMinutes,
		refreshExpMinutes: refreshExpMinutes,
	}
}

// Generate issues a fresh access token and a refresh token for the user.
func (s *JWTService) Generate(userID uint, username string) (*TokenPair, error) {
	now := biztime.NowUTC()

	accessTokenString, err := s.sign(userID, username, TokenTypeAccess, true, now,
		time.Duration(s.accessExpMinutes)*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshTokenString, err := s.sign(userID, username, TokenTypeRefresh, false, now,
		time.Duration(s.refreshExpMinutes)*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
		ExpiresIn:    int64(s.accessExpMinutes * 60),
	}, nil
}

// GenerateAccess issues a non-fresh access token, used when minting from a
// refresh token.
func (s *JWTService) GenerateAccess(userID uint, username string) (string, error) {
	now := biztime.NowUTC()
	token, err := s.sign(userID, username, TokenTypeAccess, false, now,
		time.Duration(s.accessExpMinutes)*time.Minute)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, nil
}

func (s *JWTService) sign(userID uint, username string, tokenType TokenType, fresh bool, now time.Time, ttl time.Duration) (string, error) {
	jti, err := newTokenID()
	if err != nil {
		return "", err
	}

	claims := &Claims{
		UserID:    userID,
		Username:  username,
		TokenType: tokenType,
		Fresh:     fresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// RemainingLifetime returns how long the token stays valid, used to bound
// revocation entries so the store does not accumulate dead IDs.
func (c *Claims) RemainingLifetime() time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	remaining := time.Until(c.ExpiresAt.Time)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// newTokenID generates a random 128-bit token identifier.
func newTokenID() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate token ID: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
