package service

import (
	"errors"
	"time"

	"github.com/Diatessaron/Best-Course-Ever/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// minSecretLength is the minimum HMAC secret size accepted at construction.
const minSecretLength = 32

// ErrInvalidToken is returned when a token is malformed, carries a bad
// signature, or has expired.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims represents the identity facts embedded in an issued token.
type Claims struct {
	UserID string        `json:"user_id"`
	Email  string        `json:"email"`
	Roles  []models.Role `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies bearer tokens.
type TokenService interface {
	// Issue produces a signed token embedding the given identity, expiring
	// after the service's configured TTL.
	Issue(userID, email string, roles []models.Role) (string, error)
	// Verify checks structure, signature and expiry, returning the claims.
	Verify(tokenString string) (*Claims, error)
	// Decode reads claims without verifying signature or expiry. It exists
	// solely so logout can compute a blacklist TTL from a token the auth
	// middleware already verified; it must never gate access.
	Decode(tokenString string) (*Claims, error)
	// Expiry returns the configured token lifetime.
	Expiry() time.Duration
}

type tokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a new TokenService instance. Returns nil if the
// secret is shorter than 32 bytes.
func NewTokenService(secret string, expiry time.Duration) TokenService {
	if len(secret) < minSecretLength {
		return nil
	}
	return &tokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

func (s *tokenService) Issue(userID, email string, roles []models.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *tokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *tokenService) Decode(tokenString string) (*Claims, error) {
	var claims Claims
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

func (s *tokenService) Expiry() time.Duration {
	return s.expiry
}
