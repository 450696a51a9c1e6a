package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/helpdesk-api/internal/domain"
)

// TokenManager handles issuing and validating JWT tokens.
type TokenManager struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	ttl    time.Duration
}

// NewTokenManager builds a manager for the given shared secret and HMAC
// algorithm. Unknown algorithm names are rejected here, at startup, rather
// than on the first request.
func NewTokenManager(secret, algorithm string, ttlMinutes int) (*TokenManager, error) {
	var method *jwt.SigningMethodHMAC
	switch algorithm {
	case "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("unsupported jwt algorithm %q", algorithm)
	}
	if ttlMinutes <= 0 {
		ttlMinutes = 30
	}
	return &TokenManager{
		secret: []byte(secret),
		method: method,
		ttl:    time.Duration(ttlMinutes) * time.Minute,
	}, nil
}

// Claims describes the JWT payload. The subject is the user's email; the role
// is captured at issue time and goes stale if the stored role changes before
// the token expires.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Generate builds and signs a token for the given email and role.
func (tm *TokenManager) Generate(email string, role domain.Role) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(tm.method, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse validates signature, signing method and expiry, and returns claims.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != tm.method {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
