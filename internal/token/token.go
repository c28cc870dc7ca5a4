package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// signing method, malformed input, expiry. Callers get no finer detail.
var ErrInvalidToken = errors.New("invalid or expired token")

// Service issues and verifies stateless HS256 tokens. Tokens are never
// persisted and there is no refresh mechanism; expiry forces the caller
// back through the user upsert.
type Service struct {
	secret []byte
	expiry time.Duration
}

func NewService(secret string, expiry time.Duration) *Service {
	return &Service{secret: []byte(secret), expiry: expiry}
}

// Issue signs a token carrying the subject email, expiring after the
// configured duration (1 hour by default).
func (s *Service) Issue(subjectEmail string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subjectEmail,
		"iat": now.Unix(),
		"exp": now.Add(s.expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify returns the subject email of a valid, unexpired token.
func (s *Service) Verify(tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
