package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/orderdesk/order-management-api/internal/core/domain"
)

// TokenService issues and verifies signed, time-limited bearer tokens.
// Validity is purely a function of the signature and expiry claim; there is
// no revocation list.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokenService builds a TokenService for the given shared secret and HMAC
// algorithm ("HS256", "HS384" or "HS512"). Any other algorithm is rejected.
func NewTokenService(secret, algorithm string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("token service: secret must not be empty")
	}
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("token service: unsupported signing algorithm %q", algorithm)
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: []byte(secret), method: method, ttl: ttl}, nil
}

// Issue signs a token carrying the subject and an expiry of now + TTL.
func (s *TokenService) Issue(subject string) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(s.ttl).Unix(),
	}
	return jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
}

// Verify parses and validates a token, returning its subject. Every failure
// mode (bad signature, wrong algorithm, expiry, missing subject) yields
// domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", domain.ErrInvalidToken
	}
	return subject, nil
}
