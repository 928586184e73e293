package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/merchantry/storefront-api/internal/core/domain"
)

const (
	staffTokenTTL    = 7 * 24 * time.Hour
	customerTokenTTL = 30 * 24 * time.Hour
)

// TokenClaims is the payload carried by every session token.
type TokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies role-scoped session tokens. Staff and
// customer tokens are signed with independent secrets so either population
// can be invalidated by rotating one secret, and a customer token can never
// verify as a staff token.
type TokenService struct {
	staffSecret    string
	customerSecret string
}

func NewTokenService(staffSecret, customerSecret string) *TokenService {
	return &TokenService{staffSecret: staffSecret, customerSecret: customerSecret}
}

// SecretFor returns the verification secret for a claimed role. Unknown
// roles fall back to the staff secret; verification then rejects any token
// not actually signed with it.
func (s *TokenService) SecretFor(role string) (string, error) {
	var secret string
	if role == domain.RoleCustomer {
		secret = s.customerSecret
	} else {
		secret = s.staffSecret
	}
	if secret == "" {
		return "", domain.ErrMissingSecret
	}
	return secret, nil
}

// Issue signs a token for email with the secret and expiry matching role.
func (s *TokenService) Issue(email, role string) (string, error) {
	secret, err := s.SecretFor(role)
	if err != nil {
		return "", err
	}

	ttl := staffTokenTTL
	if role == domain.RoleCustomer {
		ttl = customerTokenTTL
	}

	now := time.Now().UTC()
	claims := TokenClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// DecodeUnverified extracts the claims without checking the signature.
// The result is untrusted and may only be used to pick a verification
// secret; structural failures return ErrInvalidToken.
func (s *TokenService) DecodeUnverified(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// Verify checks the token's signature and expiry against secret. Any
// failure collapses to ErrInvalidToken: an expired token and a forged one
// are indistinguishable to callers.
func (s *TokenService) Verify(token, secret string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
