package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/merchantry/storefront-api/internal/api/metrics"
	"github.com/merchantry/storefront-api/internal/core/domain"
	"github.com/merchantry/storefront-api/internal/core/ports"
	"github.com/merchantry/storefront-api/internal/core/service"
)

// principalKey is the echo context key the guard stores the principal under.
const principalKey = "principal"

// Auth authenticates the bearer token and injects the principal into the
// request context. Secret selection reads the token's claimed role BEFORE
// verification; that unverified peek only picks the key — the token is
// trusted solely after it verifies against the selected secret.
func Auth(tokens *service.TokenService, accounts ports.AccountRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := authenticate(c, tokens, accounts)
			if err != nil {
				return err
			}
			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// AuthOptional attaches a principal when a valid bearer token is present
// and continues anonymously otherwise. Used on the staff registration
// route, where the very first account is created without a token.
func AuthOptional(tokens *service.TokenService, accounts ports.AccountRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return next(c)
			}
			principal, err := authenticate(c, tokens, accounts)
			if err != nil {
				return err
			}
			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

func authenticate(c echo.Context, tokens *service.TokenService, accounts ports.AccountRepository) (*domain.Principal, error) {
	raw, err := bearerToken(c)
	if err != nil {
		metrics.AuthFailuresTotal.WithLabelValues("no_token").Inc()
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
	}

	// Untrusted claims, read only to select the verification secret.
	claimed, err := tokens.DecodeUnverified(raw)
	if err != nil {
		metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	secret, err := tokens.SecretFor(claimed.Role)
	if err != nil {
		metrics.AuthFailuresTotal.WithLabelValues("config").Inc()
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "authentication not configured")
	}

	// Past this point the claims are authoritative. Expired and forged
	// tokens fail identically.
	claims, err := tokens.Verify(raw, secret)
	if err != nil {
		metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	account, err := accounts.FindByEmail(c.Request().Context(), claims.Email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			metrics.AuthFailuresTotal.WithLabelValues("user_not_found").Inc()
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "User not found")
		}
		return nil, err
	}

	return account.AsPrincipal(), nil
}

func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", domain.ErrNoToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", domain.ErrNoToken
	}
	return parts[1], nil
}

// PrincipalFrom returns the principal attached by Auth, or nil on routes
// where AuthOptional ran without a token.
func PrincipalFrom(c echo.Context) *domain.Principal {
	principal, _ := c.Get(principalKey).(*domain.Principal)
	return principal
}
