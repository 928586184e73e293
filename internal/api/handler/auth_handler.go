package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/merchantry/storefront-api/internal/api/metrics"
	"github.com/merchantry/storefront-api/internal/api/middleware"
	"github.com/merchantry/storefront-api/internal/core/domain"
	"github.com/merchantry/storefront-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates staff or customer credentials and returns a token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  successEnvelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, account, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.LoginsTotal.WithLabelValues("locked_out").Inc()
		default:
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return respond(c, http.StatusOK, authResponse{Token: token, User: account.AsPrincipal()})
}

// RegisterStaff creates a back-office account. The route runs behind
// AuthOptional: the very first staff account needs no token, after that
// only an admin may create accounts.
//
// @Summary      Register a staff account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerStaffRequest  true  "Staff registration"
// @Success      201   {object}  successEnvelope
// @Failure      400   {object}  envelope
// @Failure      403   {object}  envelope
// @Failure      409   {object}  envelope
// @Router       /auth/register [post]
func (h *AuthHandler) RegisterStaff(c echo.Context) error {
	var req registerStaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.RegisterStaffInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     req.Role,
	}
	if principal := middleware.PrincipalFrom(c); principal != nil {
		input.ActingRole = principal.Role
	}

	account, err := h.authService.RegisterStaff(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("staff").Inc()
	return respond(c, http.StatusCreated, account.AsPrincipal())
}

// RegisterCustomer creates a storefront customer account.
//
// @Summary      Register a customer account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerCustomerRequest  true  "Customer registration"
// @Success      201   {object}  successEnvelope
// @Failure      400   {object}  envelope
// @Failure      409   {object}  envelope
// @Router       /auth/customer/register [post]
func (h *AuthHandler) RegisterCustomer(c echo.Context) error {
	var req registerCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.authService.RegisterCustomer(c.Request().Context(), ports.RegisterCustomerInput{
		Email:         req.Email,
		Name:          req.Name,
		Password:      req.Password,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("customer").Inc()
	return respond(c, http.StatusCreated, account.AsPrincipal())
}

// ChangePassword updates the authenticated account's password after
// verifying the current one.
//
// @Summary      Change password
// @Tags         auth
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      changePasswordRequest  true  "Password change"
// @Success      200   {object}  successEnvelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /auth/password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.authService.ChangePassword(c.Request().Context(), principal, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "password updated")
}

// ChangeEmail moves the authenticated account to a new email address. The
// old token keeps its old email claim, so the client must log in again.
//
// @Summary      Change email
// @Tags         auth
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      changeEmailRequest  true  "Email change"
// @Success      200   {object}  successEnvelope
// @Failure      400   {object}  envelope
// @Failure      409   {object}  envelope
// @Router       /auth/email [put]
func (h *AuthHandler) ChangeEmail(c echo.Context) error {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
	}

	var req changeEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.authService.ChangeEmail(c.Request().Context(), principal, req.Email)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, account.AsPrincipal())
}
