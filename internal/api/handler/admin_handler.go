package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/merchantry/storefront-api/internal/api/metrics"
	"github.com/merchantry/storefront-api/internal/core/domain"
	"github.com/merchantry/storefront-api/internal/core/ports"
)

// AdminHandler serves site settings, the staff user list, and the audit
// trail. All routes sit behind Auth plus the relevant Permit action.
type AdminHandler struct {
	catalog  ports.CatalogService
	accounts ports.AccountRepository
	audit    ports.AuditRepository
}

func NewAdminHandler(catalog ports.CatalogService, accounts ports.AccountRepository, audit ports.AuditRepository) *AdminHandler {
	return &AdminHandler{catalog: catalog, accounts: accounts, audit: audit}
}

// GetSettings returns the site settings document.
func (h *AdminHandler) GetSettings(c echo.Context) error {
	settings, err := h.catalog.GetSettings(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, settings)
}

// UpdateSettings patches the site settings document.
//
// @Summary      Update site settings
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      updateSettingsRequest  true  "Settings patch"
// @Success      200   {object}  successEnvelope
// @Failure      400   {object}  envelope
// @Failure      403   {object}  envelope
// @Router       /admin/settings [put]
func (h *AdminHandler) UpdateSettings(c echo.Context) error {
	var req updateSettingsRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	settings, err := h.catalog.UpdateSettings(c.Request().Context(), ports.UpdateSettingsInput{
		Title:       req.Title,
		Logo:        req.Logo,
		Currency:    req.Currency,
		AnalyticsID: req.AnalyticsID,
	})
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("settings", "edit").Inc()
	return respond(c, http.StatusOK, settings)
}

// ListUsers returns staff accounts, optionally filtered by role. Password
// hashes never leave the repository boundary as principals.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	role := c.QueryParam("role")
	if role != "" && !domain.IsStaffRole(role) && role != domain.RoleCustomer {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown role")
	}

	accounts, err := h.accounts.List(c.Request().Context(), role)
	if err != nil {
		return err
	}

	principals := make([]*domain.Principal, 0, len(accounts))
	for i := range accounts {
		principals = append(principals, accounts[i].AsPrincipal())
	}
	return respond(c, http.StatusOK, principals)
}

// ListAudit returns the most recent audit events, newest first.
func (h *AdminHandler) ListAudit(c echo.Context) error {
	limit := 100
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}

	events, err := h.audit.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, events)
}
