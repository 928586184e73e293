package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

// successEnvelope is the canonical success response:
// {"error": false, "message": ..., "data": ...}.
type successEnvelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, successEnvelope{Error: false, Data: data})
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, successEnvelope{Error: false, Message: message})
}

// bindStrict decodes the request body rejecting unknown fields. Update
// endpoints use it so a mistyped field name fails loudly instead of being
// silently dropped.
func bindStrict(c echo.Context, v any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return nil
}
