package domain

import "time"

// Audit event kinds recorded by the auth and catalog flows.
const (
	AuditLoginOK        = "login_ok"
	AuditLoginFailed    = "login_failed"
	AuditRegistered     = "registered"
	AuditPasswordChange = "password_changed"
	AuditEmailChange    = "email_changed"
	AuditBootstrap      = "bootstrap_admin_created"
	AuditCatalogWrite   = "catalog_write"
)

// AuditEvent is an append-only record of a security-relevant action.
// Email is the acting (or attempted) account email; Detail is free-form.
type AuditEvent struct {
	Email     string    `json:"email"`
	Kind      string    `json:"kind"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
