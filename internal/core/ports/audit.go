package ports

import (
	"context"

	"github.com/merchantry/storefront-api/internal/core/domain"
)

// AuditRecorder accepts audit events for asynchronous persistence.
// Record must not block the request path beyond queue backpressure.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditRepository persists and queries the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
	ListRecent(ctx context.Context, limit int) ([]domain.AuditEvent, error)
}

// LoginLimiter throttles repeated failed logins per email.
type LoginLimiter interface {
	// TooManyFailures reports whether email is currently locked out.
	TooManyFailures(ctx context.Context, email string) (bool, error)
	// RecordFailure counts one failed attempt against email.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, email string) error
}
