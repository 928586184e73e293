// Package metrics defines all custom Prometheus metrics for the storefront
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "invalid_credentials", or "locked_out"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts account registrations.
// Label:
//   - kind: "staff" or "customer"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by kind.",
	},
	[]string{"kind"},
)

// AuthFailuresTotal counts requests rejected by the auth middleware.
// Label:
//   - reason: "no_token", "invalid_token", "user_not_found", or "config"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected during authentication.",
	},
	[]string{"reason"},
)

// ForbiddenTotal counts authenticated requests denied by the role policy.
// Label:
//   - action: the denied action ("view", "add", "edit", "delete")
var ForbiddenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forbidden_total",
		Help:      "Total number of requests denied by the authorization policy.",
	},
	[]string{"action"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogWritesTotal counts successful catalog mutations.
// Labels:
//   - entity: "category", "product", "blog", "blog_category", "settings"
//   - action: "add", "edit", "delete"
var CatalogWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_writes_total",
		Help:      "Total number of catalog mutations, by entity and action.",
	},
	[]string{"entity", "action"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks events waiting in each audit dispatcher worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
