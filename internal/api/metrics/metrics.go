// Package metrics defines and registers all custom Prometheus metrics for
// the identity API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "identity"

// RegistrationsTotal counts registration attempts.
// Labels:
//   - kind: "user" or "admin"
//   - result: "created", "duplicate", "rejected", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by kind and result.",
	},
	[]string{"kind", "result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "unauthorized", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// NotificationsTotal counts welcome-notification delivery outcomes.
// Label:
//   - result: "sent", "failed", "dropped"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of account notification deliveries, by result.",
	},
	[]string{"result"},
)

// RoleAssignmentFailuresTotal counts admin registrations that created the
// user but failed to assign the role. Every increment is an account that
// needs out-of-band reconciliation.
var RoleAssignmentFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_assignment_failures_total",
		Help:      "Users created without their requested role due to assignment failure.",
	},
)
