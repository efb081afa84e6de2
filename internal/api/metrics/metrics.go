// Package metrics defines the custom Prometheus metrics for the helpdesk
// API. It is the single source of truth for metric names, labels, and help
// strings; the default registry is used, so importing the package is enough
// to register everything before the HTTP server starts.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "helpdesk"

// RegistrationsTotal counts completed user registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered users.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TicketsCreatedTotal counts newly opened tickets.
var TicketsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tickets_created_total",
		Help:      "Total number of tickets created.",
	},
)

// TicketsDeletedTotal counts tickets removed by admins (comment cascade
// included in each deletion).
var TicketsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tickets_deleted_total",
		Help:      "Total number of tickets deleted, comments cascaded.",
	},
)

// StatusChangesTotal counts admin status transitions.
// Label:
//   - status: the new ticket status ("pending", "ongoing", "resolved", "rejected")
var StatusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_changes_total",
		Help:      "Total number of ticket status changes, labelled by new status.",
	},
	[]string{"status"},
)

// CommentsCreatedTotal counts admin comments added to tickets.
var CommentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments added to tickets.",
	},
)
