// Package metrics defines and registers all custom Prometheus metrics for the
// onboarding system. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// init via promauto, so importing this package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "onboarding"

// ── Transition metrics ────────────────────────────────────────────────────────

// TransitionsTotal counts lifecycle transitions by outcome.
// Labels:
//   - transition: the requested transition (e.g. "accept", "archive")
//   - result: "ok", "denied" (guard rejected it), or "error"
var TransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transitions_total",
		Help:      "Total number of lifecycle transitions attempted, by transition and result.",
	},
	[]string{"transition", "result"},
)

// TransitionDuration measures how long a single transition takes end-to-end,
// including lock acquisition and persistence.
var TransitionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "transition_duration_seconds",
		Help:      "Duration of a lifecycle transition from lock acquisition to commit.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"transition"},
)

// StepUpdatesTotal counts checklist step edits.
// Label:
//   - step: the checklist step name (e.g. "documents", "contract")
var StepUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "step_updates_total",
		Help:      "Total number of onboarding checklist step updates applied.",
	},
	[]string{"step"},
)

// ── Provisioning metrics ──────────────────────────────────────────────────────

// ProvisioningTotal counts employee provisioning attempts.
// Label:
//   - result: "created", "replayed" (account already existed), or "error"
var ProvisioningTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provisioning_total",
		Help:      "Total number of employee provisioning attempts, by result.",
	},
	[]string{"result"},
)

// RejectionsTotal counts rejections by pipeline stage.
// Label:
//   - stage: "application", "onboarding", or "employment"
var RejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rejections_total",
		Help:      "Total number of applicants rejected, by pipeline stage.",
	},
	[]string{"stage"},
)
