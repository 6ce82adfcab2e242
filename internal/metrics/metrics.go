// Package metrics defines and registers the custom Prometheus metrics of the
// household API. It is the single source of truth for metric names, labels,
// and help strings. Metrics are registered with the default registry on import
// and scraped through the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "household"

// ── Workflow metrics ─────────────────────────────────────────────────────────

// RoleSelectionsTotal counts role selections.
// Labels:
//   - role: "RESIDENT" or "WORKER"
//   - result: "created" (first selection) or "updated" (re-selection)
var RoleSelectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_selections_total",
		Help:      "Total number of role selections, by role and whether the user was created.",
	},
	[]string{"role", "result"},
)

// ProfilesSavedTotal counts successful profile upserts.
// Label:
//   - kind: "profile" or "worker_profile"
var ProfilesSavedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profiles_saved_total",
		Help:      "Total number of profile upserts, by profile kind.",
	},
	[]string{"kind"},
)

// ListingMutationsTotal counts writes to service posts and requirements.
// Labels:
//   - kind: "service" or "requirement"
//   - action: "create", "toggle" or "delete"
var ListingMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_mutations_total",
		Help:      "Total number of listing writes, by listing kind and action.",
	},
	[]string{"kind", "action"},
)

// VerificationsTotal counts verification attempts.
// Labels:
//   - path: "admin" or "self"
//   - result: "verified", "unverified" or "rejected"
var VerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "verifications_total",
		Help:      "Total number of verification attempts, by path and result.",
	},
	[]string{"path", "result"},
)

// ── Translation metrics ──────────────────────────────────────────────────────

// TranslationsTotal counts single-string translations by how they were served.
// Label:
//   - outcome: "passthrough", "cache_hit", "translated" or "fallback"
var TranslationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "translations_total",
		Help:      "Total number of translations, by outcome.",
	},
	[]string{"outcome"},
)

// LanguageDetectionsTotal counts language detections.
// Label:
//   - result: "detected" or "default"
var LanguageDetectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "language_detections_total",
		Help:      "Total number of language detections, by result.",
	},
	[]string{"result"},
)

// LanguageModelDuration measures calls to the external language model.
// Label:
//   - operation: "translate" or "detect"
var LanguageModelDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "language_model_duration_seconds",
		Help:      "Duration of calls to the external language model.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)
