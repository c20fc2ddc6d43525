package schema

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// validationsTotal is a Prometheus counter that tracks top-level Validate
// calls.
//
// Labels:
//   - kind: the Kind of the validator being evaluated (e.g. "shape",
//     "taggedUnion"). This shows which schema forms dominate validation
//     traffic.
//   - accepted: "true" if the value was accepted, "false" if it was
//     rejected. This allows tracking rejection rates per schema form.
//
// The counter increments once per call to Validator.Validate, not once per
// node visited, so it measures validation volume rather than schema size.
//
// Usage example in dashboards:
//   - rate(schema_validations_total[5m]) - Validations per second
//   - schema_validations_total{accepted="false"} - Count of rejected values
//   - sum(rate(schema_validations_total{accepted="false"}[5m])) / sum(rate(schema_validations_total[5m])) - Rejection rate
//
// The nolint:gochecknoglobals directive is used because Prometheus metrics
// are intentionally global by design - they need to be registered once and
// accessed throughout the application lifecycle for consistent metric
// collection.
var validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "schema_validations_total",
	Help: "The total number of top-level schema validations",
}, []string{"kind", "accepted"})
