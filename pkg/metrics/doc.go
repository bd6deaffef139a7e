// Package metrics exports engine activity as Prometheus metrics.
//
// Collector implements uranus.Observer. Attach it to an engine with
// uranus.WithObserver and serve the registry with promhttp:
//
//	reg := prometheus.NewRegistry()
//	engine := uranus.New(uranus.WithObserver(metrics.New(reg)))
//	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
//
// # Metrics
//
//   - uranus_rule_evaluations_total{rule, outcome}: predicate invocations,
//     outcome is "pass", "fail" or "error".
//   - uranus_validations_total{form, status}: validation calls by form
//     ("one", "sequence" or "fields") and Status.
//   - uranus_validation_duration_seconds{form}: validation latency.
//
// Labels are low-cardinality by construction. Field names and values are
// never used as labels; rule names come from the registry, so a registry
// with a bounded set of names keeps the series count bounded too.
//
// # Status
//
// Status maps a call outcome to "valid" or "invalid" for completed
// validations, and to "configuration_error", "predicate_error",
// "input_error" or "error" when validation aborted.
//
// New panics when the same metrics are registered twice with one
// registerer. Use a fresh prometheus.Registry per collector in tests.
package metrics
