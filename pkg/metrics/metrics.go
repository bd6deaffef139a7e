package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/uranus"
)

// Collector implements uranus.Observer.
type Collector struct {
	rulesTotal       *prometheus.CounterVec
	validationsTotal *prometheus.CounterVec
	duration         *prometheus.HistogramVec
}

var _ uranus.Observer = (*Collector)(nil)

// New registers the engine metrics with reg. A nil reg uses the default
// Prometheus registerer. Registering twice with the same registerer panics.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		rulesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uranus_rule_evaluations_total",
				Help: "Total number of rule predicate invocations",
			},
			[]string{"rule", "outcome"}, // outcome: pass, fail or error
		),
		validationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uranus_validations_total",
				Help: "Total number of validation calls",
			},
			[]string{"form", "status"}, // status: valid, invalid or one of the error kinds
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "uranus_validation_duration_seconds",
				Help:    "Duration of validation calls in seconds",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"form"},
		),
	}
}

// RuleEvaluated counts one predicate invocation by rule name and outcome.
func (c *Collector) RuleEvaluated(rule string, outcome uranus.Outcome) {
	c.rulesTotal.WithLabelValues(rule, string(outcome)).Inc()
}

// ValidationCompleted counts a finished validation call by form and Status
// and records its duration.
func (c *Collector) ValidationCompleted(form uranus.Form, valid bool, err error, elapsed time.Duration) {
	c.validationsTotal.WithLabelValues(string(form), Status(valid, err)).Inc()
	c.duration.WithLabelValues(string(form)).Observe(elapsed.Seconds())
}

// Status maps a validation outcome to a low-cardinality label value.
func Status(valid bool, err error) string {
	switch {
	case err == nil && valid:
		return "valid"
	case err == nil:
		return "invalid"
	case errors.Is(err, uranus.ErrConfiguration):
		return "configuration_error"
	case errors.Is(err, uranus.ErrPredicate):
		return "predicate_error"
	case errors.Is(err, uranus.ErrInputShape):
		return "input_error"
	}
	return "error"
}
