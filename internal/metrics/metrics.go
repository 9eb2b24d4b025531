// Package metrics exposes Prometheus counters for the gate.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "license_gate"

// Recorder owns a private registry so the gate never touches the global one.
// All methods are safe on a nil receiver.
type Recorder struct {
	registry       *prometheus.Registry
	validations    *prometheus.CounterVec
	bootDecisions  *prometheus.CounterVec
	launchAttempts *prometheus.CounterVec
	cacheErrors    *prometheus.CounterVec
}

// New creates a Recorder with all gate collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "License validations by outcome.",
		}, []string{"outcome"}),
		bootDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "boot_decisions_total",
			Help:      "Boot and revalidation decisions by final state.",
		}, []string{"state"}),
		launchAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "launch_attempts_total",
			Help:      "Launch strategy attempts by strategy and result.",
		}, []string{"strategy", "result"}),
		cacheErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_errors_total",
			Help:      "Credential cache tier failures by tier and operation.",
		}, []string{"tier", "op"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		r.validations,
		r.bootDecisions,
		r.launchAttempts,
		r.cacheErrors,
	)

	return r
}

// Validation counts one validation outcome (valid, rejected, error).
func (r *Recorder) Validation(outcome string) {
	if r == nil {
		return
	}

	r.validations.WithLabelValues(outcome).Inc()
}

// BootDecision counts one boot sequencer result.
func (r *Recorder) BootDecision(state string) {
	if r == nil {
		return
	}

	r.bootDecisions.WithLabelValues(state).Inc()
}

// LaunchAttempt counts one strategy attempt.
func (r *Recorder) LaunchAttempt(strategy string, ok bool) {
	if r == nil {
		return
	}

	result := "failure"
	if ok {
		result = "success"
	}

	r.launchAttempts.WithLabelValues(strategy, result).Inc()
}

// CacheError counts one failed cache tier operation.
func (r *Recorder) CacheError(tier, op string) {
	if r == nil {
		return
	}

	r.cacheErrors.WithLabelValues(tier, op).Inc()
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}

	return r.registry
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}

	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
