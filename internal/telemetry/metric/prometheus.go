package metric

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/yndnr/tokrand-go/internal/core/domain"
	"github.com/yndnr/tokrand-go/pkg/entropy"
)

const namespace = "tokrand"

// Registry holds all application metrics.
type Registry struct {
	reg *prometheus.Registry

	entropyGenerated *prometheus.CounterVec
	providerSkipped  *prometheus.CounterVec
	tokensGenerated  *prometheus.CounterVec
}

// NewRegistry creates a registry with every tokrand metric registered.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		entropyGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "entropy",
			Name:      "generated_total",
			Help:      "Entropy buffers served, by provider and strength.",
		}, []string{"provider", "strength"}),
		providerSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "entropy",
			Name:      "provider_skipped_total",
			Help:      "Providers that failed and were skipped, by error code.",
		}, []string{"provider", "code"}),
		tokensGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_generated_total",
			Help:      "Tokens derived, by hash algorithm.",
		}, []string{"algorithm"}),
	}

	r.reg.MustRegister(r.entropyGenerated, r.providerSkipped, r.tokensGenerated)
	return r
}

// Served implements entropy.Observer.
func (r *Registry) Served(provider string, strength entropy.Strength) {
	r.entropyGenerated.WithLabelValues(provider, strength.String()).Inc()
}

// Skipped implements entropy.Observer.
func (r *Registry) Skipped(provider string, err error) {
	code := domain.GetErrorCode(err)
	if code == "" {
		code = "unknown"
	}
	r.providerSkipped.WithLabelValues(provider, code).Inc()
}

// TokenGenerated implements token.Observer.
func (r *Registry) TokenGenerated(algorithm string) {
	r.tokensGenerated.WithLabelValues(algorithm).Inc()
}

// Gatherer returns the underlying Prometheus gatherer.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteText writes every metric family in Prometheus text format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
