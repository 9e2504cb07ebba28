// SPDX-License-Identifier: MIT

package u3coef

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusObserver exports cache events as Prometheus counters:
//
//	<ns>_coefficient_lookups_total{family,result}   result ∈ hit|miss|direct
//	<ns>_coefficient_blocks_built_total{family}
//	<ns>_coefficient_values_computed_total{family}
type PrometheusObserver struct {
	lookups *prometheus.CounterVec
	builds  *prometheus.CounterVec
	values  *prometheus.CounterVec
}

var _ Observer = (*PrometheusObserver)(nil)

// NewPrometheusObserver creates the counters and registers them on reg.
// A nil reg leaves them unregistered. Registering twice under the same
// namespace reuses the already registered collectors.
func NewPrometheusObserver(reg prometheus.Registerer, namespace string) (*PrometheusObserver, error) {
	p := &PrometheusObserver{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coefficient_lookups_total",
			Help:      "Coefficient lookups by family and result (hit, miss, direct).",
		}, []string{"family", "result"}),
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coefficient_blocks_built_total",
			Help:      "Coefficient blocks constructed from the kernel.",
		}, []string{"family"}),
		values: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coefficient_values_computed_total",
			Help:      "Raw kernel values stored into blocks.",
		}, []string{"family"}),
	}
	if reg == nil {
		return p, nil
	}

	var err error
	if p.lookups, err = register(reg, p.lookups); err != nil {
		return nil, err
	}
	if p.builds, err = register(reg, p.builds); err != nil {
		return nil, err
	}
	if p.values, err = register(reg, p.values); err != nil {
		return nil, err
	}

	return p, nil
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}

	return c, nil
}

// Hit implements Observer.
func (p *PrometheusObserver) Hit(f Family) { p.lookups.WithLabelValues(string(f), "hit").Inc() }

// Miss implements Observer.
func (p *PrometheusObserver) Miss(f Family) { p.lookups.WithLabelValues(string(f), "miss").Inc() }

// Build implements Observer.
func (p *PrometheusObserver) Build(f Family, values int) {
	p.builds.WithLabelValues(string(f)).Inc()
	p.values.WithLabelValues(string(f)).Add(float64(values))
}

// Direct implements Observer.
func (p *PrometheusObserver) Direct(f Family) { p.lookups.WithLabelValues(string(f), "direct").Inc() }
