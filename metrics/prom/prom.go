// Package prom provides a Prometheus-backed ttlcache.Metrics implementation.
package prom

import (
	"github.com/nmamano/ttlcache"
	"github.com/prometheus/client_golang/prometheus"
)

// Adapter implements ttlcache.Metrics and exports Prometheus counters and
// gauges. All Prometheus metric types are goroutine-safe, but the cache
// itself is not — Adapter is safe to register once and read concurrently
// with Prometheus scraping even though the cache driving it must stay
// single-threaded.
type Adapter struct {
	hits     prometheus.Counter
	misses   prometheus.Counter
	evicts   *prometheus.CounterVec
	sizeEnt  prometheus.Gauge
	loadFact prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:         registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels: static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "hits_total",
			Help:        "Cache hits",
			ConstLabels: constLabels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "misses_total",
			Help:        "Cache misses",
			ConstLabels: constLabels,
		}),
		evicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "evictions_total",
				Help:        "Cache evictions by cause",
				ConstLabels: constLabels,
			},
			[]string{"reason"},
		),
		sizeEnt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "size_entries",
			Help:        "Number of resident entries",
			ConstLabels: constLabels,
		}),
		loadFact: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "load_factor",
			Help:        "size / capacity",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.hits, a.misses, a.evicts, a.sizeEnt, a.loadFact)
	return a
}

// Hit increments the hit counter.
func (a *Adapter) Hit() { a.hits.Inc() }

// Miss increments the miss counter.
func (a *Adapter) Miss() { a.misses.Inc() }

// Evict increments the eviction counter with a reason label.
func (a *Adapter) Evict(r ttlcache.EvictReason) {
	a.evicts.WithLabelValues(reason(r)).Inc()
}

// Size updates the entries gauge and derives the load-factor gauge.
func (a *Adapter) Size(entries int, capacity int) {
	a.sizeEnt.Set(float64(entries))
	if capacity > 0 {
		a.loadFact.Set(float64(entries) / float64(capacity))
	}
}

func reason(r ttlcache.EvictReason) string {
	if r == ttlcache.EvictTTL {
		return "ttl"
	}
	return "lru"
}

// Compile-time check: ensure Adapter implements ttlcache.Metrics.
var _ ttlcache.Metrics = (*Adapter)(nil)
