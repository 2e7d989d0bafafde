package ttlcache

import "github.com/nmamano/ttlcache/hashutil"

// HashFn is a deterministic, stateless mapping from key to a non-negative
// hash. No quality requirements beyond reasonable distribution; adversarial
// resistance is the caller's problem.
type HashFn[K comparable] func(K) uint64

// EvictReason explains why an entry left the cache, for Metrics.Evict.
type EvictReason int

const (
	// EvictLRU: the entry was the least-recently-used one, displaced to keep
	// size within maxLoadFactor*capacity.
	EvictLRU EvictReason = iota
	// EvictTTL: the entry's TTL had elapsed when a cluster was repaired.
	EvictTTL
)

// Metrics exposes cache-level observability hooks, called synchronously
// from Get/Insert/RemoveExpired. A NoopMetrics implementation is used by
// default; metrics/prom provides a Prometheus-backed one.
type Metrics interface {
	Hit()
	Miss()
	Evict(reason EvictReason)
	Size(entries int, capacity int)
}

// NoopMetrics is the default Metrics implementation: it does nothing.
type NoopMetrics struct{}

func (NoopMetrics) Hit()                      {}
func (NoopMetrics) Miss()                     {}
func (NoopMetrics) Evict(EvictReason)         {}
func (NoopMetrics) Size(entries, capacity int) {}

var _ Metrics = NoopMetrics{}

// Config configures a TtlCache. Zero values are not generally safe:
// MaxEntries and MaxLoadFactor must be supplied explicitly (see New's
// validation); HashFn and Metrics default when left nil.
type Config[K comparable, V any] struct {
	// MaxEntries is the user-requested ceiling on live entry count. Must be >= 2.
	MaxEntries int

	// MaxLoadFactor bounds probe performance; must be in [0.01, 0.5].
	// Capacity is derived as ceil(MaxEntries / MaxLoadFactor).
	MaxLoadFactor float64

	// HashFn hashes keys. Defaults to hashutil.FNV64a[K] when nil, which
	// covers strings, byte slices, [16|32|64]byte arrays, integer types, and
	// fmt.Stringer.
	HashFn HashFn[K]

	// Metrics receives Hit/Miss/Evict/Size signals. Defaults to NoopMetrics.
	Metrics Metrics
}

func (c *Config[K, V]) setDefaults() {
	if c.HashFn == nil {
		c.HashFn = hashutil.FNV64a[K]
	}
	if c.Metrics == nil {
		c.Metrics = NoopMetrics{}
	}
}
