// Package ttlcache implements a bounded, single-threaded key/value cache
// combining LRU eviction with per-entry TTL expiration.
//
// Design
//
//   - Storage: one fixed-size slot array using open addressing with linear
//     probing. Each slot is a small, cache-friendly record (a non-owning
//     reference to an entry node, its key's cached hash, and its absolute
//     expiry time) — the key and value themselves live off the probe path,
//     in a separately allocated node.
//
//   - LRU: every live entry node is also linked into a doubly-linked list,
//     ordered oldest (head) to newest (tail). Eviction removes the head.
//
//   - TTL: expiration is both passive (every Get/Insert repairs the cluster
//     it touches, discarding anything expired there) and active
//     (RemoveExpired samples the table and repairs whatever clusters it
//     lands on, stopping once the measured expired ratio drops to or below
//     a caller-supplied target).
//
//   - Unification: LRU eviction is implemented by writing a sentinel expiry
//     into the victim's slot and running the same cluster-repair routine
//     TTL uses. There is exactly one code path that removes an entry from
//     the table and restores the open-addressing invariant.
//
// The cache does no I/O, takes no locks, and does not resize. Capacity is
// fixed at construction as ceil(maxEntries / maxLoadFactor) slots.
//
// Basic usage
//
//	c, err := ttlcache.New[string, int](ttlcache.Config[string, int]{
//	    MaxEntries:    1000,
//	    MaxLoadFactor: 0.5,
//	})
//	if err != nil {
//	    // bad configuration
//	}
//	c.Insert("a", 1, 0, 60) // key "a", value 1, inserted at t=0, ttl=60
//	v, ok, err := c.Get("a", 1)
//
// Every public operation takes an explicit timestamp supplied by the
// caller — the cache has no notion of wall-clock time. A harness that
// samples a real or simulated clock and forwards it into Get/Insert/
// RemoveExpired is a thin wrapper external to this package.
//
// Exporting metrics
//
//	m := prom.New(nil, "ttlcache", "demo", nil)
//	c, _ := ttlcache.New[string, int](ttlcache.Config[string, int]{
//	    MaxEntries:    1000,
//	    MaxLoadFactor: 0.5,
//	    Metrics:       m,
//	})
package ttlcache
