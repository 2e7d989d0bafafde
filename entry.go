package ttlcache

// entryNode owns one (key, value) pair and participates in the LRU list via
// prev/next links. There is exactly one entryNode per live key; its lifetime
// begins at insertion of a new key and ends on eviction, expiration, or
// cache teardown.
type entryNode[K comparable, V any] struct {
	key K
	val V

	prev, next *entryNode[K, V]
}

// lruEvictedFlag is the sentinel expiry written into a slot by evictOldest
// so that fixCluster reclaims it through the ordinary TTL path, unifying
// LRU eviction and TTL expiration into one code path. It must be
// distinguishable from any real expiry; negative expiries are otherwise
// meaningless, so -2 never collides with a real timestamp.
const lruEvictedFlag int64 = -2

// slot is a fixed-size element of the probe array: either empty (entry ==
// nil), or a non-owning reference to a live entryNode plus its cached hash
// (to short-circuit probe comparisons and recompute the ideal index during
// repair) and its absolute expiry time.
type slot[K comparable, V any] struct {
	entry    *entryNode[K, V]
	hash     uint64
	expireAt int64
}

func (s *slot[K, V]) isEmpty() bool { return s.entry == nil }

func (s *slot[K, V]) clear() { *s = slot[K, V]{} }
