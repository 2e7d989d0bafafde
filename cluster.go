package ttlcache

// A cluster is a maximal contiguous run of non-empty slots (modulo
// capacity). fixCluster(i) is a no-op if slot i is empty; otherwise it
// removes every expired (or LRU-sentinel-flagged) entry in i's cluster and
// then compacts survivors leftward to restore the open-addressing
// invariant: no empty slot between a key's ideal slot and its actual slot.
func (c *TtlCache[K, V]) fixCluster(i int) {
	if c.slots[i].isEmpty() {
		return
	}

	// Pass 1 — purge. Walk the cluster once, removing expired entries
	// without relocating anything else yet.
	start := c.findClusterStart(i)
	firstRemoved := -1
	idx := start
	for !c.slots[idx].isEmpty() {
		if c.isExpired(idx) {
			c.removeWithoutRelocating(idx)
			if firstRemoved == -1 {
				firstRemoved = idx
			}
		}
		idx = c.nextIndex(idx)
	}

	if firstRemoved == -1 {
		return // nothing removed, so nothing to compact
	}
	clusterEnd := idx

	// Pass 2 — compact. Starting just after the first hole, move each
	// surviving slot as far left as its ideal index allows, without ever
	// moving it past that ideal index. Relocation proceeds strictly
	// left-to-right, preserving relative order among same-ideal-index keys
	// (a batched form of Knuth's backward-shift deletion).
	for idx = c.nextIndex(firstRemoved); idx != clusterEnd; idx = c.nextIndex(idx) {
		if c.slots[idx].isEmpty() {
			continue
		}
		ideal := c.hashToIndex(c.slots[idx].hash)
		if ideal == idx {
			continue
		}
		target := ideal
		for target != idx && !c.slots[target].isEmpty() {
			target = c.nextIndex(target)
		}
		if target != idx {
			c.moveSlot(idx, target)
		}
	}
}

// isExpired reports whether slot i's entry has passed its expiry (or
// carries the LRU-eviction sentinel). Precondition: slot i is non-empty.
func (c *TtlCache[K, V]) isExpired(i int) bool {
	return c.currentTime >= c.slots[i].expireAt
}

// moveSlot transfers a slot's contents (reference, hash, expiry) from
// "from" to "to" and empties "from". Pure field copy; never touches the
// entryNode it refers to.
func (c *TtlCache[K, V]) moveSlot(from, to int) {
	c.slots[to] = c.slots[from]
	c.slots[from].clear()
}

// removeWithoutRelocating deletes the entry at slot i from the hash table
// and the LRU list, reports it to Metrics, and empties the slot — without
// compacting the rest of the cluster. Precondition: slot i is non-empty.
func (c *TtlCache[K, V]) removeWithoutRelocating(i int) {
	reason := EvictTTL
	if c.slots[i].expireAt == lruEvictedFlag {
		reason = EvictLRU
	}
	node := c.slots[i].entry
	c.slots[i].clear()
	c.removeFromList(node)
	c.size--
	c.cfg.Metrics.Evict(reason)
	c.cfg.Metrics.Size(c.size, c.capacity)
}
