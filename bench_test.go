package ttlcache

import (
	"strconv"
	"testing"
)

// benchmarkMix exercises a read/write mix against a warm cache. The cache
// is not concurrency-safe, so unlike a sharded cache's benchmark this runs
// single-threaded (no b.RunParallel).
func benchmarkMix(b *testing.B, readsPct int) {
	c, err := New[string, string](Config[string, string]{MaxEntries: 10_000, MaxLoadFactor: 0.5})
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; i < 5_000; i++ {
		k := "k:" + strconv.Itoa(i)
		if err := c.Insert(k, "v", int64(i), 1_000_000); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	keyMask := (1 << 13) - 1
	clock := int64(5_000)
	for i := 0; i < b.N; i++ {
		k := "k:" + strconv.Itoa(i&keyMask)
		if i%100 < readsPct {
			if _, _, err := c.Get(k, clock); err != nil {
				b.Fatal(err)
			}
		} else {
			if err := c.Insert(k, "v", clock, 1_000_000); err != nil {
				b.Fatal(err)
			}
		}
		clock++
	}
}

func BenchmarkCache_90r10w(b *testing.B) { benchmarkMix(b, 90) }
func BenchmarkCache_50r50w(b *testing.B) { benchmarkMix(b, 50) }

func BenchmarkRemoveExpired(b *testing.B) {
	c, err := New[string, string](Config[string, string]{MaxEntries: 10_000, MaxLoadFactor: 0.5})
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 10_000; i++ {
		k := "k:" + strconv.Itoa(i)
		if err := c.Insert(k, "v", int64(i), 1); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	clock := int64(10_000)
	for i := 0; i < b.N; i++ {
		if err := c.RemoveExpired(clock, 0.2); err != nil {
			b.Fatal(err)
		}
		clock++
	}
}
