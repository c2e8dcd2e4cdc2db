package main

import (
	"sync"
	"testing"
)

func TestScoreCacheProbeStore(t *testing.T) {
	cache := NewScoreCache()

	if _, ok := cache.Probe(42); ok {
		t.Fatalf("expected miss on empty cache")
	}
	cache.Store(42, -7)
	score, ok := cache.Probe(42)
	if !ok || score != -7 {
		t.Fatalf("expected hit with score -7, got %d ok=%v", score, ok)
	}
	if cache.Len() != 1 {
		t.Fatalf("expected one entry, got %d", cache.Len())
	}

	cache.Clear()
	if cache.Len() != 0 {
		t.Fatalf("expected empty cache after clear, got %d", cache.Len())
	}
}

func TestScoreCacheConcurrentProbeStore(t *testing.T) {
	cache := NewScoreCache()
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			rng := splitmix64{state: seed}
			for i := 0; i < 4000; i++ {
				key := rng.next()
				cache.Store(key, i)
				cache.Probe(key)
				cache.Probe(key ^ 0x9e3779b97f4a7c15)
			}
		}(uint64(g + 1))
	}

	wg.Wait()
	if cache.Len() == 0 {
		t.Fatalf("expected cache to contain entries after concurrent traffic")
	}
}
