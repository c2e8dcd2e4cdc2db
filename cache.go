package main

import "sync"

// ScoreCache memoizes minimax scores keyed by the Zobrist hash of the stone
// placement. The key carries no depth and no side to move: a position
// reached again at a different depth or with the other player to move
// reuses the stored score. Entries are never evicted; the cache lives as
// long as its engine.
type ScoreCache struct {
	mu      sync.RWMutex
	entries map[uint64]int
}

func NewScoreCache() *ScoreCache {
	return &ScoreCache{entries: make(map[uint64]int)}
}

func (c *ScoreCache) Probe(key uint64) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	score, ok := c.entries[key]
	return score, ok
}

func (c *ScoreCache) Store(key uint64, score int) {
	c.mu.Lock()
	c.entries[key] = score
	c.mu.Unlock()
}

func (c *ScoreCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *ScoreCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[uint64]int)
	c.mu.Unlock()
}
