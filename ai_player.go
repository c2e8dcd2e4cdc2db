package main

import (
	"errors"
	"log/slog"
	"time"
)

// Terminal scores: a win found at a shallower depth scores more extreme,
// so the engine prefers faster wins and slower losses.
const winScore = 10

const scoreInf = 1 << 30

var ErrNoEmptyCells = errors.New("no empty cells to play")

type SearchStats struct {
	Start       time.Time
	Nodes       int
	Cutoffs     int
	CacheProbes int
	CacheHits   int
	CacheStores int
}

// Engine selects the computer's (O's) move with a depth-limited minimax
// over the caller's board. The board is mutated and restored in place
// during exploration; it is unchanged once any call returns.
type Engine struct {
	depthLimit int
	cache      *ScoreCache
	logger     *slog.Logger
	logStats   bool
}

func NewEngine(cfg AIConfig, logger *slog.Logger) *Engine {
	depth := cfg.Depth
	if depth < 1 {
		depth = 1
	}
	return &Engine{
		depthLimit: depth,
		cache:      NewScoreCache(),
		logger:     logger,
		logStats:   cfg.LogSearchStats,
	}
}

func (e *Engine) Cache() *ScoreCache {
	return e.cache
}

// ChooseMove scans empty cells in row-major order, scores each tentative O
// placement with minimax, and returns the first strictly best cell.
func (e *Engine) ChooseMove(board *Board) (Move, error) {
	stats := &SearchStats{Start: time.Now()}
	hash := BoardHash(*board)
	size := board.Size()
	bestScore := -scoreInf
	bestMove := Move{X: -1, Y: -1}
	found := false
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !board.IsEmpty(x, y) {
				continue
			}
			board.Set(x, y, CellO)
			score := e.minimax(board, hash^zobrist.stone(x, y, CellO), 0, false, -scoreInf, scoreInf, stats)
			board.Remove(x, y)
			if !found || score > bestScore {
				bestScore = score
				bestMove = Move{X: x, Y: y}
				found = true
			}
		}
	}
	if !found {
		return Move{}, ErrNoEmptyCells
	}
	if e.logStats {
		e.logSearchStats(bestMove, bestScore, stats)
	}
	return bestMove, nil
}

func (e *Engine) minimax(board *Board, hash uint64, depth int, maximizing bool, alpha, beta int, stats *SearchStats) int {
	stats.Nodes++
	// Terminal checks run before the cache probe and before the depth cutoff.
	if HasWin(*board, CellO) {
		return winScore - depth
	}
	if HasWin(*board, CellX) {
		return depth - winScore
	}
	if board.IsFull() || depth >= e.depthLimit {
		return 0
	}
	stats.CacheProbes++
	if score, ok := e.cache.Probe(hash); ok {
		stats.CacheHits++
		return score
	}
	size := board.Size()
	if maximizing {
		best := -scoreInf
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if !board.IsEmpty(x, y) {
					continue
				}
				board.Set(x, y, CellO)
				score := EvaluateBoard(*board) + e.minimax(board, hash^zobrist.stone(x, y, CellO), depth+1, false, alpha, beta, stats)
				board.Remove(x, y)
				if score > best {
					best = score
				}
				if best > alpha {
					alpha = best
				}
				if beta <= alpha {
					stats.Cutoffs++
					return best
				}
			}
		}
		return best
	}
	best := scoreInf
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !board.IsEmpty(x, y) {
				continue
			}
			board.Set(x, y, CellX)
			score := e.minimax(board, hash^zobrist.stone(x, y, CellX), depth+1, true, alpha, beta, stats)
			board.Remove(x, y)
			if score < best {
				best = score
			}
			if best < beta {
				beta = best
			}
			if beta <= alpha {
				stats.Cutoffs++
				return best
			}
		}
	}
	stats.CacheStores++
	e.cache.Store(hash, best)
	return best
}

func (e *Engine) logSearchStats(move Move, score int, stats *SearchStats) {
	elapsed := time.Since(stats.Start)
	nps := 0.0
	if elapsed > 0 {
		nps = float64(stats.Nodes) / elapsed.Seconds()
	}
	hitRate := 0.0
	if stats.CacheProbes > 0 {
		hitRate = float64(stats.CacheHits) * 100.0 / float64(stats.CacheProbes)
	}
	e.logger.Info("search completed",
		slog.Int("x", move.X),
		slog.Int("y", move.Y),
		slog.Int("score", score),
		slog.Int("depth", e.depthLimit),
		slog.Int64("elapsed_ms", elapsed.Milliseconds()),
		slog.Int("nodes", stats.Nodes),
		slog.Float64("nps", nps),
		slog.Int("cutoffs", stats.Cutoffs),
		slog.Int("cache_probes", stats.CacheProbes),
		slog.Int("cache_hits", stats.CacheHits),
		slog.Float64("cache_hit_rate", hitRate),
		slog.Int("cache_stores", stats.CacheStores),
		slog.Int("cache_size", e.cache.Len()),
	)
}
