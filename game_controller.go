package main

import (
	"log/slog"
	"sync"
)

// GameController owns the single running game and serializes all access to
// it; the HTTP and websocket handlers call in concurrently.
type GameController struct {
	mu   sync.Mutex
	game Game
}

func NewGameController(cfg Config, logger *slog.Logger) *GameController {
	return &GameController{game: NewGame(cfg, logger)}
}

func (gc *GameController) SubmitMove(move Move) (MoveResult, error) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.SubmitMove(move)
}

func (gc *GameController) State() GameState {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.State()
}

func (gc *GameController) ID() string {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.ID()
}

func (gc *GameController) History() MoveHistory {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.History()
}

func (gc *GameController) TurnStartedAtMs() int64 {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.TurnStartedAtMs()
}

func (gc *GameController) StartGame() {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset()
}

func (gc *GameController) CacheLen() int {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.CacheLen()
}

func (gc *GameController) ClearCache() {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.ClearCache()
}
