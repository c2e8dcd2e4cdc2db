package main

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

var (
	ErrOutOfBounds  = errors.New("coordinate out of bounds")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameOver     = errors.New("game is already over")
)

// MoveResult reports every move applied by one SubmitMove call: the human
// move and, when the game continues, the computer's synchronous reply.
type MoveResult struct {
	Moves       []HistoryEntry
	Status      GameStatus
	NextPlayer  Player
	WinningLine []Move
}

type Game struct {
	id        string
	state     GameState
	history   MoveHistory
	engine    *Engine
	logger    *slog.Logger
	turnStart time.Time
}

func NewGame(cfg Config, logger *slog.Logger) Game {
	g := Game{engine: NewEngine(cfg.AI, logger), logger: logger}
	g.Reset()
	return g
}

func (g *Game) Reset() {
	g.id = uuid.NewString()
	g.state.Reset()
	g.history.Clear()
	g.turnStart = time.Now()
	g.logger.Info("game started", slog.String("game_id", g.id))
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

// SubmitMove applies the human (X) move and, while the game is still
// running, immediately runs the engine and applies O's reply. The whole
// exchange happens synchronously before the call returns.
func (g *Game) SubmitMove(move Move) (MoveResult, error) {
	entry, err := g.TryApplyMove(move)
	if err != nil {
		return MoveResult{}, err
	}
	result := MoveResult{Moves: []HistoryEntry{entry}}
	if g.state.Status == StatusRunning && g.state.ToMove == PlayerO {
		aiMove, err := g.engine.ChooseMove(&g.state.Board)
		if err != nil {
			g.logger.Error("engine produced no move", slog.String("game_id", g.id), slog.Any("error", err))
		} else if aiEntry, applyErr := g.TryApplyMove(aiMove); applyErr == nil {
			result.Moves = append(result.Moves, aiEntry)
		}
	}
	result.Status = g.state.Status
	result.NextPlayer = g.state.ToMove
	result.WinningLine = append([]Move(nil), g.state.WinningLine...)
	return result, nil
}

// TryApplyMove runs one transition of the state machine for the player to
// move: validate, write the mark, then win check, then draw check, then
// hand the turn over. Rejected moves leave the state untouched.
func (g *Game) TryApplyMove(move Move) (HistoryEntry, error) {
	if g.state.Terminal() {
		return HistoryEntry{}, ErrGameOver
	}
	if !move.IsValid() {
		return HistoryEntry{}, ErrOutOfBounds
	}
	if g.state.Board.At(move.X, move.Y) != CellEmpty {
		return HistoryEntry{}, ErrCellOccupied
	}
	mover := g.state.ToMove
	isAiMove := mover == PlayerO
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	if err := g.state.Board.Place(move.X, move.Y, CellFromPlayer(mover)); err != nil {
		return HistoryEntry{}, err
	}
	g.state.LastMove = move
	g.state.HasLastMove = true
	entry := HistoryEntry{Move: move, Player: mover, ElapsedMs: elapsedMs, IsAi: isAiMove}
	g.history.Push(entry)
	g.logMovePlayed(move, mover, elapsedMs, isAiMove)

	if IsWin(g.state.Board, move) {
		if line, ok := FindWinningLine(g.state.Board, move); ok {
			g.state.WinningLine = line
		}
		if mover == PlayerX {
			g.state.Status = StatusXWon
		} else {
			g.state.Status = StatusOWon
		}
		g.logWin(mover)
		return entry, nil
	}
	if IsDraw(g.state.Board) {
		g.state.Status = StatusDraw
		g.logger.Info("game drawn", slog.String("game_id", g.id))
		return entry, nil
	}
	g.state.ToMove = otherPlayer(mover)
	g.turnStart = time.Now()
	return entry, nil
}

func (g *Game) CacheLen() int {
	return g.engine.Cache().Len()
}

func (g *Game) ClearCache() {
	g.engine.Cache().Clear()
}

func (g *Game) logMovePlayed(move Move, player Player, elapsedMs float64, isAiMove bool) {
	g.logger.Info("move played",
		slog.String("game_id", g.id),
		slog.Int("x", move.X),
		slog.Int("y", move.Y),
		slog.String("player", player.String()),
		slog.Float64("elapsed_ms", elapsedMs),
		slog.Bool("ai", isAiMove),
	)
}

func (g *Game) logWin(player Player) {
	g.logger.Info("game won",
		slog.String("game_id", g.id),
		slog.String("player", player.String()),
	)
}
