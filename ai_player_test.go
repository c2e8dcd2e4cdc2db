package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine() *Engine {
	return NewEngine(AIConfig{Depth: 2}, newTestLogger())
}

// patternCell tiles the board so that no run ever exceeds two in any
// orientation; used to build dense win-free fixtures.
func patternCell(x, y int) Cell {
	if (x+2*y)%4 < 2 {
		return CellX
	}
	return CellO
}

// nearlyFullBoard fills every row but the last, leaving ten empty cells.
func nearlyFullBoard() Board {
	board := NewBoard()
	for y := 0; y < BoardSize-1; y++ {
		for x := 0; x < BoardSize; x++ {
			board.Set(x, y, patternCell(x, y))
		}
	}
	return board
}

func TestChooseMoveEmptyBoard(t *testing.T) {
	engine := newTestEngine()
	board := NewBoard()

	move, err := engine.ChooseMove(&board)
	require.NoError(t, err)
	require.True(t, move.IsValid())
	require.True(t, board.IsEmpty(move.X, move.Y))
	require.Equal(t, BoardSize*BoardSize, board.CountEmpty())
}

func TestChooseMoveNeverPicksOccupiedCell(t *testing.T) {
	engine := newTestEngine()
	board := nearlyFullBoard()

	move, err := engine.ChooseMove(&board)
	require.NoError(t, err)
	require.True(t, move.IsValid())
	require.Equal(t, BoardSize-1, move.Y)
	require.True(t, board.IsEmpty(move.X, move.Y))
}

func TestChooseMoveFullBoard(t *testing.T) {
	engine := newTestEngine()
	board := NewBoard()
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			board.Set(x, y, patternCell(x, y))
		}
	}

	_, err := engine.ChooseMove(&board)
	require.ErrorIs(t, err, ErrNoEmptyCells)
}

func TestChooseMoveLeavesBoardUntouched(t *testing.T) {
	engine := newTestEngine()
	board := nearlyFullBoard()
	snapshot := board.Clone()

	_, err := engine.ChooseMove(&board)
	require.NoError(t, err)
	require.True(t, board.Equal(snapshot))
}

func TestMinimaxRestoresBoard(t *testing.T) {
	engine := newTestEngine()
	board := nearlyFullBoard()
	board.Set(0, BoardSize-1, CellO)
	snapshot := board.Clone()

	stats := &SearchStats{}
	engine.minimax(&board, BoardHash(board), 0, false, -scoreInf, scoreInf, stats)
	require.True(t, board.Equal(snapshot))
	require.Greater(t, stats.Nodes, 0)
}

func TestChooseMoveIsDeterministic(t *testing.T) {
	engine := newTestEngine()
	board := nearlyFullBoard()

	first, err := engine.ChooseMove(&board)
	require.NoError(t, err)
	second, err := engine.ChooseMove(&board)
	require.NoError(t, err)
	require.True(t, first.Equals(second))
}

func TestChooseMovePopulatesCache(t *testing.T) {
	engine := newTestEngine()
	board := nearlyFullBoard()

	require.Equal(t, 0, engine.Cache().Len())
	_, err := engine.ChooseMove(&board)
	require.NoError(t, err)
	require.Greater(t, engine.Cache().Len(), 0)
}
