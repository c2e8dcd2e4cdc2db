package main

type Player int

type GameStatus int

const (
	PlayerX Player = iota // human
	PlayerO               // computer
)

const (
	StatusRunning GameStatus = iota
	StatusXWon
	StatusOWon
	StatusDraw
)

type GameState struct {
	Board       Board
	ToMove      Player
	Status      GameStatus
	HasLastMove bool
	LastMove    Move
	WinningLine []Move
}

func (s *GameState) Reset() {
	s.Board = NewBoard()
	s.ToMove = PlayerX
	s.Status = StatusRunning
	s.HasLastMove = false
	s.LastMove = Move{X: -1, Y: -1}
	s.WinningLine = nil
}

func (s GameState) Clone() GameState {
	clone := s
	clone.Board = s.Board.Clone()
	clone.WinningLine = append([]Move(nil), s.WinningLine...)
	return clone
}

func (s GameState) Terminal() bool {
	return s.Status != StatusRunning
}

func otherPlayer(player Player) Player {
	if player == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (p Player) String() string {
	if p == PlayerX {
		return "X"
	}
	return "O"
}
