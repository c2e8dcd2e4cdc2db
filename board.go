package main

// Board size and win length are fixed; the game is always 10x10, five in a row.
const (
	BoardSize = 10
	WinLength = 5
)

type Cell int

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

type Board struct {
	size  int
	cells []Cell
}

func NewBoard() Board {
	b := Board{}
	b.Reset()
	return b
}

func (b *Board) Reset() {
	b.size = BoardSize
	b.cells = make([]Cell, BoardSize*BoardSize)
}

// At and Set assume in-bounds coordinates; they are the search hot path.
// External callers go through Get and Place, which validate.
func (b Board) At(x, y int) Cell {
	return b.cells[b.index(x, y)]
}

func (b *Board) Set(x, y int, value Cell) {
	b.cells[b.index(x, y)] = value
}

func (b *Board) Remove(x, y int) {
	b.cells[b.index(x, y)] = CellEmpty
}

func (b Board) Get(x, y int) (Cell, error) {
	if !b.InBounds(x, y) {
		return CellEmpty, ErrOutOfBounds
	}
	return b.At(x, y), nil
}

func (b *Board) Place(x, y int, value Cell) error {
	if !b.InBounds(x, y) {
		return ErrOutOfBounds
	}
	b.Set(x, y, value)
	return nil
}

func (b Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.size && y < b.size
}

func (b Board) IsEmpty(x, y int) bool {
	return b.InBounds(x, y) && b.At(x, y) == CellEmpty
}

func (b Board) IsFull() bool {
	for _, cell := range b.cells {
		if cell == CellEmpty {
			return false
		}
	}
	return true
}

func (b Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == CellEmpty {
			count++
		}
	}
	return count
}

func (b Board) Size() int {
	return b.size
}

func (b Board) Clone() Board {
	clone := Board{size: b.size}
	clone.cells = make([]Cell, len(b.cells))
	copy(clone.cells, b.cells)
	return clone
}

func (b Board) Equal(other Board) bool {
	if b.size != other.size || len(b.cells) != len(other.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (b Board) index(x, y int) int {
	return y*b.size + x
}

func (c Cell) String() string {
	switch c {
	case CellX:
		return "X"
	case CellO:
		return "O"
	default:
		return "Empty"
	}
}

func CellFromPlayer(player Player) Cell {
	if player == PlayerX {
		return CellX
	}
	return CellO
}
