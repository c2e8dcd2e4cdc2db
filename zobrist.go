package main

// Zobrist hashing over stone placement. The table covers the fixed board
// only; side to move is deliberately not part of the key, see cache.go.
type ZobristTable struct {
	size  int
	cells []uint64
}

var zobrist = newZobristTable(BoardSize)

func newZobristTable(size int) *ZobristTable {
	rng := splitmix64{state: uint64(0x9e3779b97f4a7c15) ^ uint64(size)}
	table := &ZobristTable{size: size, cells: make([]uint64, size*size*2)}
	for i := range table.cells {
		table.cells[i] = rng.next()
	}
	return table
}

func (z *ZobristTable) stone(x, y int, cell Cell) uint64 {
	idx := (y*z.size + x) * 2
	if cell == CellO {
		idx++
	}
	return z.cells[idx]
}

// BoardHash computes the hash from scratch; the search maintains it
// incrementally with stone XORs.
func BoardHash(board Board) uint64 {
	var hash uint64
	size := board.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cell := board.At(x, y)
			if cell == CellEmpty {
				continue
			}
			hash ^= zobrist.stone(x, y, cell)
		}
	}
	return hash
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
