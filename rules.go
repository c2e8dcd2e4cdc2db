package main

var lineDirections = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// IsWin reports whether the mark at lastMove sits on a run of at least
// WinLength in any of the four line orientations.
func IsWin(board Board, lastMove Move) bool {
	if !lastMove.IsValid() {
		return false
	}
	if board.At(lastMove.X, lastMove.Y) == CellEmpty {
		return false
	}
	for i := 0; i < 4; i++ {
		dx := lineDirections[i][0]
		dy := lineDirections[i][1]
		count := 1
		count += countDirection(board, lastMove, dx, dy)
		count += countDirection(board, lastMove, -dx, -dy)
		if count >= WinLength {
			return true
		}
	}
	return false
}

// HasWin reports whether any run of at least WinLength of the given mark
// exists anywhere on the board.
func HasWin(board Board, cell Cell) bool {
	size := board.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if board.At(x, y) != cell {
				continue
			}
			move := Move{X: x, Y: y}
			for i := 0; i < 4; i++ {
				dx := lineDirections[i][0]
				dy := lineDirections[i][1]
				count := 1
				count += countDirection(board, move, dx, dy)
				count += countDirection(board, move, -dx, -dy)
				if count >= WinLength {
					return true
				}
			}
		}
	}
	return false
}

// CountWindow counts O and X marks in a fixed window of steps cells
// starting at (x, y) and advancing by (dx, dy). Off-grid cells count for
// neither player.
func CountWindow(board Board, x, y, dx, dy, steps int) (countO, countX int) {
	for i := 0; i < steps; i++ {
		cx := x + i*dx
		cy := y + i*dy
		if !board.InBounds(cx, cy) {
			continue
		}
		switch board.At(cx, cy) {
		case CellO:
			countO++
		case CellX:
			countX++
		}
	}
	return countO, countX
}

func IsDraw(board Board) bool {
	return board.IsFull()
}

// FindWinningLine returns the full run through lastMove when it reaches
// WinLength, for the presentation layer to highlight.
func FindWinningLine(board Board, lastMove Move) ([]Move, bool) {
	if !lastMove.IsValid() {
		return nil, false
	}
	if board.At(lastMove.X, lastMove.Y) == CellEmpty {
		return nil, false
	}
	for i := 0; i < 4; i++ {
		dx := lineDirections[i][0]
		dy := lineDirections[i][1]
		line := collectLine(board, lastMove, dx, dy)
		if len(line) >= WinLength {
			return line, true
		}
	}
	return nil, false
}

func countDirection(board Board, start Move, dx, dy int) int {
	target := board.At(start.X, start.Y)
	x := start.X + dx
	y := start.Y + dy
	count := 0
	for board.InBounds(x, y) && board.At(x, y) == target {
		count++
		x += dx
		y += dy
	}
	return count
}

func collectLine(board Board, start Move, dx, dy int) []Move {
	line := []Move{}
	target := board.At(start.X, start.Y)
	x := start.X
	y := start.Y
	for board.InBounds(x-dx, y-dy) && board.At(x-dx, y-dy) == target {
		x -= dx
		y -= dy
	}
	for board.InBounds(x, y) && board.At(x, y) == target {
		line = append(line, Move{X: x, Y: y})
		x += dx
		y += dy
	}
	return line
}
