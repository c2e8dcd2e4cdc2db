package main

// Window contributions for runs the owner could still extend to five.
// Positive favors O (the computer), negative favors X.
const (
	scoreFour  = 50
	scoreThree = 10
	scoreTwo   = 1
)

// EvaluateBoard scores a non-terminal position. For every occupied cell and
// each of the four line orientations it inspects the WinLength-wide window
// starting there; windows holding marks of a single player contribute by
// how many cells that player owns, mixed windows contribute nothing.
func EvaluateBoard(board Board) int {
	size := board.Size()
	total := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if board.At(x, y) == CellEmpty {
				continue
			}
			for i := 0; i < 4; i++ {
				dx := lineDirections[i][0]
				dy := lineDirections[i][1]
				countO, countX := CountWindow(board, x, y, dx, dy, WinLength)
				if countO > 0 && countX > 0 {
					continue
				}
				switch {
				case countO == WinLength-1:
					total += scoreFour
				case countO == WinLength-2:
					total += scoreThree
				case countO == WinLength-3:
					total += scoreTwo
				case countX == WinLength-1:
					total -= scoreFour
				case countX == WinLength-2:
					total -= scoreThree
				case countX == WinLength-3:
					total -= scoreTwo
				}
			}
		}
	}
	return total
}
