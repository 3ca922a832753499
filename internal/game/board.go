package game

const (
	BoardSize       = 7
	BoardCenter     = 3
	CellCount       = 24
	PiecesPerPlayer = 9
)

// MillLine is three positions that form a mill when owned by one color.
type MillLine [3]Position

var (
	positions   [CellCount]Position
	cellIndex   [BoardSize][BoardSize]int
	millLines   []MillLine
	linesByCell [CellCount][]MillLine
	neighbors   [CellCount][]Position
)

func init() {
	buildTopology()
}

func buildTopology() {
	n := 0
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			cellIndex[x][y] = -1
			if !onPattern(x, y) {
				continue
			}
			positions[n] = Position{X: x, Y: y}
			cellIndex[x][y] = n
			n++
		}
	}
	if n != CellCount {
		panic("topology: unexpected number of positions")
	}

	for k := 0; k < BoardSize; k++ {
		if k == BoardCenter {
			millLines = append(millLines,
				collectLine(func(p Position) bool { return p.X == k && p.Y < BoardCenter }),
				collectLine(func(p Position) bool { return p.X == k && p.Y > BoardCenter }),
				collectLine(func(p Position) bool { return p.Y == k && p.X < BoardCenter }),
				collectLine(func(p Position) bool { return p.Y == k && p.X > BoardCenter }),
			)
			continue
		}
		millLines = append(millLines,
			collectLine(func(p Position) bool { return p.X == k }),
			collectLine(func(p Position) bool { return p.Y == k }),
		)
	}

	// lines are ordered along their axis, so consecutive members are the edges
	for _, line := range millLines {
		for i, p := range line {
			idx := cellIndex[p.X][p.Y]
			linesByCell[idx] = append(linesByCell[idx], line)
			if i > 0 {
				prev := line[i-1]
				neighbors[idx] = append(neighbors[idx], prev)
				pidx := cellIndex[prev.X][prev.Y]
				neighbors[pidx] = append(neighbors[pidx], p)
			}
		}
	}
}

func onPattern(x, y int) bool {
	if x == BoardCenter && y == BoardCenter {
		return false
	}
	return abs(x-BoardCenter) == abs(y-BoardCenter) || x == BoardCenter || y == BoardCenter
}

func collectLine(match func(Position) bool) MillLine {
	var line MillLine
	n := 0
	for _, p := range positions {
		if !match(p) {
			continue
		}
		if n == len(line) {
			panic("topology: mill line longer than three")
		}
		line[n] = p
		n++
	}
	if n != len(line) {
		panic("topology: mill line shorter than three")
	}
	return line
}

// IsValidPosition reports whether (x, y) is one of the 24 board positions.
func IsValidPosition(x, y int) bool {
	if x < 0 || x >= BoardSize || y < 0 || y >= BoardSize {
		return false
	}
	return cellIndex[x][y] >= 0
}

func indexOf(p Position) (int, bool) {
	if !IsValidPosition(p.X, p.Y) {
		return -1, false
	}
	return cellIndex[p.X][p.Y], true
}

// Positions returns the board positions in topology order.
func Positions() []Position {
	out := make([]Position, CellCount)
	copy(out, positions[:])
	return out
}

func MillLines() []MillLine {
	return append([]MillLine(nil), millLines...)
}

// MillLinesContaining returns the two lines through p, nil for invalid positions.
func MillLinesContaining(p Position) []MillLine {
	idx, ok := indexOf(p)
	if !ok {
		return nil
	}
	return append([]MillLine(nil), linesByCell[idx]...)
}

// Neighbors returns the graph-adjacent positions of p.
func Neighbors(p Position) []Position {
	idx, ok := indexOf(p)
	if !ok {
		return nil
	}
	return append([]Position(nil), neighbors[idx]...)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
