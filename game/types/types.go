package types

// Point is a cell position on the grid
type Point struct {
	X, Y int
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

func (g Grid) Size() int {
	return g.Width * g.Height
}

// Index converts a cell position into its row-major linear index.
func (g Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Point converts a linear index back into a cell position.
func (g Grid) Point(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}

func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap folds a position back onto the grid, so leaving one edge re-enters
// from the opposite one.
func (g Grid) Wrap(p Point) Point {
	return Point{
		X: ((p.X % g.Width) + g.Width) % g.Width,
		Y: ((p.Y % g.Height) + g.Height) % g.Height,
	}
}

// Direction is one of the four cardinal headings
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// ToPoint returns the movement vector for the direction.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "unknown"
}

// GameState is the lifecycle state of a single game.
type GameState int

const (
	Stopped GameState = iota
	Running
	Won
	Lost
)

// IsTerminal reports whether only a restart can leave the state.
func (s GameState) IsTerminal() bool {
	return s == Won || s == Lost
}

func (s GameState) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Running:
		return "Running"
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	}
	return "Unknown"
}
