package maze

import "fmt"

// Direction names one side of a cell.
type Direction int

// Directions in enumeration order. The generator lists candidate neighbours
// in this order before drawing one at random.
const (
	Left Direction = iota
	Right
	Top
	Bottom
)

// AllDirections lists every direction in enumeration order.
var AllDirections = [4]Direction{Left, Right, Top, Bottom}

// directionDeltas maps a direction to its (dx, dy) offset. Top is y-1.
var directionDeltas = [4]CellPosition{
	Left:   {X: -1, Y: 0},
	Right:  {X: 1, Y: 0},
	Top:    {X: 0, Y: -1},
	Bottom: {X: 0, Y: 1},
}

// Delta returns the offset of the neighbouring cell in direction d.
func (d Direction) Delta() CellPosition {
	return directionDeltas[d]
}

// Opposite returns the side of the neighbour that faces back towards d.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Top:
		return Bottom
	default:
		return Top
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Cell represents a single cell in a maze grid.
// It holds a wall flag for each side and whether the generator has reached it.
type Cell struct {
	Walls   [4]bool // Walls is indexed by Direction; true means the wall is present.
	Visited bool    // Visited is set once the generator has carved into the cell.
}

// HasWall returns true if there is a wall on side d of the cell.
func (c *Cell) HasWall(d Direction) bool {
	return c.Walls[d]
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	X int // Column index of the cell
	Y int // Row index of the cell
}

// Add returns the position offset by delta.
func (cp CellPosition) Add(delta CellPosition) CellPosition {
	return CellPosition{X: cp.X + delta.X, Y: cp.Y + delta.Y}
}

// Neighbor returns the position one step away in direction d.
func (cp CellPosition) Neighbor(d Direction) CellPosition {
	return cp.Add(d.Delta())
}

func (cp CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", cp.X, cp.Y)
}

// Move represents a movement from one cell to an adjacent one.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction Direction    // Side of From that faces To
}
