/*
Package maze provides tools for creating and checking rectangular perfect mazes.

It defines the `Grid` structure, composed of `Cell` objects that carry a wall flag for
each side and a visited flag used during generation.

Mazes are carved with a randomized iterative backtracker that can be driven one step
at a time, so a caller can snapshot the grid between steps. Walls are always removed
in pairs: clearing a cell's wall also clears the matching wall of its neighbour.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDimension  = errors.New("invalid maze dimensions")
	ErrOutOfBounds       = errors.New("position is out of the maze")
	ErrInconsistentWalls = errors.New("inconsistent wall pair")
	ErrNotPerfect        = errors.New("maze is not a spanning tree")
)

// Grid represents a rectangular maze consisting of cells with walls.
type Grid struct {
	Width  int      // Width of the maze (number of columns)
	Height int      // Height of the maze (number of rows)
	Cells  [][]Cell // Cells indexed as Cells[y][x]
}

// New allocates a grid of the given dimensions with every wall present and
// every cell unvisited.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}

	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = Cell{Walls: [4]bool{true, true, true, true}}
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}, nil
}

// InBound reports whether pos lies inside the grid.
func (g *Grid) InBound(pos CellPosition) bool {
	return pos.X >= 0 && pos.X < g.Width && pos.Y >= 0 && pos.Y < g.Height
}

// Cell returns the cell at pos. It panics if pos is out of bounds.
func (g *Grid) Cell(pos CellPosition) *Cell {
	return &g.Cells[pos.Y][pos.X]
}

// neighbors lists every in-bound move from pos in Direction order.
func (g *Grid) neighbors(pos CellPosition) []Move {
	result := make([]Move, 0, 4)
	for _, dir := range AllDirections {
		to := pos.Neighbor(dir)
		if g.InBound(to) {
			result = append(result, Move{From: pos, To: to, Direction: dir})
		}
	}
	return result
}

// RemoveWall removes the wall on side dir of pos together with the facing
// wall of the neighbouring cell.
func (g *Grid) RemoveWall(pos CellPosition, dir Direction) error {
	to := pos.Neighbor(dir)
	if !g.InBound(pos) || !g.InBound(to) {
		return fmt.Errorf("%w: %v towards %v", ErrOutOfBounds, pos, dir)
	}
	g.openWall(Move{From: pos, To: to, Direction: dir})
	return nil
}

// openWall removes the wall between two adjacent cells in the move's direction.
func (g *Grid) openWall(move Move) {
	g.Cell(move.From).Walls[move.Direction] = false
	g.Cell(move.To).Walls[move.Direction.Opposite()] = false
}

// IsOpen reports whether the wall on side dir of pos has been removed.
// Sides facing outside the grid are never open.
func (g *Grid) IsOpen(pos CellPosition, dir Direction) bool {
	if !g.InBound(pos) || !g.InBound(pos.Neighbor(dir)) {
		return false
	}
	return !g.Cell(pos).HasWall(dir)
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", g.Width) + "\n")

	for y := 0; y < g.Height; y++ {
		// Cell rows
		output.WriteString("|")
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x].HasWall(Right) {
				output.WriteString("   |")
			} else {
				output.WriteString("    ")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x].HasWall(Bottom) {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
