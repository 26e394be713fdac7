// Package dense converts a cell grid into a doubled-resolution grid of wall
// and passage tiles, the representation the path solver works on.
//
// Dense coordinates are (row, col). Cell (x, y) has its center at
// (2y+1, 2x+1); the tile between two adjacent centers is a passage iff the
// wall pair between those cells was removed; tiles with both coordinates even
// are corners and always walls.
package dense

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
)

var (
	ErrEmptyGrid   = errors.New("dense grid has no tiles")
	ErrRaggedGrid  = errors.New("dense grid rows differ in length")
	ErrInvalidTile = errors.New("invalid tile character")
)

// Tile is the content of one dense grid position.
type Tile uint8

const (
	Wall Tile = iota
	Passage
)

const (
	wallChar    = '#'
	passageChar = '.'
)

func (t Tile) String() string {
	if t == Passage {
		return string(passageChar)
	}
	return string(wallChar)
}

// Coord addresses a tile by row and column.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("[%d,%d]", c.Row, c.Col)
}

// CenterOf returns the dense coordinate of a cell's center.
func CenterOf(pos maze.CellPosition) Coord {
	return Coord{Row: 2*pos.Y + 1, Col: 2*pos.X + 1}
}

// Cell maps a center tile back to its cell. ok is false for connector and
// corner tiles.
func (c Coord) Cell() (pos maze.CellPosition, ok bool) {
	if c.Row%2 != 1 || c.Col%2 != 1 {
		return maze.CellPosition{}, false
	}
	return maze.CellPosition{X: (c.Col - 1) / 2, Y: (c.Row - 1) / 2}, true
}

// Grid is an immutable rectangular grid of tiles.
type Grid struct {
	rows  int
	cols  int
	tiles []Tile // row-major
}

// FromMaze encodes a cell grid as a (2H+1)x(2W+1) dense grid. It reads only
// wall flags, so hand-built grids encode the same way as generated ones.
func FromMaze(m *maze.Grid) *Grid {
	g := &Grid{
		rows: 2*m.Height + 1,
		cols: 2*m.Width + 1,
	}
	g.tiles = make([]Tile, g.rows*g.cols)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			pos := maze.CellPosition{X: x, Y: y}
			center := CenterOf(pos)
			g.set(center, Passage)

			// Each connector is written once, from its left or upper cell.
			if m.IsOpen(pos, maze.Right) {
				g.set(Coord{Row: center.Row, Col: center.Col + 1}, Passage)
			}
			if m.IsOpen(pos, maze.Bottom) {
				g.set(Coord{Row: center.Row + 1, Col: center.Col}, Passage)
			}
		}
	}

	return g
}

// New builds a grid from rows of tiles. The input is copied.
func New(rows [][]Tile) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{
		rows:  len(rows),
		cols:  len(rows[0]),
		tiles: make([]Tile, 0, len(rows)*len(rows[0])),
	}
	for r, row := range rows {
		if len(row) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrRaggedGrid, r, len(row), g.cols)
		}
		g.tiles = append(g.tiles, row...)
	}

	return g, nil
}

// Parse reads a grid written one row per line with '#' for walls and '.' for
// passages. Blank lines and surrounding whitespace are ignored.
func Parse(s string) (*Grid, error) {
	var rows [][]Tile
	for lineNo, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		row := make([]Tile, 0, len(line))
		for col, ch := range line {
			switch ch {
			case wallChar:
				row = append(row, Wall)
			case passageChar:
				row = append(row, Passage)
			default:
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrInvalidTile, ch, lineNo+1, col+1)
			}
		}
		rows = append(rows, row)
	}

	return New(rows)
}

// Rows returns the number of tile rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of tile columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the tile at c. Positions outside the grid read as Wall.
func (g *Grid) At(c Coord) Tile {
	if !g.InBounds(c) {
		return Wall
	}
	return g.tiles[c.Row*g.cols+c.Col]
}

// Passable reports whether c is an in-bounds passage.
func (g *Grid) Passable(c Coord) bool {
	return g.At(c) == Passage
}

func (g *Grid) set(c Coord, t Tile) {
	g.tiles[c.Row*g.cols+c.Col] = t
}

// String renders the grid one row per line using '#' and '.'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteString(g.At(Coord{Row: r, Col: c}).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
