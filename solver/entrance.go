package solver

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/dense"
)

var ErrDegenerateEntrance = errors.New("no opening found, using fallback coordinate")

// Entrances holds the start and end tiles chosen for a grid.
type Entrances struct {
	Start         dense.Coord
	End           dense.Coord
	StartFallback bool // Start is the (1,1) default, not a scanned opening
	EndFallback   bool // End is the bottom-right default, not a scanned opening
}

// FindEntrances picks the first passage of row 1 scanning left to right as the
// start, and the first passage of the second-to-last row scanning right to
// left as the end. For an encoded maze these are the top-left and
// bottom-right cell rows.
//
// Fallback coordinates are clamped into the grid, so grids narrower or
// shorter than three tiles still get a start and end Solve accepts.
func FindEntrances(g *dense.Grid) Entrances {
	lastRow := g.Rows() - 2
	e := Entrances{
		Start:         clampCoord(g, dense.Coord{Row: 1, Col: 1}),
		End:           clampCoord(g, dense.Coord{Row: lastRow, Col: g.Cols() - 2}),
		StartFallback: true,
		EndFallback:   true,
	}

	for col := 0; col < g.Cols(); col++ {
		c := dense.Coord{Row: 1, Col: col}
		if g.Passable(c) {
			e.Start, e.StartFallback = c, false
			break
		}
	}

	for col := g.Cols() - 1; col >= 0; col-- {
		c := dense.Coord{Row: lastRow, Col: col}
		if g.Passable(c) {
			e.End, e.EndFallback = c, false
			break
		}
	}

	return e
}

func clampCoord(g *dense.Grid, c dense.Coord) dense.Coord {
	return dense.Coord{
		Row: max(0, min(c.Row, g.Rows()-1)),
		Col: max(0, min(c.Col, g.Cols()-1)),
	}
}

// Err reports which side fell back to a default coordinate, wrapping
// ErrDegenerateEntrance. It returns nil when both were found by scanning.
func (e Entrances) Err() error {
	switch {
	case e.StartFallback && e.EndFallback:
		return fmt.Errorf("start %v and end %v: %w", e.Start, e.End, ErrDegenerateEntrance)
	case e.StartFallback:
		return fmt.Errorf("start %v: %w", e.Start, ErrDegenerateEntrance)
	case e.EndFallback:
		return fmt.Errorf("end %v: %w", e.End, ErrDegenerateEntrance)
	}
	return nil
}
