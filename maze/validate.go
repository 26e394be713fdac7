package maze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// RemovedWallPairs counts the wall pairs that have been removed. Each pair is
// counted once, from the Right and Bottom sides.
func (g *Grid) RemovedWallPairs() int {
	removed := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			pos := CellPosition{X: x, Y: y}
			if g.IsOpen(pos, Right) {
				removed++
			}
			if g.IsOpen(pos, Bottom) {
				removed++
			}
		}
	}
	return removed
}

// Reachable returns how many cells can be reached from `from` by walking
// through removed walls, `from` included.
func (g *Grid) Reachable(from CellPosition) int {
	if !g.InBound(from) {
		return 0
	}

	visited := mapset.New[CellPosition]()
	visited.Put(from)
	stack := []CellPosition{from}

	for len(stack) > 0 {
		cell := pop(&stack)
		for _, move := range g.neighbors(cell) {
			if !g.IsOpen(cell, move.Direction) || visited.Has(move.To) {
				continue
			}
			visited.Put(move.To)
			stack = append(stack, move.To)
		}
	}

	return visited.Size()
}

// Validate checks that the grid is a perfect maze: wall pairs agree, the outer
// border is closed, every cell is visited, exactly Width*Height-1 pairs are
// removed, and every cell is reachable from (0,0).
func (g *Grid) Validate() error {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			pos := CellPosition{X: x, Y: y}
			cell := g.Cell(pos)
			for _, dir := range AllDirections {
				to := pos.Neighbor(dir)
				if !g.InBound(to) {
					if !cell.HasWall(dir) {
						return fmt.Errorf("%w: border %v of %v is open", ErrInconsistentWalls, dir, pos)
					}
					continue
				}
				if cell.HasWall(dir) != g.Cell(to).HasWall(dir.Opposite()) {
					return fmt.Errorf("%w: between %v and %v", ErrInconsistentWalls, pos, to)
				}
			}
			if !cell.Visited {
				return fmt.Errorf("%w: cell %v was never visited", ErrNotPerfect, pos)
			}
		}
	}

	cells := g.Width * g.Height
	if removed := g.RemovedWallPairs(); removed != cells-1 {
		return fmt.Errorf("%w: %d wall pairs removed, want %d", ErrNotPerfect, removed, cells-1)
	}
	if reached := g.Reachable(CellPosition{}); reached != cells {
		return fmt.Errorf("%w: %d of %d cells reachable", ErrNotPerfect, reached, cells)
	}

	return nil
}
