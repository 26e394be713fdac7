// Package solver finds shortest paths through a dense grid with breadth-first
// search. It depends only on the dense representation, so it accepts grids
// that were parsed or built by hand as well as encoded mazes.
package solver

import (
	"errors"
	"fmt"
	"slices"

	"github.com/beka-birhanu/vinom-maze/dense"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/zyedidia/generic/mapset"
)

var (
	ErrOutOfBounds = errors.New("coordinate is outside the grid")
	ErrNoPathFound = errors.New("no path between start and end")
)

// neighborOffsets is the fixed expansion order: up, right, down, left.
var neighborOffsets = [4]dense.Coord{
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
}

// Path is an ordered sequence of tiles from start to end inclusive.
type Path []dense.Coord

// Cells returns the maze cells whose centers the path crosses, in order.
func (p Path) Cells() []maze.CellPosition {
	var cells []maze.CellPosition
	for _, c := range p {
		if pos, ok := c.Cell(); ok {
			cells = append(cells, pos)
		}
	}
	return cells
}

// Result holds the outcome of a search.
//
// Distance counts the start tile as 1, so for every index i of Path,
// Distance[Path[i]] == i+1.
type Result struct {
	Path     Path                    // nil when end is unreachable
	Distance map[dense.Coord]int     // hop count of every discovered tile
	Visited  mapset.Set[dense.Coord] // every discovered tile
}

// Found reports whether a path was found.
func (r *Result) Found() bool {
	return r.Path != nil
}

// Err returns ErrNoPathFound when the search finished without reaching end.
func (r *Result) Err() error {
	if r.Found() {
		return nil
	}
	return ErrNoPathFound
}

// Search is a breadth-first search that can be advanced one dequeue at a time.
type Search struct {
	grid     *dense.Grid
	start    dense.Coord
	end      dense.Coord
	queue    []dense.Coord
	cameFrom map[dense.Coord]dense.Coord
	result   *Result
	done     bool
}

// NewSearch prepares a search from start to end. A start on a wall tile is
// never expanded, so the search finishes without a path.
func NewSearch(g *dense.Grid, start, end dense.Coord) (*Search, error) {
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %v", ErrOutOfBounds, end)
	}

	s := &Search{
		grid:     g,
		start:    start,
		end:      end,
		cameFrom: make(map[dense.Coord]dense.Coord),
		result: &Result{
			Distance: make(map[dense.Coord]int),
			Visited:  mapset.New[dense.Coord](),
		},
	}

	if g.Passable(start) {
		s.queue = append(s.queue, start)
		s.result.Visited.Put(start)
		s.result.Distance[start] = 1
	}

	return s, nil
}

// Step dequeues and expands one tile. It returns false once the search has
// finished, either by reaching end or by exhausting the frontier.
func (s *Search) Step() bool {
	if s.done {
		return false
	}
	if len(s.queue) == 0 {
		s.done = true
		return false
	}

	current := s.queue[0]
	s.queue = s.queue[1:]

	if current == s.end {
		s.result.Path = s.reconstruct()
		s.done = true
		return false
	}

	for _, offset := range neighborOffsets {
		next := dense.Coord{Row: current.Row + offset.Row, Col: current.Col + offset.Col}
		if !s.grid.Passable(next) || s.result.Visited.Has(next) {
			continue
		}
		s.result.Visited.Put(next)
		s.cameFrom[next] = current
		s.result.Distance[next] = s.result.Distance[current] + 1
		s.queue = append(s.queue, next)
	}

	return true
}

// Done reports whether the search has finished.
func (s *Search) Done() bool {
	return s.done
}

// Frontier returns a copy of the tiles waiting to be expanded, in dequeue
// order.
func (s *Search) Frontier() []dense.Coord {
	return slices.Clone(s.queue)
}

// Result returns the search state. Path is set only after the search finishes
// at end; Distance and Visited grow as the search advances.
func (s *Search) Result() *Result {
	return s.result
}

// Run drives Step until the search finishes.
func (s *Search) Run() *Result {
	for s.Step() {
	}
	return s.result
}

// reconstruct follows cameFrom from end back to start.
func (s *Search) reconstruct() Path {
	path := Path{s.end}
	for cur := s.end; cur != s.start; {
		cur = s.cameFrom[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Solve returns the shortest path from start to end over passage tiles.
// An unreachable end is not an error: the result simply has no path.
func Solve(g *dense.Grid, start, end dense.Coord) (*Result, error) {
	s, err := NewSearch(g, start, end)
	if err != nil {
		return nil, err
	}
	return s.Run(), nil
}
