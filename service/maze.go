package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/beka-birhanu/vinom-maze/dense"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/beka-birhanu/vinom-maze/solver"
	"github.com/google/uuid"
)

var ErrMissingLogger = errors.New("maze service requires a logger")

const pathChar = 'o'

// Config holds the collaborators of a MazeService.
type Config struct {
	Logger      i.Logger        // Required.
	RandFactory i.RandFactory   // Seeded source per run; defaults to math/rand.
	OnStep      func(maze.Step) // Called after every generator step, if set.
}

// MazeService generates a maze, encodes it, and solves it, one run at a time.
type MazeService struct {
	logger  i.Logger
	newRand i.RandFactory
	onStep  func(maze.Step)
}

// Run is the outcome of one generate-and-solve pass.
type Run struct {
	ID        uuid.UUID
	Seed      int64
	Maze      *maze.Grid
	Dense     *dense.Grid
	Entrances solver.Entrances
	Result    *solver.Result
}

// NewMazeService validates cfg and returns a ready service.
func NewMazeService(cfg Config) (*MazeService, error) {
	if cfg.Logger == nil {
		return nil, ErrMissingLogger
	}

	newRand := cfg.RandFactory
	if newRand == nil {
		newRand = func(seed int64) i.Rand {
			return rand.New(rand.NewSource(seed))
		}
	}

	return &MazeService{
		logger:  cfg.Logger,
		newRand: newRand,
		onStep:  cfg.OnStep,
	}, nil
}

// Run generates a width x height maze from seed and solves it between the
// entrances found on its dense grid. An unreachable exit is reported through
// Result, not as an error.
func (s *MazeService) Run(width, height int, seed int64) (*Run, error) {
	gen, err := maze.NewGenerator(width, height, s.newRand(seed))
	if err != nil {
		s.logger.Error(fmt.Sprintf("Creating generator: %v", err))
		return nil, err
	}

	run := &Run{ID: uuid.New(), Seed: seed}
	s.logger.Info(fmt.Sprintf("run %s: generating %dx%d maze with seed %d", run.ID, width, height, seed))

	steps := 0
	for !gen.Done() {
		step := gen.Step()
		steps++
		if s.onStep != nil {
			s.onStep(step)
		}
	}
	run.Maze = gen.Grid()
	s.logger.Debug(fmt.Sprintf("run %s: generation finished after %d steps", run.ID, steps))

	if err := run.Maze.Validate(); err != nil {
		s.logger.Error(fmt.Sprintf("run %s: generated maze failed validation: %v", run.ID, err))
		return nil, fmt.Errorf("run %s: %w", run.ID, err)
	}

	run.Dense = dense.FromMaze(run.Maze)
	run.Entrances = solver.FindEntrances(run.Dense)
	if err := run.Entrances.Err(); err != nil {
		s.logger.Warning(fmt.Sprintf("run %s: %v", run.ID, err))
	}

	run.Result, err = solver.Solve(run.Dense, run.Entrances.Start, run.Entrances.End)
	if err != nil {
		s.logger.Error(fmt.Sprintf("run %s: solving: %v", run.ID, err))
		return nil, fmt.Errorf("run %s: %w", run.ID, err)
	}

	if !run.Result.Found() {
		s.logger.Info(fmt.Sprintf("run %s: %v (explored %d tiles)", run.ID, run.Result.Err(), run.Result.Visited.Size()))
		return run, nil
	}

	s.logger.Info(fmt.Sprintf("run %s: shortest path crosses %d cells in %d tiles, explored %d tiles",
		run.ID, len(run.Result.Path.Cells()), len(run.Result.Path), run.Result.Visited.Size()))
	return run, nil
}

// Render draws the dense grid with '#' walls, '.' passages and 'o' on the
// path. Every tile is repeated scale times horizontally; scale below 1 is 1.
func (r *Run) Render(scale int) string {
	if scale < 1 {
		scale = 1
	}

	onPath := make(map[dense.Coord]bool)
	if r.Result != nil {
		for _, c := range r.Result.Path {
			onPath[c] = true
		}
	}

	var sb strings.Builder
	for row := 0; row < r.Dense.Rows(); row++ {
		for col := 0; col < r.Dense.Cols(); col++ {
			c := dense.Coord{Row: row, Col: col}
			tile := r.Dense.At(c).String()
			if onPath[c] {
				tile = string(pathChar)
			}
			sb.WriteString(strings.Repeat(tile, scale))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
