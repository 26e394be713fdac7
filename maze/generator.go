package maze

// Rand is the source of randomness used by the generator.
// *math/rand.Rand satisfies it; a seeded source gives reproducible mazes.
type Rand interface {
	Intn(n int) int
}

// StepKind tells what a single generator step did.
type StepKind int

const (
	Carve     StepKind = iota // a wall pair was removed and the walk advanced
	Backtrack                 // the walk returned to the previous cell on the stack
	Done                      // every cell is visited and the stack is empty
)

func (k StepKind) String() string {
	switch k {
	case Carve:
		return "carve"
	case Backtrack:
		return "backtrack"
	default:
		return "done"
	}
}

// Step describes the effect of one generator iteration.
// For Carve, From and To are the two cells just connected. For Backtrack,
// From is the abandoned cell and To the cell popped from the stack.
type Step struct {
	Kind StepKind
	From CellPosition
	To   CellPosition
}

// Generator carves a perfect maze with a randomized iterative backtracker.
type Generator struct {
	grid    *Grid
	rng     Rand
	stack   []CellPosition
	current CellPosition
	done    bool
}

// NewGenerator prepares a generator over a fresh grid. The walk starts at
// cell (0,0), which is marked visited immediately.
func NewGenerator(width, height int, rng Rand) (*Generator, error) {
	grid, err := New(width, height)
	if err != nil {
		return nil, err
	}

	start := CellPosition{X: 0, Y: 0}
	grid.Cell(start).Visited = true

	return &Generator{
		grid:    grid,
		rng:     rng,
		stack:   make([]CellPosition, 0, width*height),
		current: start,
	}, nil
}

// Grid returns the grid being carved. Callers must treat it as read-only
// while generation is in progress.
func (gen *Generator) Grid() *Grid {
	return gen.grid
}

// Current returns the cell the walk is standing on.
func (gen *Generator) Current() CellPosition {
	return gen.current
}

// Done reports whether generation has completed.
func (gen *Generator) Done() bool {
	return gen.done
}

// Step performs one iteration of the backtracker.
func (gen *Generator) Step() Step {
	if gen.done {
		return Step{Kind: Done, From: gen.current, To: gen.current}
	}

	candidates := gen.unvisitedNeighbors(gen.current)
	if len(candidates) > 0 {
		move := candidates[gen.rng.Intn(len(candidates))]
		gen.stack = append(gen.stack, gen.current)
		gen.grid.openWall(move)
		gen.grid.Cell(move.To).Visited = true
		gen.current = move.To
		return Step{Kind: Carve, From: move.From, To: move.To}
	}

	if len(gen.stack) > 0 {
		from := gen.current
		gen.current = pop(&gen.stack)
		return Step{Kind: Backtrack, From: from, To: gen.current}
	}

	gen.done = true
	return Step{Kind: Done, From: gen.current, To: gen.current}
}

// Run drives Step until generation completes and returns the finished grid.
func (gen *Generator) Run() *Grid {
	for !gen.done {
		gen.Step()
	}
	return gen.grid
}

// unvisitedNeighbors lists moves to unvisited in-bound neighbours in Direction order.
func (gen *Generator) unvisitedNeighbors(pos CellPosition) []Move {
	var result []Move
	for _, move := range gen.grid.neighbors(pos) {
		if !gen.grid.Cell(move.To).Visited {
			result = append(result, move)
		}
	}
	return result
}

// Generate builds a perfect maze of the given dimensions.
func Generate(width, height int, rng Rand) (*Grid, error) {
	gen, err := NewGenerator(width, height, rng)
	if err != nil {
		return nil, err
	}
	return gen.Run(), nil
}

// pop removes and returns the last element of a stack of CellPositions.
func pop(s *[]CellPosition) CellPosition {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex] // Remove the last element
	return popped
}
