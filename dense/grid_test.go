package dense

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateMapping(t *testing.T) {
	t.Run("x is the column, y is the row", func(t *testing.T) {
		assert.Equal(t, Coord{Row: 1, Col: 5}, CenterOf(maze.CellPosition{X: 2, Y: 0}))
		assert.Equal(t, Coord{Row: 5, Col: 1}, CenterOf(maze.CellPosition{X: 0, Y: 2}))
	})

	t.Run("round trip", func(t *testing.T) {
		for y := 0; y < 4; y++ {
			for x := 0; x < 6; x++ {
				pos := maze.CellPosition{X: x, Y: y}
				back, ok := CenterOf(pos).Cell()
				require.True(t, ok)
				assert.Equal(t, pos, back)
			}
		}
	})

	t.Run("connectors and corners are not cells", func(t *testing.T) {
		for _, c := range []Coord{{0, 0}, {1, 2}, {2, 1}, {2, 2}} {
			_, ok := c.Cell()
			assert.False(t, ok, "%v", c)
		}
	})
}

func TestFromMaze(t *testing.T) {
	t.Run("closed grid", func(t *testing.T) {
		m, err := maze.New(2, 1)
		require.NoError(t, err)

		g := FromMaze(m)
		assert.Equal(t, 3, g.Rows())
		assert.Equal(t, 5, g.Cols())
		assert.Equal(t, "#####\n#.#.#\n#####\n", g.String())
	})

	t.Run("vertical connector lands between rows", func(t *testing.T) {
		m, err := maze.New(2, 2)
		require.NoError(t, err)
		require.NoError(t, m.RemoveWall(maze.CellPosition{X: 1, Y: 0}, maze.Bottom))

		want := "" +
			"#####\n" +
			"#.#.#\n" +
			"###.#\n" +
			"#.#.#\n" +
			"#####\n"
		assert.Equal(t, want, FromMaze(m).String())
	})

	t.Run("horizontal connector lands between columns", func(t *testing.T) {
		m, err := maze.New(2, 2)
		require.NoError(t, err)
		require.NoError(t, m.RemoveWall(maze.CellPosition{X: 0, Y: 1}, maze.Right))

		want := "" +
			"#####\n" +
			"#.#.#\n" +
			"#####\n" +
			"#...#\n" +
			"#####\n"
		assert.Equal(t, want, FromMaze(m).String())
	})

	t.Run("generated maze invariants", func(t *testing.T) {
		m, err := maze.Generate(7, 5, rand.New(rand.NewSource(3)))
		require.NoError(t, err)
		g := FromMaze(m)

		require.Equal(t, 11, g.Rows())
		require.Equal(t, 15, g.Cols())
		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Cols(); c++ {
				coord := Coord{Row: r, Col: c}
				switch {
				case r%2 == 0 && c%2 == 0:
					assert.Equal(t, Wall, g.At(coord), "corner %v", coord)
				case r%2 == 1 && c%2 == 1:
					assert.Equal(t, Passage, g.At(coord), "center %v", coord)
				case r%2 == 1:
					left := maze.CellPosition{X: (c - 2) / 2, Y: (r - 1) / 2}
					assert.Equal(t, m.IsOpen(left, maze.Right), g.Passable(coord), "connector %v", coord)
				default:
					up := maze.CellPosition{X: (c - 1) / 2, Y: (r - 2) / 2}
					assert.Equal(t, m.IsOpen(up, maze.Bottom), g.Passable(coord), "connector %v", coord)
				}
			}
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		text := "#####\n#..##\n##..#\n#####\n"
		g, err := Parse(text)
		require.NoError(t, err)

		assert.Equal(t, 4, g.Rows())
		assert.Equal(t, 5, g.Cols())
		assert.Equal(t, Passage, g.At(Coord{Row: 1, Col: 2}))
		assert.Equal(t, Wall, g.At(Coord{Row: 1, Col: 3}))
		assert.Equal(t, text, g.String())
	})

	t.Run("ignores indentation and blank lines", func(t *testing.T) {
		g, err := Parse(`
			###
			#.#
			###
		`)
		require.NoError(t, err)
		assert.Equal(t, "###\n#.#\n###\n", g.String())
	})

	t.Run("invalid character", func(t *testing.T) {
		_, err := Parse("##\n#x\n")
		assert.ErrorIs(t, err, ErrInvalidTile)
		assert.Contains(t, err.Error(), "line 2 column 2")
	})

	t.Run("multi-byte character column", func(t *testing.T) {
		_, err := Parse("#.é.#\n")
		require.ErrorIs(t, err, ErrInvalidTile)
		assert.Contains(t, err.Error(), "'é' at line 1 column 3")
	})

	t.Run("ragged", func(t *testing.T) {
		_, err := Parse("###\n##\n")
		assert.ErrorIs(t, err, ErrRaggedGrid)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Parse("\n\n")
		assert.ErrorIs(t, err, ErrEmptyGrid)
	})
}

func TestNewCopiesInput(t *testing.T) {
	rows := [][]Tile{{Passage, Wall}}
	g, err := New(rows)
	require.NoError(t, err)

	rows[0][0] = Wall
	assert.Equal(t, Passage, g.At(Coord{Row: 0, Col: 0}))
	assert.Equal(t, Wall, g.At(Coord{Row: -1, Col: 0}), "out of bounds reads as wall")
	assert.False(t, g.Passable(Coord{Row: 0, Col: 9}))
}
