package solver

import (
	"testing"

	"github.com/beka-birhanu/vinom-maze/dense"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindEntrances(t *testing.T) {
	t.Run("scans towards the openings", func(t *testing.T) {
		g := parse(t, `
			#######
			###...#
			#.#####
			#...###
			#######
		`)

		e := FindEntrances(g)
		assert.Equal(t, dense.Coord{Row: 1, Col: 3}, e.Start)
		assert.Equal(t, dense.Coord{Row: 3, Col: 3}, e.End)
		assert.NoError(t, e.Err())
	})

	t.Run("falls back when a row is solid", func(t *testing.T) {
		g := parse(t, `
			#######
			#######
			#.....#
			#######
			#######
		`)

		e := FindEntrances(g)
		assert.True(t, e.StartFallback)
		assert.True(t, e.EndFallback)
		assert.Equal(t, dense.Coord{Row: 1, Col: 1}, e.Start)
		assert.Equal(t, dense.Coord{Row: 3, Col: 5}, e.End)
		assert.ErrorIs(t, e.Err(), ErrDegenerateEntrance)
		assert.Contains(t, e.Err().Error(), "start")
		assert.Contains(t, e.Err().Error(), "end")
	})

	t.Run("only end falls back", func(t *testing.T) {
		g := parse(t, `
			#####
			#.#.#
			#####
			#####
		`)

		e := FindEntrances(g)
		assert.False(t, e.StartFallback)
		assert.True(t, e.EndFallback)
		assert.Equal(t, dense.Coord{Row: 2, Col: 3}, e.End)
		assert.ErrorIs(t, e.Err(), ErrDegenerateEntrance)
	})

	t.Run("fallbacks stay inside small grids", func(t *testing.T) {
		for _, tc := range []struct {
			name  string
			text  string
			start dense.Coord
			end   dense.Coord
			found bool
		}{
			{"single tile", ".", dense.Coord{Row: 0, Col: 0}, dense.Coord{Row: 0, Col: 0}, true},
			{"single row", "...", dense.Coord{Row: 0, Col: 1}, dense.Coord{Row: 0, Col: 1}, true},
			{"two by two walls", "##\n##", dense.Coord{Row: 1, Col: 1}, dense.Coord{Row: 0, Col: 0}, false},
		} {
			t.Run(tc.name, func(t *testing.T) {
				g := parse(t, tc.text)

				e := FindEntrances(g)
				assert.True(t, e.StartFallback)
				assert.True(t, e.EndFallback)
				assert.Equal(t, tc.start, e.Start)
				assert.Equal(t, tc.end, e.End)
				assert.True(t, g.InBounds(e.Start))
				assert.True(t, g.InBounds(e.End))

				res, err := Solve(g, e.Start, e.End)
				require.NoError(t, err)
				assert.Equal(t, tc.found, res.Found())
			})
		}
	})
}
