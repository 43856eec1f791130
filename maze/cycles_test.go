package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func carvedGrid(t *testing.T, w, h int, seed int64, blocked CellSet) (*Grid, []bool, Chooser) {
	t.Helper()
	g, err := NewGrid(w, h)
	require.NoError(t, err)
	rng := NewChooser(seed)
	visited, err := CarveSpanningTree(g, Cell{X: 0, Y: 0}, blocked, rng)
	require.NoError(t, err)
	return g, visited, rng
}

func TestInjectCycles(t *testing.T) {
	t.Run("Adds loops and keeps every cell reachable", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			g, visited, rng := carvedGrid(t, 15, 10, seed, NewCellSet())
			tree := g.OpenEdges()

			opened := InjectCycles(g, visited, NewCellSet(), 0.3, rng)

			assert.Positive(t, opened)
			assert.Equal(t, tree+opened, g.OpenEdges())
			assert.Equal(t, g.Size(), reachable(g, Cell{X: 0, Y: 0}))
			assert.NoError(t, g.IsCoherent())
			assert.False(t, hasOpenArea(g), "seed %d produced an open 3x3 area", seed)
		}
	})

	t.Run("Full factor still avoids open areas", func(t *testing.T) {
		for seed := int64(0); seed < 10; seed++ {
			g, visited, rng := carvedGrid(t, 12, 12, seed, NewCellSet())
			InjectCycles(g, visited, NewCellSet(), 1, rng)
			assert.False(t, hasOpenArea(g))
		}
	})

	t.Run("Zero factor opens nothing", func(t *testing.T) {
		g, visited, rng := carvedGrid(t, 8, 8, 4, NewCellSet())
		before := g.Clone()
		assert.Equal(t, 0, InjectCycles(g, visited, NewCellSet(), 0, rng))
		assert.True(t, before.Equal(g))
	})

	t.Run("Never touches blocked cells", func(t *testing.T) {
		blocked := NewCellSet(Cell{X: 3, Y: 3}, Cell{X: 4, Y: 3}, Cell{X: 3, Y: 4})
		g, visited, rng := carvedGrid(t, 9, 9, 11, blocked)
		InjectCycles(g, visited, blocked, 1, rng)
		blocked.Each(func(c Cell) {
			assert.Equal(t, AllWalls, g.Walls(c))
		})
	})

	t.Run("Open area check", func(t *testing.T) {
		g, _ := NewGrid(3, 3)
		// Open all 12 internal walls except the last one.
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				c := Cell{X: x, Y: y}
				if x < 2 {
					require.NoError(t, g.Carve(c, c.Step(East)))
				}
				if y < 2 && !(x == 2 && y == 1) {
					require.NoError(t, g.Carve(c, c.Step(South)))
				}
			}
		}
		last := edge{cell: Cell{X: 2, Y: 1}, dir: South}
		assert.True(t, g.opensArea(last))
		assert.False(t, hasOpenArea(g))

		other := edge{cell: Cell{X: 0, Y: 0}, dir: East}
		require.NoError(t, g.Close(other.cell, other.cell.Step(East)))
		assert.False(t, g.opensArea(last))
	})
}
