package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid(t *testing.T) {
	t.Run("New grid is fully walled", func(t *testing.T) {
		g, err := NewGrid(4, 3)
		require.NoError(t, err)
		assert.Equal(t, 4, g.Width())
		assert.Equal(t, 3, g.Height())
		for _, row := range g.Rows() {
			for _, mask := range row {
				assert.Equal(t, uint8(0xF), mask)
			}
		}
		assert.Equal(t, 0, g.OpenEdges())
	})

	t.Run("Non positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 5}, {0, 0}} {
			_, err := NewGrid(dims[0], dims[1])
			assert.ErrorIs(t, err, ErrInvalidDimension)
		}
	})

	t.Run("Carve opens both sides and is idempotent", func(t *testing.T) {
		g, _ := NewGrid(3, 3)
		a, b := Cell{X: 1, Y: 1}, Cell{X: 2, Y: 1}

		require.NoError(t, g.Carve(a, b))
		require.NoError(t, g.Carve(a, b))

		assert.True(t, g.IsOpen(a, East))
		assert.True(t, g.IsOpen(b, West))
		assert.Equal(t, AllWalls&^Wall(East), g.Walls(a))
		assert.Equal(t, AllWalls&^Wall(West), g.Walls(b))
		assert.Equal(t, 1, g.OpenEdges())
		assert.NoError(t, g.IsCoherent())
	})

	t.Run("Carve rejects bad cells", func(t *testing.T) {
		g, _ := NewGrid(3, 3)
		assert.ErrorIs(t, g.Carve(Cell{X: 0, Y: 0}, Cell{X: 2, Y: 0}), ErrNotAdjacent)
		assert.ErrorIs(t, g.Carve(Cell{X: 0, Y: 0}, Cell{X: 1, Y: 1}), ErrNotAdjacent)
		assert.ErrorIs(t, g.Carve(Cell{X: 0, Y: 0}, Cell{X: -1, Y: 0}), ErrOutOfBounds)
		assert.Equal(t, 0, g.OpenEdges())
	})

	t.Run("Close restores the wall", func(t *testing.T) {
		g, _ := NewGrid(2, 2)
		a, b := Cell{X: 0, Y: 0}, Cell{X: 0, Y: 1}
		require.NoError(t, g.Carve(a, b))
		require.NoError(t, g.Close(b, a))
		assert.False(t, g.IsOpen(a, South))
		assert.False(t, g.IsOpen(b, North))
	})

	t.Run("Neighbors are in N E S W order", func(t *testing.T) {
		g, _ := NewGrid(3, 3)
		got := g.Neighbors(Cell{X: 1, Y: 1})
		assert.Equal(t, []Neighbor{
			{Cell: Cell{X: 1, Y: 0}, Direction: North},
			{Cell: Cell{X: 2, Y: 1}, Direction: East},
			{Cell: Cell{X: 1, Y: 2}, Direction: South},
			{Cell: Cell{X: 0, Y: 1}, Direction: West},
		}, got)

		corner := g.Neighbors(Cell{X: 0, Y: 0})
		assert.Equal(t, []Neighbor{
			{Cell: Cell{X: 1, Y: 0}, Direction: East},
			{Cell: Cell{X: 0, Y: 1}, Direction: South},
		}, corner)
	})

	t.Run("Coherence detects one sided walls", func(t *testing.T) {
		g, err := GridFromRows([][]uint8{{0xD, 0xF}})
		require.NoError(t, err)
		assert.ErrorIs(t, g.IsCoherent(), ErrIncoherentWalls)
	})

	t.Run("Rows round trip and clone independence", func(t *testing.T) {
		g, _ := NewGrid(3, 2)
		require.NoError(t, g.Carve(Cell{X: 0, Y: 0}, Cell{X: 1, Y: 0}))

		back, err := GridFromRows(g.Rows())
		require.NoError(t, err)
		assert.True(t, g.Equal(back))

		c := g.Clone()
		require.NoError(t, c.Carve(Cell{X: 1, Y: 0}, Cell{X: 1, Y: 1}))
		assert.False(t, g.Equal(c))
	})

	t.Run("Rows with bad masks or ragged rows", func(t *testing.T) {
		_, err := GridFromRows([][]uint8{{0xF, 0x10}})
		assert.Error(t, err)
		_, err = GridFromRows([][]uint8{{0xF, 0xF}, {0xF}})
		assert.ErrorIs(t, err, ErrInvalidDimension)
		_, err = GridFromRows(nil)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})
}

func TestDirection(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		assert.Equal(t, 0, dx+ox)
		assert.Equal(t, 0, dy+oy)

		back, ok := DirectionFromLetter(d.Letter())
		assert.True(t, ok)
		assert.Equal(t, d, back)
	}
	_, ok := DirectionFromLetter('x')
	assert.False(t, ok)
}
