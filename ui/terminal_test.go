package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/beka-birhanu/amazeing/config"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMaze(t *testing.T, seed int64) (*maze.Maze, maze.Solution) {
	t.Helper()
	m, err := maze.New(maze.Config{Width: 5, Height: 5, Exit: maze.Cell{X: 4, Y: 4}, Perfect: true, Seed: seed})
	require.NoError(t, err)
	return m, m.Solve()
}

func wide() (int, bool) { return 200, true }

func run(t *testing.T, input string, regenerate Regenerate) (*Terminal, string) {
	t.Helper()
	m, s := newMaze(t, 1)
	var out strings.Builder
	term := New(m, s, Config{
		In:         strings.NewReader(input),
		Out:        &out,
		Regenerate: regenerate,
		Columns:    wide,
	})
	require.NoError(t, term.Run())
	return term, out.String()
}

func TestTerminal(t *testing.T) {
	t.Run("Quit", func(t *testing.T) {
		_, out := run(t, "4\n", nil)
		assert.Contains(t, out, "=== A-Maze-ing ===")
		assert.Contains(t, out, "Re-generate unavailable")
		assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))
	})

	t.Run("End of input quits", func(t *testing.T) {
		_, out := run(t, "", nil)
		assert.Contains(t, out, "Goodbye!")
	})

	t.Run("Toggle path", func(t *testing.T) {
		term, out := run(t, "2\n4\n", nil)
		assert.True(t, term.ShowingPath())
		assert.Contains(t, out, config.ColorCyan+" . ")

		term, _ = run(t, "2\n2\n4\n", nil)
		assert.False(t, term.ShowingPath())
	})

	t.Run("Rotate wall colour", func(t *testing.T) {
		term, out := run(t, "3\n4\n", nil)
		assert.Equal(t, config.WallPalette[1], term.WallColor())
		assert.Contains(t, out, config.WallPalette[1].Code+"---+")

		term, _ = run(t, strings.Repeat("3\n", len(config.WallPalette))+"4\n", nil)
		assert.Equal(t, config.WallPalette[0], term.WallColor())
	})

	t.Run("Regenerate", func(t *testing.T) {
		calls := 0
		regenerate := func() (*maze.Maze, maze.Solution, error) {
			calls++
			m, s := newMaze(t, 1+int64(calls))
			return m, s, nil
		}

		term, _ := run(t, "2\n1\n1\n4\n", regenerate)
		assert.Equal(t, 2, calls)
		assert.Equal(t, int64(3), term.Maze().Seed)
		assert.False(t, term.ShowingPath())
	})

	t.Run("Regenerate failure keeps the maze", func(t *testing.T) {
		regenerate := func() (*maze.Maze, maze.Solution, error) {
			return nil, maze.Solution{}, errors.New("disk full")
		}

		term, out := run(t, "1\n\n4\n", regenerate)
		assert.Contains(t, out, "Error during regeneration: disk full")
		assert.Equal(t, int64(1), term.Maze().Seed)
	})

	t.Run("No generator", func(t *testing.T) {
		_, out := run(t, "1\n\n4\n", nil)
		assert.Contains(t, out, "No generator available")
	})

	t.Run("Invalid choice", func(t *testing.T) {
		_, out := run(t, "9\n\n4\n", nil)
		assert.Contains(t, out, "Invalid choice")
		assert.Equal(t, 2, strings.Count(out, "=== A-Maze-ing ==="))
	})

	t.Run("Narrow terminal warning", func(t *testing.T) {
		m, s := newMaze(t, 1)
		var out strings.Builder
		term := New(m, s, Config{
			In:      strings.NewReader("4\n"),
			Out:     &out,
			Columns: func() (int, bool) { return 10, true },
			Clear:   true,
		})
		require.NoError(t, term.Run())
		assert.Contains(t, out.String(), "terminal only 10")
		assert.True(t, strings.HasPrefix(out.String(), clearScreen))
	})
}
