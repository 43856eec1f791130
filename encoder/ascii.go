package encoder

import (
	"strings"

	"github.com/beka-birhanu/amazeing/maze"
)

// ASCIIOptions controls how a maze is drawn.
type ASCIIOptions struct {
	WallColor string    // ANSI escape for walls, no colour when empty
	PathColor string    // ANSI escape for path cells, no colour when empty
	Path      maze.Path // Drawn only when ShowPath is set
	ShowPath  bool
}

const colorReset = "\033[0m"

// ASCII draws m with "+---+" walls. Every line ends with a newline.
func ASCII(m *maze.Maze, opts ASCIIOptions) string {
	g := m.Grid
	var onPath map[maze.Cell]bool
	if opts.ShowPath {
		onPath = pathCells(g, m.Entry, opts.Path)
	}

	paint := func(s, color string) string {
		if color == "" {
			return s
		}
		return color + s + colorReset
	}
	wall := func(s string) string { return paint(s, opts.WallColor) }

	var sb strings.Builder

	// Top boundary
	sb.WriteString(wall("+"))
	for x := 0; x < g.Width(); x++ {
		if g.Walls(maze.Cell{X: x, Y: 0}).Has(maze.North) {
			sb.WriteString(wall("---+"))
		} else {
			sb.WriteString("   " + wall("+"))
		}
	}
	sb.WriteByte('\n')

	for y := 0; y < g.Height(); y++ {
		// Cell row
		if g.Walls(maze.Cell{X: 0, Y: y}).Has(maze.West) {
			sb.WriteString(wall("|"))
		} else {
			sb.WriteByte(' ')
		}
		for x := 0; x < g.Width(); x++ {
			c := maze.Cell{X: x, Y: y}
			switch {
			case c == m.Entry:
				sb.WriteString(" E ")
			case c == m.Exit:
				sb.WriteString(" X ")
			case m.Pattern.Has(c):
				sb.WriteString(wall("###"))
			case onPath[c]:
				sb.WriteString(paint(" . ", opts.PathColor))
			default:
				sb.WriteString("   ")
			}

			if g.Walls(c).Has(maze.East) {
				sb.WriteString(wall("|"))
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')

		// Wall row
		sb.WriteString(wall("+"))
		for x := 0; x < g.Width(); x++ {
			if g.Walls(maze.Cell{X: x, Y: y}).Has(maze.South) {
				sb.WriteString(wall("---+"))
			} else {
				sb.WriteString("   " + wall("+"))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// ASCIIWidth returns the number of columns ASCII output occupies for a grid of the given width.
func ASCIIWidth(width int) int {
	return 4*width + 1
}

func pathCells(g *maze.Grid, start maze.Cell, path maze.Path) map[maze.Cell]bool {
	cells := map[maze.Cell]bool{start: true}
	c := start
	for i := 0; i < len(path); i++ {
		d, ok := maze.DirectionFromLetter(path[i])
		if !ok {
			break
		}
		c = c.Step(d)
		if !g.InBounds(c) {
			break
		}
		cells[c] = true
	}
	return cells
}
