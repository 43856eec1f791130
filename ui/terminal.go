// Package ui runs the interactive terminal view of a maze.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beka-birhanu/amazeing/config"
	"github.com/beka-birhanu/amazeing/encoder"
	"github.com/beka-birhanu/amazeing/maze"
	"golang.org/x/crypto/ssh/terminal"
)

// Regenerate builds the next maze to show.
type Regenerate func() (*maze.Maze, maze.Solution, error)

const (
	clearScreen = "\033[H\033[2J"
	bold        = "\033[1m"
	dim         = "\033[2m"
)

// Config holds everything a Terminal needs besides the first maze.
type Config struct {
	In         io.Reader
	Out        io.Writer
	Regenerate Regenerate // Option 1 is unavailable when nil
	Clear      bool       // Clear the screen before every frame
	// Columns reports the terminal width. When nil the width of stdout is used.
	Columns func() (int, bool)
}

// Terminal is the menu loop around a maze.
type Terminal struct {
	in         *bufio.Reader
	out        io.Writer
	regenerate Regenerate
	clear      bool
	columns    func() (int, bool)

	maze     *maze.Maze
	solution maze.Solution
	showPath bool
	color    int
}

// New returns a Terminal showing m and its solution s.
func New(m *maze.Maze, s maze.Solution, c Config) *Terminal {
	in := c.In
	if in == nil {
		in = os.Stdin
	}
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	columns := c.Columns
	if columns == nil {
		columns = stdoutColumns
	}
	return &Terminal{
		in:         bufio.NewReader(in),
		out:        out,
		regenerate: c.Regenerate,
		clear:      c.Clear,
		columns:    columns,
		maze:       m,
		solution:   s,
	}
}

func stdoutColumns() (int, bool) {
	fd := int(os.Stdout.Fd())
	if !terminal.IsTerminal(fd) {
		return 0, false
	}
	cols, _, err := terminal.GetSize(fd)
	if err != nil {
		return 0, false
	}
	return cols, true
}

// Run shows frames and handles choices until the user quits or the input ends.
func (t *Terminal) Run() error {
	for {
		t.frame()

		choice, err := t.prompt("\nChoice (1-4): ")
		if err != nil {
			fmt.Fprintln(t.out, "\nGoodbye!")
			if err == io.EOF {
				return nil
			}
			return err
		}

		switch choice {
		case "1":
			t.next()
		case "2":
			t.showPath = !t.showPath
		case "3":
			t.color = (t.color + 1) % len(config.WallPalette)
		case "4":
			fmt.Fprintln(t.out, "Goodbye!")
			return nil
		default:
			t.pause(config.LogWarnColor + "Invalid choice. Press Enter to continue..." + config.ColorReset)
		}
	}
}

// ShowingPath reports whether the path overlay is on.
func (t *Terminal) ShowingPath() bool { return t.showPath }

// WallColor returns the current wall colour.
func (t *Terminal) WallColor() config.WallColor { return config.WallPalette[t.color] }

// Maze returns the maze on screen.
func (t *Terminal) Maze() *maze.Maze { return t.maze }

func (t *Terminal) next() {
	if t.regenerate == nil {
		t.pause(config.LogWarnColor + "No generator available. Press Enter to continue..." + config.ColorReset)
		return
	}
	m, s, err := t.regenerate()
	if err != nil {
		fmt.Fprintf(t.out, "%sError during regeneration: %s%s\n", config.LogErrorColor, err, config.ColorReset)
		t.pause("Press Enter to continue...")
		return
	}
	t.maze, t.solution = m, s
	t.showPath = false
}

func (t *Terminal) frame() {
	if t.clear {
		fmt.Fprint(t.out, clearScreen)
	}

	wall := t.WallColor()
	pathState := config.LogErrorColor + "OFF" + config.ColorReset
	if t.showPath {
		pathState = config.LogInfoColor + "ON" + config.ColorReset
	}
	fmt.Fprintf(t.out, "%s=== A-Maze-ing ===%s  Entry: %s  Exit: %s  Seed: %d  Path: %s  Walls: %s%s%s\n\n",
		bold, config.ColorReset, t.maze.Entry, t.maze.Exit, t.maze.Seed, pathState, bold, wall.Name, config.ColorReset)

	if cols, ok := t.columns(); ok && encoder.ASCIIWidth(t.maze.Grid.Width()) > cols {
		fmt.Fprintf(t.out, "%sThe maze is %d columns wide, the terminal only %d.%s\n",
			config.LogWarnColor, encoder.ASCIIWidth(t.maze.Grid.Width()), cols, config.ColorReset)
	}

	fmt.Fprint(t.out, encoder.ASCII(t.maze, encoder.ASCIIOptions{
		WallColor: wall.Code,
		PathColor: config.ColorCyan,
		Path:      t.solution.Path,
		ShowPath:  t.showPath,
	}))
	if !t.solution.Found {
		fmt.Fprintf(t.out, "%sNo path from entry to exit.%s\n", config.LogWarnColor, config.ColorReset)
	}

	fmt.Fprintln(t.out)
	fmt.Fprintf(t.out, "%s1.%s Re-generate a new maze\n", bold, config.ColorReset)
	fmt.Fprintf(t.out, "%s2.%s Show / Hide path from entry to exit\n", bold, config.ColorReset)
	fmt.Fprintf(t.out, "%s3.%s Rotate maze wall colours\n", bold, config.ColorReset)
	fmt.Fprintf(t.out, "%s4.%s Quit\n", bold, config.ColorReset)
	if t.regenerate == nil {
		fmt.Fprintf(t.out, "%s(Re-generate unavailable: no generator provided)%s\n", dim, config.ColorReset)
	}
}

func (t *Terminal) prompt(text string) (string, error) {
	fmt.Fprint(t.out, text)
	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (t *Terminal) pause(text string) {
	_, _ = t.prompt(text)
}
