// Package encoder converts mazes to and from their text forms.
package encoder

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beka-birhanu/amazeing/maze"
)

var (
	ErrMalformedOutput = errors.New("malformed maze output")
)

// Output is the content of a maze output file.
type Output struct {
	Grid  *maze.Grid
	Entry maze.Cell
	Exit  maze.Cell
	Path  maze.Path
}

// FromMaze builds the output of m with solution s.
func FromMaze(m *maze.Maze, s maze.Solution) Output {
	return Output{
		Grid:  m.Grid,
		Entry: m.Entry,
		Exit:  m.Exit,
		Path:  s.Path,
	}
}

// WriteHex writes o as one lowercase hex digit per cell, one line per row, a blank line,
// then the entry, the exit and the path on their own lines.
func WriteHex(w io.Writer, o Output) error {
	bw := bufio.NewWriter(w)
	for _, row := range HexRows(o.Grid) {
		bw.WriteString(row)
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "\n%s\n%s\n%s\n", o.Entry, o.Exit, o.Path)
	return bw.Flush()
}

// HexRows returns one string of lowercase hex digits per grid row.
func HexRows(g *maze.Grid) []string {
	rows := make([]string, 0, g.Height())
	for _, row := range g.Rows() {
		var sb strings.Builder
		for _, mask := range row {
			sb.WriteString(strconv.FormatUint(uint64(mask), 16))
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// EncodeHex returns the hex output of o.
func EncodeHex(o Output) []byte {
	var buf bytes.Buffer
	_ = WriteHex(&buf, o)
	return buf.Bytes()
}

// ReadHex parses an output file and checks that its walls agree on both sides of every
// shared edge.
func ReadHex(r io.Reader) (Output, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return Output{}, err
	}

	blank := -1
	for i, line := range lines {
		if line == "" {
			blank = i
			break
		}
	}
	if blank <= 0 {
		return Output{}, fmt.Errorf("%w: missing grid or blank separator line", ErrMalformedOutput)
	}
	meta := lines[blank+1:]
	if len(meta) < 3 {
		return Output{}, fmt.Errorf("%w: want entry, exit and path lines after the grid", ErrMalformedOutput)
	}

	rows := make([][]uint8, 0, blank)
	for y, line := range lines[:blank] {
		row := make([]uint8, len(line))
		for x, ch := range line {
			v, err := strconv.ParseUint(string(ch), 16, 8)
			if err != nil {
				return Output{}, fmt.Errorf("%w: invalid hex digit %q at row %d", ErrMalformedOutput, ch, y)
			}
			row[x] = uint8(v)
		}
		rows = append(rows, row)
	}

	grid, err := maze.GridFromRows(rows)
	if err != nil {
		return Output{}, fmt.Errorf("%w: %w", ErrMalformedOutput, err)
	}
	if err := grid.IsCoherent(); err != nil {
		return Output{}, err
	}

	entry, err := ParseCell(meta[0])
	if err != nil {
		return Output{}, fmt.Errorf("%w: entry: %w", ErrMalformedOutput, err)
	}
	exit, err := ParseCell(meta[1])
	if err != nil {
		return Output{}, fmt.Errorf("%w: exit: %w", ErrMalformedOutput, err)
	}

	return Output{Grid: grid, Entry: entry, Exit: exit, Path: maze.Path(meta[2])}, nil
}

// DecodeHex parses data as written by WriteHex.
func DecodeHex(data []byte) (Output, error) {
	return ReadHex(bytes.NewReader(data))
}

// Verify checks that the entry and exit are inside the grid and that the path walks
// from entry to exit over open walls.
func (o Output) Verify() error {
	if !o.Grid.InBounds(o.Entry) || !o.Grid.InBounds(o.Exit) {
		return fmt.Errorf("%w: entry %s or exit %s outside the grid", maze.ErrOutOfBounds, o.Entry, o.Exit)
	}
	end, err := maze.Walk(o.Grid, o.Entry, o.Path)
	if err != nil {
		return err
	}
	if end != o.Exit {
		return fmt.Errorf("%w: path ends at %s, exit is %s", maze.ErrInvalidPath, end, o.Exit)
	}
	return nil
}

// ParseCell parses "x,y".
func ParseCell(s string) (maze.Cell, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return maze.Cell{}, fmt.Errorf("%q is not in x,y format", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return maze.Cell{}, fmt.Errorf("%q: x must be an integer", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return maze.Cell{}, fmt.Errorf("%q: y must be an integer", s)
	}
	return maze.Cell{X: x, Y: y}, nil
}
