package maze

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// CellSet is a set of cells.
type CellSet = mapset.Set[Cell]

// glyph is the "42" drawn with fully closed cells ('#').
var glyph = [...]string{
	"#.#..###",
	"#.#....#",
	"###..###",
	"..#..##.",
	"..#..###",
}

const (
	glyphWidth  = 8
	glyphHeight = len(glyph)
)

// Smallest grid that holds the glyph with a one-cell border on every side.
const (
	MinPatternWidth  = glyphWidth + 2
	MinPatternHeight = glyphHeight + 2
)

// PatternMode decides what happens when the glyph does not fit.
type PatternMode int

const (
	// PatternAuto embeds the glyph when it fits and otherwise builds without it,
	// logging a warning.
	PatternAuto PatternMode = iota
	// PatternRequired fails with ErrPatternTooLarge when the glyph does not fit.
	PatternRequired
	// PatternOff never embeds the glyph.
	PatternOff
)

func (m PatternMode) String() string {
	switch m {
	case PatternAuto:
		return "auto"
	case PatternRequired:
		return "required"
	case PatternOff:
		return "off"
	}
	return fmt.Sprintf("PatternMode(%d)", int(m))
}

// ParsePatternMode parses "auto", "required" or "off", case-insensitively.
func ParsePatternMode(s string) (PatternMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return PatternAuto, nil
	case "required":
		return PatternRequired, nil
	case "off":
		return PatternOff, nil
	}
	return PatternAuto, fmt.Errorf("unknown pattern mode %q", s)
}

// NewCellSet returns a set holding cells.
func NewCellSet(cells ...Cell) CellSet {
	s := mapset.New[Cell]()
	for _, c := range cells {
		s.Put(c)
	}
	return s
}

// PatternCells returns the cells of the glyph centred in a width x height grid.
// It fails with ErrPatternTooLarge when the grid cannot hold the glyph and its border,
// when entry or exit falls on the glyph, or when fewer than two free cells would remain.
func PatternCells(width, height int, entry, exit Cell) (CellSet, error) {
	if width < MinPatternWidth || height < MinPatternHeight {
		return NewCellSet(), fmt.Errorf("%w: need at least %dx%d, got %dx%d",
			ErrPatternTooLarge, MinPatternWidth, MinPatternHeight, width, height)
	}

	originX := (width - glyphWidth) / 2
	originY := (height - glyphHeight) / 2

	cells := NewCellSet()
	for row, line := range glyph {
		for col, ch := range line {
			if ch == '#' {
				cells.Put(Cell{X: originX + col, Y: originY + row})
			}
		}
	}

	if cells.Has(entry) {
		return NewCellSet(), fmt.Errorf("%w: entry %s lies on the pattern", ErrPatternTooLarge, entry)
	}
	if cells.Has(exit) {
		return NewCellSet(), fmt.Errorf("%w: exit %s lies on the pattern", ErrPatternTooLarge, exit)
	}
	if width*height-cells.Size() < 2 {
		return NewCellSet(), fmt.Errorf("%w: no room left around the pattern", ErrPatternTooLarge)
	}
	return cells, nil
}

// Stamp closes every wall of every cell in cells, together with the facing wall of
// each neighbour.
func Stamp(g *Grid, cells CellSet) {
	cells.Each(func(c Cell) {
		if !g.InBounds(c) {
			return
		}
		for _, nbr := range g.Neighbors(c) {
			_ = g.Close(c, nbr.Cell)
		}
		g.walls[g.index(c)] = AllWalls
	})
}
