/*
Package maze builds rectangular mazes and solves them.

A maze is a Grid of 4-bit wall masks (North=1, East=2, South=4, West=8, a set bit is a closed
wall). Generation carves a random spanning tree with an iterative depth-first search,
optionally opens extra walls to create loops, and keeps the cells of a "42" glyph fully
closed. Solve returns the shortest entry to exit path as a string of N, E, S and W letters.

Everything is deterministic for a given Config: the same seed always yields the same grid
and path. The package does no I/O; see the encoder package for output formats.
*/
package maze

import (
	"errors"
	"fmt"
	"io"
	"log"
)

var (
	ErrInvalidDimension  = errors.New("invalid maze dimensions")
	ErrOutOfBounds       = errors.New("cell out of bounds")
	ErrSameEntryExit     = errors.New("entry and exit must be different")
	ErrPatternTooLarge   = errors.New("pattern does not fit in the maze")
	ErrUnreachable       = errors.New("exit is unreachable from entry")
	ErrNotAdjacent       = errors.New("cells are not adjacent")
	ErrInvalidPath       = errors.New("invalid path")
	ErrIncoherentWalls   = errors.New("incoherent walls")
	ErrInvalidLoopFactor = errors.New("loop factor must be within [0, 1]")
)

// Config is everything that determines a maze.
type Config struct {
	Width   int   // Number of columns
	Height  int   // Number of rows
	Entry   Cell  // Start of the solution path
	Exit    Cell  // End of the solution path
	Perfect bool  // When false, loops are added after carving
	Seed    int64 // Seed of the random generator
}

// Validate checks the dimensions, then the entry and exit cells.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, c.Width, c.Height)
	}

	inBound := func(p Cell) bool {
		return p.X >= 0 && p.X < c.Width && p.Y >= 0 && p.Y < c.Height
	}
	if !inBound(c.Entry) {
		return fmt.Errorf("%w: entry %s outside %dx%d", ErrOutOfBounds, c.Entry, c.Width, c.Height)
	}
	if !inBound(c.Exit) {
		return fmt.Errorf("%w: exit %s outside %dx%d", ErrOutOfBounds, c.Exit, c.Width, c.Height)
	}
	if c.Entry == c.Exit {
		return fmt.Errorf("%w: both at %s", ErrSameEntryExit, c.Entry)
	}
	return nil
}

// Maze is a generated maze. Its grid must not be modified once New returns it.
type Maze struct {
	Grid    *Grid
	Entry   Cell
	Exit    Cell
	Perfect bool
	Seed    int64
	Pattern CellSet // Cells of the glyph, all fully closed
	Loops   int     // Walls opened by the cycle pass
}

type options struct {
	logger     *log.Logger
	loopFactor float64
	pattern    PatternMode
}

// Option customizes New.
type Option func(*options)

// WithLogger sets the logger used for pipeline events. Logging is discarded by default.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithLoopFactor sets the share of redundant walls opened in imperfect mode.
func WithLoopFactor(f float64) Option {
	return func(o *options) {
		o.loopFactor = f
	}
}

// WithPattern sets how the "42" glyph is handled.
func WithPattern(m PatternMode) Option {
	return func(o *options) {
		o.pattern = m
	}
}

// New validates c and generates the maze it describes. No grid is returned on error.
func New(c Config, opts ...Option) (*Maze, error) {
	o := &options{
		loopFactor: DefaultLoopFactor,
		pattern:    PatternAuto,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard, "", 0)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	if o.loopFactor < 0 || o.loopFactor > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLoopFactor, o.loopFactor)
	}

	pattern, err := resolvePattern(c, o)
	if err != nil {
		return nil, err
	}

	grid, err := NewGrid(c.Width, c.Height)
	if err != nil {
		return nil, err
	}

	rng := NewChooser(c.Seed)
	visited, err := CarveSpanningTree(grid, c.Entry, pattern, rng)
	if err != nil {
		return nil, err
	}

	loops := 0
	if !c.Perfect {
		loops = InjectCycles(grid, visited, pattern, o.loopFactor, rng)
	}
	Stamp(grid, pattern)

	o.logger.Printf("[INFO] generated %dx%d maze seed=%d perfect=%t pattern=%d loops=%d",
		c.Width, c.Height, c.Seed, c.Perfect, pattern.Size(), loops)

	return &Maze{
		Grid:    grid,
		Entry:   c.Entry,
		Exit:    c.Exit,
		Perfect: c.Perfect,
		Seed:    c.Seed,
		Pattern: pattern,
		Loops:   loops,
	}, nil
}

func resolvePattern(c Config, o *options) (CellSet, error) {
	if o.pattern == PatternOff {
		return NewCellSet(), nil
	}

	cells, err := PatternCells(c.Width, c.Height, c.Entry, c.Exit)
	if err == nil {
		return cells, nil
	}
	if o.pattern == PatternRequired {
		return NewCellSet(), err
	}

	o.logger.Printf("[WARN] building without the 42 pattern: %s", err)
	return NewCellSet(), nil
}

// Config returns the configuration the maze was built from.
func (m *Maze) Config() Config {
	return Config{
		Width:   m.Grid.Width(),
		Height:  m.Grid.Height(),
		Entry:   m.Entry,
		Exit:    m.Exit,
		Perfect: m.Perfect,
		Seed:    m.Seed,
	}
}

// Solve returns the shortest path from entry to exit around the pattern cells.
func (m *Maze) Solve() Solution {
	return Solve(m.Grid, m.Entry, m.Exit, m.Pattern)
}

// IsPattern reports whether c belongs to the embedded glyph.
func (m *Maze) IsPattern(c Cell) bool {
	return m.Pattern.Has(c)
}
