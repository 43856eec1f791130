package maze

import (
	"fmt"
)

// Wall is the 4-bit wall mask of a cell. A set bit means the wall in that direction is closed.
type Wall uint8

// AllWalls is the mask of a cell with every wall closed.
const AllWalls Wall = Wall(North | East | South | West)

// Has reports whether the wall facing d is closed.
func (w Wall) Has(d Direction) bool {
	return w&Wall(d) != 0
}

// Cell is a grid coordinate. X is the column and Y the row.
type Cell struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// Step returns the cell one step away in direction d. The result may be out of bounds.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// String formats the cell as "x,y", the shape used by the output file.
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Neighbor is an in-bounds cell adjacent to another one, with the direction leading to it.
type Neighbor struct {
	Cell      Cell
	Direction Direction
}

// Grid is a rectangular array of wall masks stored row-major in a single slice.
// Its dimensions never change after creation.
type Grid struct {
	width  int
	height int
	walls  []Wall
}

// NewGrid returns a width x height grid with every wall closed.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}

	walls := make([]Wall, width*height)
	for i := range walls {
		walls[i] = AllWalls
	}

	return &Grid{width: width, height: height, walls: walls}, nil
}

// GridFromRows builds a grid from rows of raw masks, as read back from an output file.
// It does not check wall symmetry; call IsCoherent for that.
func GridFromRows(rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidDimension)
	}

	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimension, y, len(row), g.width)
		}
		for x, mask := range row {
			if mask > uint8(AllWalls) {
				return nil, fmt.Errorf("invalid wall mask %d at %d,%d", mask, x, y)
			}
			g.walls[y*g.width+x] = Wall(mask)
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns the number of cells.
func (g *Grid) Size() int { return len(g.walls) }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

func (g *Grid) index(c Cell) int {
	return c.Y*g.width + c.X
}

// Walls returns the wall mask of c. c must be in bounds.
func (g *Grid) Walls(c Cell) Wall {
	return g.walls[g.index(c)]
}

// IsOpen reports whether the wall of c facing d is open. Border walls are never carved,
// so IsOpen is false toward the outside of a generated grid.
func (g *Grid) IsOpen(c Cell, d Direction) bool {
	return !g.Walls(c).Has(d)
}

// Neighbors returns the in-bounds orthogonal neighbours of c in North, East, South, West order.
func (g *Grid) Neighbors(c Cell) []Neighbor {
	result := make([]Neighbor, 0, len(Directions))
	for _, d := range Directions {
		n := c.Step(d)
		if g.InBounds(n) {
			result = append(result, Neighbor{Cell: n, Direction: d})
		}
	}
	return result
}

// direction returns the direction leading from a to b.
func (g *Grid) direction(a, b Cell) (Direction, error) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return 0, fmt.Errorf("%w: %s -> %s in %dx%d grid", ErrOutOfBounds, a, b, g.width, g.height)
	}
	for _, d := range Directions {
		if a.Step(d) == b {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %s and %s", ErrNotAdjacent, a, b)
}

// Carve opens the wall shared by a and b on both sides. Carving an open wall is a no-op.
func (g *Grid) Carve(a, b Cell) error {
	d, err := g.direction(a, b)
	if err != nil {
		return err
	}
	g.walls[g.index(a)] &^= Wall(d)
	g.walls[g.index(b)] &^= Wall(d.Opposite())
	return nil
}

// Close closes the wall shared by a and b on both sides.
func (g *Grid) Close(a, b Cell) error {
	d, err := g.direction(a, b)
	if err != nil {
		return err
	}
	g.walls[g.index(a)] |= Wall(d)
	g.walls[g.index(b)] |= Wall(d.Opposite())
	return nil
}

// OpenEdges counts the open walls between pairs of adjacent cells.
func (g *Grid) OpenEdges() int {
	open := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Cell{X: x, Y: y}
			if x+1 < g.width && g.IsOpen(c, East) {
				open++
			}
			if y+1 < g.height && g.IsOpen(c, South) {
				open++
			}
		}
	}
	return open
}

// IsCoherent checks the wall symmetry of every pair of adjacent cells.
func (g *Grid) IsCoherent() error {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Cell{X: x, Y: y}
			for _, d := range [2]Direction{East, South} {
				n := c.Step(d)
				if !g.InBounds(n) {
					continue
				}
				if g.Walls(c).Has(d) != g.Walls(n).Has(d.Opposite()) {
					return fmt.Errorf("%w: %s %s vs %s %s", ErrIncoherentWalls, c, d, n, d.Opposite())
				}
			}
		}
	}
	return nil
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	walls := make([]Wall, len(g.walls))
	copy(walls, g.walls)
	return &Grid{width: g.width, height: g.height, walls: walls}
}

// Rows returns the masks as rows of raw values for serializers.
func (g *Grid) Rows() [][]uint8 {
	rows := make([][]uint8, g.height)
	for y := range rows {
		rows[y] = make([]uint8, g.width)
		for x := range rows[y] {
			rows[y][x] = uint8(g.walls[y*g.width+x])
		}
	}
	return rows
}

// Equal reports whether both grids have the same dimensions and masks.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.walls {
		if g.walls[i] != o.walls[i] {
			return false
		}
	}
	return true
}
