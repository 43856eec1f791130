package maze

import "math"

// DefaultLoopFactor is the share of redundant walls the cycle pass tries to open.
const DefaultLoopFactor = 0.15

// openAreaSide is the side of the smallest square block that must never be fully open.
const openAreaSide = 3

// edge names an internal wall by its west or north cell and the direction East or South.
type edge struct {
	cell Cell
	dir  Direction
}

// InjectCycles opens extra walls between cells that the spanning tree already connects,
// turning a perfect maze into one with loops. Walls are only ever removed, so no cell
// loses its route to the entry.
//
// Candidates are shuffled with rng and accepted until round(factor * candidates) walls
// are open. A candidate is rejected when opening it would leave a 3x3 block of cells with
// all 12 of its internal walls open. Walls touching a blocked cell are never considered.
// It returns the number of walls opened.
func InjectCycles(g *Grid, visited []bool, blocked CellSet, factor float64, rng Chooser) int {
	var candidates []edge
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Cell{X: x, Y: y}
			for _, d := range [2]Direction{East, South} {
				n := c.Step(d)
				if !g.InBounds(n) || g.IsOpen(c, d) {
					continue
				}
				if !visited[g.index(c)] || !visited[g.index(n)] {
					continue
				}
				if blocked.Has(c) || blocked.Has(n) {
					continue
				}
				candidates = append(candidates, edge{cell: c, dir: d})
			}
		}
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if factor <= 0 {
		return 0
	}
	target := int(math.Round(math.Min(factor, 1) * float64(len(candidates))))

	opened := 0
	for _, e := range candidates {
		if opened >= target {
			break
		}
		if g.opensArea(e) {
			continue
		}
		_ = g.Carve(e.cell, e.cell.Step(e.dir))
		opened++
	}
	return opened
}

// opensArea reports whether opening e would complete a fully open 3x3 block.
// Only blocks containing both cells of e can change.
func (g *Grid) opensArea(e edge) bool {
	a, b := e.cell, e.cell.Step(e.dir)
	last := openAreaSide - 1

	for oy := max(0, b.Y-last); oy <= min(a.Y, g.height-openAreaSide); oy++ {
		for ox := max(0, b.X-last); ox <= min(a.X, g.width-openAreaSide); ox++ {
			if g.blockOpen(ox, oy, e) {
				return true
			}
		}
	}
	return false
}

// blockOpen reports whether the 3x3 block at (ox, oy) has every internal wall open,
// counting except as already open.
func (g *Grid) blockOpen(ox, oy int, except edge) bool {
	last := openAreaSide - 1
	for row := oy; row <= oy+last; row++ {
		for col := ox; col <= ox+last; col++ {
			c := Cell{X: col, Y: row}
			if col < ox+last && !g.IsOpen(c, East) && except != (edge{cell: c, dir: East}) {
				return false
			}
			if row < oy+last && !g.IsOpen(c, South) && except != (edge{cell: c, dir: South}) {
				return false
			}
		}
	}
	return true
}
