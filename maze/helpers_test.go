package maze

// reachable counts the cells connected to from through open walls.
func reachable(g *Grid, from Cell) int {
	seen := map[Cell]bool{from: true}
	queue := []Cell{from}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, nbr := range g.Neighbors(c) {
			if seen[nbr.Cell] || !g.IsOpen(c, nbr.Direction) {
				continue
			}
			seen[nbr.Cell] = true
			queue = append(queue, nbr.Cell)
		}
	}
	return len(seen)
}

// hasOpenArea reports whether any 3x3 block of g has all its internal walls open.
func hasOpenArea(g *Grid) bool {
	for oy := 0; oy+openAreaSide <= g.Height(); oy++ {
		for ox := 0; ox+openAreaSide <= g.Width(); ox++ {
			if g.blockOpen(ox, oy, edge{cell: Cell{X: -1, Y: -1}}) {
				return true
			}
		}
	}
	return false
}

func hexRows(g *Grid) []string {
	const digits = "0123456789abcdef"
	rows := make([]string, 0, g.Height())
	for _, row := range g.Rows() {
		line := make([]byte, len(row))
		for i, mask := range row {
			line[i] = digits[mask]
		}
		rows = append(rows, string(line))
	}
	return rows
}
