package maze

// CarveSpanningTree opens a random spanning tree over every cell reachable from entry
// without entering a blocked cell. It walks depth first with an explicit stack, so the
// maze size is not bounded by the goroutine stack.
//
// The returned slice is indexed row-major and marks the cells the tree reached.
func CarveSpanningTree(g *Grid, entry Cell, blocked CellSet, rng Chooser) ([]bool, error) {
	if !g.InBounds(entry) {
		return nil, ErrOutOfBounds
	}

	visited := make([]bool, g.Size())
	visited[g.index(entry)] = true
	stack := []Cell{entry}
	candidates := make([]Cell, 0, len(Directions))

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, nbr := range g.Neighbors(current) {
			if visited[g.index(nbr.Cell)] || blocked.Has(nbr.Cell) {
				continue
			}
			candidates = append(candidates, nbr.Cell)
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		if err := g.Carve(current, next); err != nil {
			return nil, err
		}
		visited[g.index(next)] = true
		stack = append(stack, next)
	}

	return visited, nil
}
