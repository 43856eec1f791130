package maze

import (
	"fmt"
	"strings"
)

// Path is a walk through the maze written as N, E, S and W letters.
type Path string

// Len returns the number of steps.
func (p Path) Len() int { return len(p) }

// Solution is the outcome of a search. Found is false when the exit cannot be reached;
// that is a normal result, not a failure.
type Solution struct {
	Found bool `json:"found"`
	Path  Path `json:"path"`
}

// Err returns ErrUnreachable for a solution that was not found and nil otherwise.
func (s Solution) Err() error {
	if !s.Found {
		return ErrUnreachable
	}
	return nil
}

type step struct {
	from Cell
	dir  Direction
}

// Solve finds a shortest path from entry to exit with a breadth-first search over open
// walls, never entering a blocked cell. Neighbours are expanded in North, East, South, West
// order, so when several shortest paths exist the first one discovered in that order wins.
// The search stops when the exit is dequeued.
func Solve(g *Grid, entry, exit Cell, blocked CellSet) Solution {
	if !g.InBounds(entry) || !g.InBounds(exit) {
		return Solution{}
	}
	if entry == exit {
		return Solution{Found: true}
	}

	seen := make([]bool, g.Size())
	came := make([]step, g.Size())
	seen[g.index(entry)] = true
	queue := []Cell{entry}

	for head := 0; head < len(queue); head++ {
		current := queue[head]
		if current == exit {
			return Solution{Found: true, Path: reconstruct(g, came, entry, exit)}
		}

		for _, nbr := range g.Neighbors(current) {
			i := g.index(nbr.Cell)
			if seen[i] || !g.IsOpen(current, nbr.Direction) || blocked.Has(nbr.Cell) {
				continue
			}
			seen[i] = true
			came[i] = step{from: current, dir: nbr.Direction}
			queue = append(queue, nbr.Cell)
		}
	}

	return Solution{}
}

// reconstruct walks the predecessor links from exit back to entry.
func reconstruct(g *Grid, came []step, entry, exit Cell) Path {
	var letters []byte
	for c := exit; c != entry; {
		s := came[g.index(c)]
		letters = append(letters, s.dir.Letter())
		c = s.from
	}
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}
	return Path(letters)
}

// Distance returns the number of steps of a shortest path between from and to,
// or -1 when to cannot be reached.
func Distance(g *Grid, from, to Cell, blocked CellSet) int {
	s := Solve(g, from, to, blocked)
	if !s.Found {
		return -1
	}
	return s.Path.Len()
}

// Walk replays path from start over open walls and returns the cell it ends on.
func Walk(g *Grid, start Cell, path Path) (Cell, error) {
	if !g.InBounds(start) {
		return start, fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}

	current := start
	for i := 0; i < len(path); i++ {
		d, ok := DirectionFromLetter(path[i])
		if !ok {
			return current, fmt.Errorf("%w: letter %q at step %d", ErrInvalidPath, path[i], i)
		}
		next := current.Step(d)
		if !g.InBounds(next) || !g.IsOpen(current, d) {
			return current, fmt.Errorf("%w: %s wall of %s is closed at step %d", ErrInvalidPath, strings.ToLower(d.String()), current, i)
		}
		current = next
	}
	return current, nil
}
