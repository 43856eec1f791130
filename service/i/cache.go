package i

import "context"

// MazeCache stores encoded mazes by generation key.
type MazeCache interface {
	// Fetch returns the value stored under key. On a miss it calls build once for all
	// concurrent callers of the same key and stores the result.
	Fetch(ctx context.Context, key string, build func() ([]byte, error)) ([]byte, error)
}
