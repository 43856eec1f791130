package i

import (
	"context"

	dmn "github.com/beka-birhanu/amazeing/domain"
	"github.com/google/uuid"
)

// MazeManager creates and looks up stored mazes.
type MazeManager interface {
	Create(ctx context.Context, spec dmn.Spec) (*dmn.MazeRecord, error)
	ByID(id uuid.UUID) (*dmn.MazeRecord, error)
	// Regenerate creates a new maze from a stored spec with the next seed.
	Regenerate(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
}
