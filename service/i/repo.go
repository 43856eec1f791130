package i

import (
	dmn "github.com/beka-birhanu/amazeing/domain"
	"github.com/google/uuid"
)

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or updates a maze record in the repository.
	Save(record *dmn.MazeRecord) error

	// ByID retrieves a maze record by its unique ID.
	// Returns ErrNotFound if the record does not exist.
	ByID(id uuid.UUID) (*dmn.MazeRecord, error)
}
