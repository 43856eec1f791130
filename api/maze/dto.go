// Package mazeapi provides the request and response shapes of the maze endpoints.
package mazeapi

import (
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/amazeing/domain"
	"github.com/beka-birhanu/amazeing/encoder"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/google/uuid"
)

// CreateMazeRequest represents a request to generate a new maze.
type CreateMazeRequest struct {
	Width      int       `json:"width" binding:"required,min=1,max=1000"`
	Height     int       `json:"height" binding:"required,min=1,max=1000"`
	Entry      maze.Cell `json:"entry"`
	Exit       maze.Cell `json:"exit"`
	Perfect    bool      `json:"perfect"`
	Seed       *int64    `json:"seed"`        // Current Unix time when absent
	LoopFactor *float64  `json:"loop_factor"` // maze.DefaultLoopFactor when absent
	Pattern    string    `json:"pattern"`     // auto, required or off
}

// Spec converts the request into a generation spec.
func (r CreateMazeRequest) Spec() dmn.Spec {
	spec := dmn.Spec{
		Width:      r.Width,
		Height:     r.Height,
		Entry:      r.Entry,
		Exit:       r.Exit,
		Perfect:    r.Perfect,
		Seed:       time.Now().Unix(),
		LoopFactor: maze.DefaultLoopFactor,
		Pattern:    r.Pattern,
	}
	if r.Seed != nil {
		spec.Seed = *r.Seed
	}
	if r.LoopFactor != nil {
		spec.LoopFactor = *r.LoopFactor
	}
	return spec
}

// MazeResponse represents a generated maze.
type MazeResponse struct {
	ID      uuid.UUID `json:"id"`
	Grid    []string  `json:"grid"`
	Entry   maze.Cell `json:"entry"`
	Exit    maze.Cell `json:"exit"`
	Path    maze.Path `json:"path"`
	Found   bool      `json:"found"`
	Seed    int64     `json:"seed"`
	Perfect bool      `json:"perfect"`
}

func newMazeResponse(record *dmn.MazeRecord) (*MazeResponse, error) {
	o, err := encoder.DecodeHex([]byte(record.Output))
	if err != nil {
		return nil, fmt.Errorf("stored maze %s: %w", record.ID, err)
	}
	return &MazeResponse{
		ID:      record.ID,
		Grid:    encoder.HexRows(o.Grid),
		Entry:   o.Entry,
		Exit:    o.Exit,
		Path:    o.Path,
		Found:   o.Path != "",
		Seed:    record.Spec.Seed,
		Perfect: record.Spec.Perfect,
	}, nil
}
