// Package domain holds the maze records shared by the service and its adapters.
package domain

import (
	"fmt"
	"time"

	"github.com/beka-birhanu/amazeing/maze"
	"github.com/google/uuid"
)

// Spec is everything needed to generate a maze again.
type Spec struct {
	Width      int       `json:"width" bson:"width"`
	Height     int       `json:"height" bson:"height"`
	Entry      maze.Cell `json:"entry" bson:"entry"`
	Exit       maze.Cell `json:"exit" bson:"exit"`
	Perfect    bool      `json:"perfect" bson:"perfect"`
	Seed       int64     `json:"seed" bson:"seed"`
	LoopFactor float64   `json:"loop_factor" bson:"loopFactor"`
	Pattern    string    `json:"pattern" bson:"pattern"`
}

// Config returns the generation parameters of the spec.
func (s Spec) Config() maze.Config {
	return maze.Config{
		Width:   s.Width,
		Height:  s.Height,
		Entry:   s.Entry,
		Exit:    s.Exit,
		Perfect: s.Perfect,
		Seed:    s.Seed,
	}
}

// Options parses the pattern mode and returns the maze options of the spec.
func (s Spec) Options() ([]maze.Option, error) {
	mode, err := maze.ParsePatternMode(s.Pattern)
	if err != nil {
		return nil, err
	}
	return []maze.Option{
		maze.WithLoopFactor(s.LoopFactor),
		maze.WithPattern(mode),
	}, nil
}

// WithSeed returns a copy of s using seed.
func (s Spec) WithSeed(seed int64) Spec {
	s.Seed = seed
	return s
}

// Key identifies every maze generated from s.
func (s Spec) Key() string {
	return fmt.Sprintf("maze:%dx%d:%s:%s:%t:%d:%g:%s",
		s.Width, s.Height, s.Entry, s.Exit, s.Perfect, s.Seed, s.LoopFactor, s.Pattern)
}

// MazeRecord is a generated maze as stored by the repository.
type MazeRecord struct {
	ID        uuid.UUID `bson:"_id"`
	Spec      Spec      `bson:"spec"`
	Output    string    `bson:"output"` // Hex output file
	CreatedAt time.Time `bson:"createdAt"`
}
