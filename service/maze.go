package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/amazeing/domain"
	"github.com/beka-birhanu/amazeing/encoder"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/google/uuid"
)

var ErrNoRepo = errors.New("maze repository is not configured")

// MazeService generates, caches and stores mazes.
type MazeService struct {
	repo   i.MazeRepo
	cache  i.MazeCache
	logger *log.Logger
	now    func() time.Time
}

// Option customizes a MazeService.
type Option func(*MazeService)

// WithRepo sets the repository generated mazes are saved to.
func WithRepo(r i.MazeRepo) Option {
	return func(s *MazeService) {
		s.repo = r
	}
}

// WithCache sets the cache encoded mazes are looked up in before generating.
func WithCache(c i.MazeCache) Option {
	return func(s *MazeService) {
		s.cache = c
	}
}

// WithLogger sets the service logger. Logging is discarded by default.
func WithLogger(l *log.Logger) Option {
	return func(s *MazeService) {
		s.logger = l
	}
}

// NewMazeService returns a maze service. Without a repository only Build and Regenerator
// are usable.
func NewMazeService(opts ...Option) *MazeService {
	s := &MazeService{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard, "", 0)
	}
	return s
}

// Build generates the maze described by spec and solves it.
func (s *MazeService) Build(spec dmn.Spec) (*maze.Maze, maze.Solution, error) {
	opts, err := spec.Options()
	if err != nil {
		return nil, maze.Solution{}, fmt.Errorf("%w: %w", i.ErrInvalidSpec, err)
	}
	opts = append(opts, maze.WithLogger(s.logger))

	m, err := maze.New(spec.Config(), opts...)
	if err != nil {
		return nil, maze.Solution{}, fmt.Errorf("%w: %w", i.ErrInvalidSpec, err)
	}
	return m, m.Solve(), nil
}

// Regenerator returns a function building a new maze from spec on every call. Calls use
// spec.Seed+1, spec.Seed+2 and so on, and are safe for concurrent use.
func (s *MazeService) Regenerator(spec dmn.Spec) func() (*maze.Maze, maze.Solution, error) {
	var (
		mu      sync.Mutex
		counter int64
	)
	return func() (*maze.Maze, maze.Solution, error) {
		mu.Lock()
		counter++
		seed := spec.Seed + counter
		mu.Unlock()

		return s.Build(spec.WithSeed(seed))
	}
}

// Create generates the maze described by spec, going through the cache when one is set,
// and saves it.
func (s *MazeService) Create(ctx context.Context, spec dmn.Spec) (*dmn.MazeRecord, error) {
	if s.repo == nil {
		return nil, ErrNoRepo
	}

	output, err := s.encoded(ctx, spec)
	if err != nil {
		return nil, err
	}

	record := &dmn.MazeRecord{
		ID:        uuid.New(),
		Spec:      spec,
		Output:    string(output),
		CreatedAt: s.now(),
	}
	if err := s.repo.Save(record); err != nil {
		s.logger.Printf("[ERROR] saving maze %s: %s", record.ID, err)
		return nil, err
	}

	s.logger.Printf("[INFO] created maze %s (%s)", record.ID, spec.Key())
	return record, nil
}

// ByID returns a stored maze.
func (s *MazeService) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	if s.repo == nil {
		return nil, ErrNoRepo
	}
	return s.repo.ByID(id)
}

// Regenerate creates a new maze from the spec of a stored one with the next seed.
func (s *MazeService) Regenerate(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	previous, err := s.ByID(id)
	if err != nil {
		return nil, err
	}
	return s.Create(ctx, previous.Spec.WithSeed(previous.Spec.Seed+1))
}

func (s *MazeService) encoded(ctx context.Context, spec dmn.Spec) ([]byte, error) {
	var buildErr error
	build := func() ([]byte, error) {
		m, solution, err := s.Build(spec)
		if err != nil {
			buildErr = err
			return nil, err
		}
		return encoder.EncodeHex(encoder.FromMaze(m, solution)), nil
	}

	if s.cache == nil {
		return build()
	}

	output, err := s.cache.Fetch(ctx, spec.Key(), build)
	if buildErr != nil {
		return nil, buildErr
	}
	if err != nil {
		s.logger.Printf("[WARN] maze cache unavailable, generating directly: %s", err)
		return build()
	}
	return output, nil
}
