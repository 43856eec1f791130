package config

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	dmn "github.com/beka-birhanu/amazeing/domain"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/joho/godotenv"
)

// Required keys of a maze config file.
var requiredKeys = []string{"WIDTH", "HEIGHT", "ENTRY", "EXIT", "OUTPUT_FILE", "PERFECT"}

// MazeFile is a validated maze config file.
type MazeFile struct {
	Width      int
	Height     int
	Entry      maze.Cell
	Exit       maze.Cell
	OutputFile string
	Perfect    bool
	Seed       int64 // Current Unix time when SEED is absent
	LoopFactor float64
	Pattern    maze.PatternMode
}

// LoadFile reads and validates the KEY=VALUE maze config at path.
func LoadFile(path string) (MazeFile, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return MazeFile{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parseValues(values)
}

// ParseFile reads and validates a maze config from r.
func ParseFile(r io.Reader) (MazeFile, error) {
	values, err := godotenv.Parse(r)
	if err != nil {
		return MazeFile{}, fmt.Errorf("parsing config: %w", err)
	}
	return parseValues(values)
}

func parseValues(values map[string]string) (MazeFile, error) {
	var missing []string
	for _, key := range requiredKeys {
		if strings.TrimSpace(values[key]) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return MazeFile{}, fmt.Errorf("%w: %s", ErrMissingKey, strings.Join(missing, ", "))
	}

	f := MazeFile{
		LoopFactor: maze.DefaultLoopFactor,
		Pattern:    maze.PatternAuto,
		OutputFile: strings.TrimSpace(values["OUTPUT_FILE"]),
	}

	var err error
	if f.Width, err = positiveInt(values, "WIDTH"); err != nil {
		return MazeFile{}, err
	}
	if f.Height, err = positiveInt(values, "HEIGHT"); err != nil {
		return MazeFile{}, err
	}
	if f.Entry, err = cell(values, "ENTRY"); err != nil {
		return MazeFile{}, err
	}
	if f.Exit, err = cell(values, "EXIT"); err != nil {
		return MazeFile{}, err
	}

	switch strings.ToLower(strings.TrimSpace(values["PERFECT"])) {
	case "true":
		f.Perfect = true
	case "false":
		f.Perfect = false
	default:
		return MazeFile{}, invalid("PERFECT", "must be True or False")
	}

	f.Seed = time.Now().Unix()
	if raw, ok := values["SEED"]; ok && strings.TrimSpace(raw) != "" {
		if f.Seed, err = strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err != nil {
			return MazeFile{}, invalid("SEED", "must be an integer")
		}
	}

	if raw, ok := values["LOOP_FACTOR"]; ok && strings.TrimSpace(raw) != "" {
		lf, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || lf < 0 || lf > 1 {
			return MazeFile{}, invalid("LOOP_FACTOR", "must be a number between 0 and 1")
		}
		f.LoopFactor = lf
	}

	if raw, ok := values["PATTERN"]; ok {
		if f.Pattern, err = maze.ParsePatternMode(raw); err != nil {
			return MazeFile{}, invalid("PATTERN", err.Error())
		}
	}

	if err := f.Spec().Config().Validate(); err != nil {
		return MazeFile{}, err
	}
	return f, nil
}

// Spec returns the file as a generation spec.
func (f MazeFile) Spec() dmn.Spec {
	return dmn.Spec{
		Width:      f.Width,
		Height:     f.Height,
		Entry:      f.Entry,
		Exit:       f.Exit,
		Perfect:    f.Perfect,
		Seed:       f.Seed,
		LoopFactor: f.LoopFactor,
		Pattern:    f.Pattern.String(),
	}
}

func invalid(key, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidValue, key, reason)
}

func positiveInt(values map[string]string, key string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(values[key]))
	if err != nil {
		return 0, invalid(key, "must be an integer")
	}
	if v <= 0 {
		return 0, invalid(key, "must be greater than 0")
	}
	return v, nil
}

func cell(values map[string]string, key string) (maze.Cell, error) {
	parts := strings.Split(values[key], ",")
	if len(parts) != 2 {
		return maze.Cell{}, invalid(key, "must be in format x,y")
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return maze.Cell{}, invalid(key, "coordinates must be integers")
	}
	return maze.Cell{X: x, Y: y}, nil
}
