// Package game holds the per-session maze state: player and goal positions,
// fog of war and the move/win state machine.
//
// A MazeState is owned by exactly one session and is not safe for concurrent use.
package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/beka-birhanu/vinom-fog/game/maze"
)

// Game-related errors.
var (
	ErrInvalidStart  = errors.New("start position is out of the maze")
	ErrInvalidVision = errors.New("vision must not be negative")
	ErrGameOver      = errors.New("game is already won")
)

// Status is the state of the move/win state machine.
type Status int

const (
	Playing Status = iota
	Won
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "playing":
		*s = Playing
	case "won":
		*s = Won
	default:
		return fmt.Errorf("unknown status %q", b)
	}
	return nil
}

// Options are the inputs recognized at session creation.
type Options struct {
	Height            int  `json:"height"`
	Width             int  `json:"width"`
	StartRow          int  `json:"start_row"`
	StartCol          int  `json:"start_col"`
	Vision            int  `json:"vision"`
	PersistVisibility bool `json:"persist_visibility"`
	ResponsiveBorder  bool `json:"responsive_border"` // cosmetic hint for renderers
}

// Validate checks the options before any grid is allocated.
func (o Options) Validate() error {
	if o.Height < 1 || o.Width < 1 {
		return fmt.Errorf("%w: %dx%d", maze.ErrInvalidDimension, o.Height, o.Width)
	}
	if o.StartRow < 0 || o.StartRow >= o.Height || o.StartCol < 0 || o.StartCol >= o.Width {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidStart, o.StartRow, o.StartCol)
	}
	if o.Vision < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidVision, o.Vision)
	}
	return nil
}

// MazeState composes a generated grid with the player, the goal and the fog settings.
type MazeState struct {
	Grid              *maze.Grid
	Player            maze.CellPosition
	Goal              maze.CellPosition // fixed at creation, may coincide with the start
	Vision            int
	PersistVisibility bool
	ResponsiveBorder  bool
	MaxManhattan      int // largest Manhattan distance between two cells
	Status            Status
	Moves             int // accepted moves so far
}

// NewMazeState builds a grid, carves it from the north-west corner, places the
// goal uniformly at random and computes the initial fog.
func NewMazeState(opts Options, rng *rand.Rand) (*MazeState, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	grid, err := maze.NewGrid(opts.Height, opts.Width)
	if err != nil {
		return nil, err
	}

	if err := maze.Generate(grid, 0, 0, rng); err != nil {
		return nil, fmt.Errorf("generating maze: %w", err)
	}

	s := &MazeState{
		Grid:              grid,
		Player:            maze.CellPosition{Row: opts.StartRow, Col: opts.StartCol},
		Goal:              maze.CellPosition{Row: rng.Intn(opts.Height), Col: rng.Intn(opts.Width)},
		Vision:            opts.Vision,
		PersistVisibility: opts.PersistVisibility,
		ResponsiveBorder:  opts.ResponsiveBorder,
		MaxManhattan:      opts.Height + opts.Width - 2,
		Status:            Playing,
	}
	s.ComputeVisibility()
	return s, nil
}

// Distance returns the Manhattan distance between the player and the goal.
func (s *MazeState) Distance() int {
	return abs(s.Player.Row-s.Goal.Row) + abs(s.Player.Col-s.Goal.Col)
}

// ManhattanRatio scales Distance into [0, 1] by MaxManhattan.
// Renderers use it to shade walls as the player closes in on the goal.
func (s *MazeState) ManhattanRatio() float64 {
	if s.MaxManhattan == 0 {
		return 0
	}
	return float64(s.Distance()) / float64(s.MaxManhattan)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
