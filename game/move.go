package game

import (
	"fmt"

	"github.com/beka-birhanu/vinom-fog/game/maze"
)

// Outcome is the result of one processed direction command.
type Outcome struct {
	Accepted bool   `json:"accepted"`
	Status   Status `json:"status"`
}

// AttemptMove moves the player one cell in direction d if no wall is in the way.
// A blocked move returns false and leaves the state untouched; it is not an error.
// Once the goal is reached the game is over and every move is refused with ErrGameOver.
//
// AttemptMove does not refresh the fog; callers pair it with ComputeVisibility
// or use Step.
func (s *MazeState) AttemptMove(d maze.Direction) (bool, error) {
	if !d.Valid() {
		return false, fmt.Errorf("%w: %d", maze.ErrInvalidDirection, int(d))
	}
	if s.Status == Won {
		return false, ErrGameOver
	}

	if s.mustCell(s.Player).HasWall(d) {
		return false, nil
	}

	s.Player = s.Player.Step(d)
	s.mustCell(s.Player)
	s.Moves++

	if s.Player == s.Goal {
		s.Status = Won
	}
	return true, nil
}

// Step processes one direction command: the move, the fog refresh on success,
// and the win check.
func (s *MazeState) Step(d maze.Direction) (Outcome, error) {
	accepted, err := s.AttemptMove(d)
	if err != nil {
		return Outcome{Status: s.Status}, err
	}
	if accepted {
		s.ComputeVisibility()
	}
	return Outcome{Accepted: accepted, Status: s.Status}, nil
}

// mustCell returns the cell at pos. The player never leaves the grid through
// AttemptMove, so an off-grid position means the state was corrupted.
func (s *MazeState) mustCell(pos maze.CellPosition) *maze.Cell {
	cell, err := s.Grid.CellAt(pos.Row, pos.Col)
	if err != nil {
		panic(fmt.Sprintf("game: player left the maze: %v", err))
	}
	return cell
}
