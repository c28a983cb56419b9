package i

import (
	"context"

	"github.com/beka-birhanu/vinom-fog/game"
	"github.com/beka-birhanu/vinom-fog/game/maze"
	"github.com/google/uuid"
)

// GameSessionManager owns the live single-player maze sessions.
type GameSessionManager interface {
	// NewSession generates a maze and returns its ID and first snapshot.
	NewSession(context.Context, game.Options) (uuid.UUID, game.Snapshot, error)

	// Move processes one direction command for the session.
	Move(context.Context, uuid.UUID, maze.Direction) (game.Outcome, game.Snapshot, error)

	// Snapshot returns the current state of the session.
	Snapshot(context.Context, uuid.UUID) (game.Snapshot, error)

	// End stops the session and forgets it.
	End(uuid.UUID) error
}
