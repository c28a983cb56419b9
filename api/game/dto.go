// Package gameapi provides structures and utilities for creating and playing mazes over HTTP.
package gameapi

import (
	"github.com/beka-birhanu/vinom-fog/game"
	"github.com/google/uuid"
)

// NewMazeRequest represents a request to create a new maze session.
// Omitted fields fall back to the server defaults.
type NewMazeRequest struct {
	Height            *int  `json:"height" binding:"omitempty,min=1,max=100"`
	Width             *int  `json:"width" binding:"omitempty,min=1,max=100"`
	StartRow          *int  `json:"start_row" binding:"omitempty,min=0"`
	StartCol          *int  `json:"start_col" binding:"omitempty,min=0"`
	Vision            *int  `json:"vision" binding:"omitempty,min=0"`
	PersistVisibility *bool `json:"persist_visibility"`
	ResponsiveBorder  *bool `json:"responsive_border"`
}

// NewMazeResponse carries the session ID, the token needed to drive it and the first snapshot.
type NewMazeResponse struct {
	ID    uuid.UUID     `json:"id"`
	Token string        `json:"token"`
	State game.Snapshot `json:"state"`
}

// MoveRequest represents one direction command, e.g. "north", "n" or "up".
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// MoveResponse reports the outcome of a command and the state after it.
type MoveResponse struct {
	Accepted bool          `json:"accepted"`
	Status   game.Status   `json:"status"`
	State    game.Snapshot `json:"state"`
}
