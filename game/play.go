package game

import (
	"context"
	"errors"
	"io"

	"github.com/beka-birhanu/vinom-fog/game/maze"
)

// ErrQuit is returned by an InputSource when the player asks to leave.
var ErrQuit = errors.New("player quit")

// Renderer draws a snapshot of the game on some surface.
type Renderer interface {
	Render(Snapshot) error
}

// InputSource delivers direction commands one at a time.
// It returns ErrQuit or io.EOF when no more commands will come.
type InputSource interface {
	Next(ctx context.Context) (maze.Direction, error)
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(Snapshot) error

// Render implements Renderer.
func (f RendererFunc) Render(s Snapshot) error {
	return f(s)
}

// Play drives a single-player session: every command is fully processed and
// rendered before the next one is read. It returns nil when the goal is reached
// or the input ends.
func Play(ctx context.Context, s *MazeState, in InputSource, out Renderer) error {
	if err := out.Render(s.Snapshot()); err != nil {
		return err
	}

	for s.Status == Playing {
		if err := ctx.Err(); err != nil {
			return err
		}

		d, err := in.Next(ctx)
		if errors.Is(err, ErrQuit) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if _, err := s.Step(d); err != nil {
			if errors.Is(err, maze.ErrInvalidDirection) {
				continue
			}
			return err
		}

		if err := out.Render(s.Snapshot()); err != nil {
			return err
		}
	}

	return nil
}
