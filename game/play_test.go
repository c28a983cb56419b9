package game

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/beka-birhanu/vinom-fog/game/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// script is an InputSource that replays fixed commands and then reports io.EOF.
type script struct {
	dirs []maze.Direction
	err  error
}

func (s *script) Next(ctx context.Context) (maze.Direction, error) {
	if len(s.dirs) == 0 {
		if s.err != nil {
			return 0, s.err
		}
		return 0, io.EOF
	}
	d := s.dirs[0]
	s.dirs = s.dirs[1:]
	return d, nil
}

type recorder struct {
	frames []Snapshot
	failAt int
}

func (r *recorder) Render(s Snapshot) error {
	r.frames = append(r.frames, s)
	if r.failAt > 0 && len(r.frames) == r.failAt {
		return errors.New("screen gone")
	}
	return nil
}

func TestPlay(t *testing.T) {
	t.Run("stops on the goal", func(t *testing.T) {
		s := corridor(t, 4, 2)
		s.Goal = maze.CellPosition{Row: 0, Col: 2}
		in := &script{dirs: []maze.Direction{maze.West, maze.East, maze.East, maze.East}}
		out := &recorder{}

		require.NoError(t, Play(context.Background(), s, in, out))
		assert.Equal(t, Won, s.Status)
		// initial frame, bump, two accepted moves; the fourth command is never read.
		require.Len(t, out.frames, 4)
		assert.Equal(t, Won, out.frames[3].Status)
		assert.Len(t, in.dirs, 1)
	})

	t.Run("input end leaves the game playing", func(t *testing.T) {
		s := corridor(t, 4, 2)
		out := &recorder{}
		require.NoError(t, Play(context.Background(), s, &script{dirs: []maze.Direction{maze.East}}, out))
		assert.Equal(t, Playing, s.Status)
		assert.Len(t, out.frames, 2)
	})

	t.Run("quit", func(t *testing.T) {
		s := corridor(t, 4, 2)
		assert.NoError(t, Play(context.Background(), s, &script{err: ErrQuit}, &recorder{}))
	})

	t.Run("invalid commands are skipped", func(t *testing.T) {
		s := corridor(t, 4, 2)
		out := &recorder{}
		in := &script{dirs: []maze.Direction{maze.Direction(12), maze.East}}
		require.NoError(t, Play(context.Background(), s, in, out))
		assert.Equal(t, maze.CellPosition{Row: 0, Col: 1}, s.Player)
		assert.Len(t, out.frames, 2)
	})

	t.Run("renderer errors stop the session", func(t *testing.T) {
		s := corridor(t, 4, 2)
		out := &recorder{failAt: 2}
		err := Play(context.Background(), s, &script{dirs: []maze.Direction{maze.East, maze.East}}, out)
		assert.EqualError(t, err, "screen gone")
	})

	t.Run("input errors are returned", func(t *testing.T) {
		s := corridor(t, 4, 2)
		boom := errors.New("keyboard unplugged")
		assert.ErrorIs(t, Play(context.Background(), s, &script{err: boom}, &recorder{}), boom)
	})

	t.Run("cancelled context", func(t *testing.T) {
		s := corridor(t, 4, 2)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, Play(ctx, s, &script{dirs: []maze.Direction{maze.East}}, &recorder{}), context.Canceled)
	})

	t.Run("renderer func", func(t *testing.T) {
		s := corridor(t, 2, 2)
		calls := 0
		r := RendererFunc(func(Snapshot) error { calls++; return nil })
		require.NoError(t, Play(context.Background(), s, &script{}, r))
		assert.Equal(t, 1, calls)
	})
}
