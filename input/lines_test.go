package input

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-fog/game"
	"github.com/beka-birhanu/vinom-fog/game/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	ctx := context.Background()

	t.Run("directions until eof", func(t *testing.T) {
		l := NewLines(strings.NewReader("north\n\n  S \nbogus\nleft\ne\n"))
		for _, want := range []maze.Direction{maze.North, maze.South, maze.West, maze.East} {
			d, err := l.Next(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, d)
		}
		_, err := l.Next(ctx)
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("quit", func(t *testing.T) {
		l := NewLines(strings.NewReader("up\nquit\ndown\n"))
		d, err := l.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, maze.North, d)
		_, err = l.Next(ctx)
		assert.ErrorIs(t, err, game.ErrQuit)
	})

	t.Run("canceled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := NewLines(strings.NewReader("up\n")).Next(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
