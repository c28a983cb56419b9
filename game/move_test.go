package game

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/vinom-fog/game/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptMove(t *testing.T) {
	t.Run("legality matches the walls", func(t *testing.T) {
		s, err := NewMazeState(Options{Height: 6, Width: 6, Vision: 2}, rand.New(rand.NewSource(8)))
		require.NoError(t, err)
		s.Goal = maze.CellPosition{Row: -1, Col: -1}

		for row := 0; row < 6; row++ {
			for col := 0; col < 6; col++ {
				for _, d := range maze.Directions {
					from := maze.CellPosition{Row: row, Col: col}
					s.Player = from
					moves := s.Moves
					wall := s.Grid.HasWall(row, col, d)

					ok, err := s.AttemptMove(d)
					require.NoError(t, err)
					assert.Equal(t, !wall, ok)
					if wall {
						assert.Equal(t, from, s.Player)
						assert.Equal(t, moves, s.Moves)
					} else {
						assert.Equal(t, from.Step(d), s.Player)
						assert.Equal(t, moves+1, s.Moves)
					}
				}
			}
		}
	})

	t.Run("outer walls hold", func(t *testing.T) {
		s := corridor(t, 3, 1)
		ok, err := s.AttemptMove(maze.West)
		require.NoError(t, err)
		assert.False(t, ok)
		ok, err = s.AttemptMove(maze.North)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, maze.CellPosition{}, s.Player)
	})

	t.Run("invalid direction", func(t *testing.T) {
		s := corridor(t, 3, 1)
		ok, err := s.AttemptMove(maze.Direction(7))
		assert.False(t, ok)
		assert.ErrorIs(t, err, maze.ErrInvalidDirection)
	})

	t.Run("corrupted position panics", func(t *testing.T) {
		s := corridor(t, 3, 1)
		s.Player = maze.CellPosition{Row: 4, Col: 4}
		assert.Panics(t, func() { _, _ = s.AttemptMove(maze.East) })
	})
}

func TestWinDetection(t *testing.T) {
	s := corridor(t, 4, 2)
	s.Goal = maze.CellPosition{Row: 0, Col: 2}

	out, err := s.Step(maze.East)
	require.NoError(t, err)
	assert.Equal(t, Outcome{Accepted: true, Status: Playing}, out)

	out, err = s.Step(maze.West)
	require.NoError(t, err)
	assert.Equal(t, Playing, out.Status)

	_, _ = s.Step(maze.East)
	out, err = s.Step(maze.East)
	require.NoError(t, err)
	assert.Equal(t, Outcome{Accepted: true, Status: Won}, out)
	assert.Equal(t, 4, s.Moves)

	t.Run("won is terminal", func(t *testing.T) {
		ok, err := s.AttemptMove(maze.West)
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrGameOver)
		assert.Equal(t, s.Goal, s.Player)

		out, err := s.Step(maze.East)
		assert.ErrorIs(t, err, ErrGameOver)
		assert.Equal(t, Won, out.Status)
	})
}

func TestStepRefreshesFogOnlyOnAcceptedMoves(t *testing.T) {
	s := corridor(t, 5, 2, 1)
	s.ComputeVisibility()
	assert.Len(t, s.VisibleCells(), 2)

	out, err := s.Step(maze.East)
	require.NoError(t, err)
	assert.True(t, out.Accepted)
	assert.Equal(t, []maze.CellPosition{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, s.VisibleCells())

	s.Grid.Cells[0][0].Visible = false
	out, err = s.Step(maze.East)
	require.NoError(t, err)
	assert.False(t, out.Accepted)
	assert.False(t, s.Grid.Cells[0][0].Visible, "rejected move must not recompute the fog")
}

func TestSnapshotIsACopy(t *testing.T) {
	s := corridor(t, 3, 3)
	s.ComputeVisibility()
	snap := s.Snapshot()

	assert.Equal(t, 1, snap.Height)
	assert.Equal(t, 3, snap.Width)
	assert.False(t, snap.HasWall(0, 0, maze.East))
	assert.True(t, snap.HasWall(0, 0, maze.West))
	assert.True(t, snap.HasWall(5, 5, maze.East))
	assert.True(t, snap.IsVisible(0, 2))
	assert.False(t, snap.IsVisible(-1, 0))

	s.Grid.Cells[0][2].Visible = false
	s.Player = maze.CellPosition{Row: 0, Col: 1}
	assert.True(t, snap.Cells[0][2].Visible)
	assert.Equal(t, maze.CellPosition{}, snap.Player)
}
