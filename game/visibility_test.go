package game

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/vinom-fog/game/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeVisibility(t *testing.T) {
	t.Run("radius is exclusive", func(t *testing.T) {
		s := corridor(t, 6, 3)
		s.ComputeVisibility()
		assert.Equal(t, []maze.CellPosition{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, s.VisibleCells())
	})

	t.Run("sight runs both ways", func(t *testing.T) {
		s := corridor(t, 9, 3)
		s.Player = maze.CellPosition{Row: 0, Col: 4}
		s.ComputeVisibility()
		assert.Equal(t, []maze.CellPosition{{Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}, {Row: 0, Col: 5}, {Row: 0, Col: 6}}, s.VisibleCells())
	})

	t.Run("a wall hides everything behind it", func(t *testing.T) {
		s := corridor(t, 6, 10, 1)
		s.ComputeVisibility()
		assert.Equal(t, []maze.CellPosition{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, s.VisibleCells())
	})

	t.Run("grid edge stops the sweep", func(t *testing.T) {
		s := corridor(t, 3, 10)
		s.ComputeVisibility()
		assert.Len(t, s.VisibleCells(), 3)
	})

	t.Run("vision zero and one only reveal the player", func(t *testing.T) {
		for _, vision := range []int{0, 1} {
			s := corridor(t, 4, vision)
			s.Player = maze.CellPosition{Row: 0, Col: 1}
			s.ComputeVisibility()
			assert.Equal(t, []maze.CellPosition{{Row: 0, Col: 1}}, s.VisibleCells())
		}
	})

	t.Run("plus sign only", func(t *testing.T) {
		s := openField(t, 5, 5, 10)
		s.Player = maze.CellPosition{Row: 2, Col: 2}
		s.ComputeVisibility()

		visible := s.VisibleCells()
		assert.Len(t, visible, 9)
		for _, pos := range visible {
			assert.True(t, pos.Row == 2 || pos.Col == 2, "%v is off the cross", pos)
		}
	})

	t.Run("without persistence the fog comes back", func(t *testing.T) {
		s := corridor(t, 6, 2)
		s.ComputeVisibility()
		s.Player = maze.CellPosition{Row: 0, Col: 4}
		s.ComputeVisibility()
		assert.Equal(t, []maze.CellPosition{{Row: 0, Col: 3}, {Row: 0, Col: 4}, {Row: 0, Col: 5}}, s.VisibleCells())
	})

	t.Run("with persistence revealed cells stay", func(t *testing.T) {
		s := corridor(t, 6, 2)
		s.PersistVisibility = true
		s.ComputeVisibility()
		s.Player = maze.CellPosition{Row: 0, Col: 4}
		s.ComputeVisibility()
		assert.Equal(t, []maze.CellPosition{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 3}, {Row: 0, Col: 4}, {Row: 0, Col: 5}}, s.VisibleCells())
	})
}

func TestVisibilityIsMonotonicWithPersistence(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	s, err := NewMazeState(Options{Height: 12, Width: 12, Vision: 3, PersistVisibility: true}, rng)
	require.NoError(t, err)
	s.Goal = maze.CellPosition{Row: -1, Col: -1}

	prev := visibleSet(s)
	for i := 0; i < 500; i++ {
		out, err := s.Step(maze.Directions[rng.Intn(4)])
		require.NoError(t, err)

		cur := visibleSet(s)
		for pos := range prev {
			assert.True(t, cur[pos], "move %d hid %v", i, pos)
		}
		if !out.Accepted {
			assert.Equal(t, prev, cur, "rejected move changed the fog")
		}
		prev = cur
	}
}

func visibleSet(s *MazeState) map[maze.CellPosition]bool {
	set := map[maze.CellPosition]bool{}
	for _, pos := range s.VisibleCells() {
		set[pos] = true
	}
	return set
}
