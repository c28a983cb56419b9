package game

import "github.com/beka-birhanu/vinom-fog/game/maze"

// ComputeVisibility marks the cells the player can currently see.
//
// Sight runs in a straight line in each of the four directions and stops at
// the first wall, the grid edge, or once the next step would reach Vision.
// Without persistence every cell is hidden first; with it, revealed cells stay revealed.
func (s *MazeState) ComputeVisibility() {
	if !s.PersistVisibility {
		for _, row := range s.Grid.Cells {
			for _, cell := range row {
				cell.Visible = false
			}
		}
	}

	s.mustCell(s.Player).Visible = true

	for _, d := range maze.Directions {
		s.sweep(d)
	}
}

// sweep reveals cells from the player outwards in direction d.
func (s *MazeState) sweep(d maze.Direction) {
	cur := s.Player
	for step := 1; step < s.Vision; step++ {
		if s.Grid.HasWall(cur.Row, cur.Col, d) {
			return
		}
		next := cur.Step(d)
		cell, err := s.Grid.CellAt(next.Row, next.Col)
		if err != nil {
			return
		}
		cell.Visible = true
		cur = next
	}
}

// VisibleCells lists every revealed cell in row-major order.
func (s *MazeState) VisibleCells() []maze.CellPosition {
	var visible []maze.CellPosition
	for row, cells := range s.Grid.Cells {
		for col, cell := range cells {
			if cell.Visible {
				visible = append(visible, maze.CellPosition{Row: row, Col: col})
			}
		}
	}
	return visible
}
