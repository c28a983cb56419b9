package game

import "github.com/beka-birhanu/vinom-fog/game/maze"

// CellView is the read-only view of one cell handed to renderers.
type CellView struct {
	North   bool `json:"n"`
	South   bool `json:"s"`
	East    bool `json:"e"`
	West    bool `json:"w"`
	Visible bool `json:"v"`
}

// Snapshot is a deep copy of a MazeState. Renderers may keep it as long as they
// like; it shares no memory with the live state.
type Snapshot struct {
	Height            int               `json:"height"`
	Width             int               `json:"width"`
	Cells             [][]CellView      `json:"cells"`
	Player            maze.CellPosition `json:"player"`
	Goal              maze.CellPosition `json:"goal"`
	Status            Status            `json:"status"`
	Vision            int               `json:"vision"`
	PersistVisibility bool              `json:"persist_visibility"`
	ResponsiveBorder  bool              `json:"responsive_border"`
	MaxManhattan      int               `json:"max_manhattan"`
	Distance          int               `json:"distance"`
	Moves             int               `json:"moves"`
}

// Snapshot copies the current state.
func (s *MazeState) Snapshot() Snapshot {
	cells := make([][]CellView, s.Grid.Height)
	for row := range cells {
		cells[row] = make([]CellView, s.Grid.Width)
		for col, c := range s.Grid.Cells[row] {
			cells[row][col] = CellView{
				North:   c.NorthWall,
				South:   c.SouthWall,
				East:    c.EastWall,
				West:    c.WestWall,
				Visible: c.Visible,
			}
		}
	}

	return Snapshot{
		Height:            s.Grid.Height,
		Width:             s.Grid.Width,
		Cells:             cells,
		Player:            s.Player,
		Goal:              s.Goal,
		Status:            s.Status,
		Vision:            s.Vision,
		PersistVisibility: s.PersistVisibility,
		ResponsiveBorder:  s.ResponsiveBorder,
		MaxManhattan:      s.MaxManhattan,
		Distance:          s.Distance(),
		Moves:             s.Moves,
	}
}

// ManhattanRatio scales Distance into [0, 1] by MaxManhattan.
func (s Snapshot) ManhattanRatio() float64 {
	if s.MaxManhattan == 0 {
		return 0
	}
	return float64(s.Distance) / float64(s.MaxManhattan)
}

// HasWall reports whether the cell at (row, col) has a wall facing d.
// Positions outside the snapshot read as walled.
func (s Snapshot) HasWall(row, col int, d maze.Direction) bool {
	if row < 0 || row >= s.Height || col < 0 || col >= s.Width {
		return true
	}
	c := s.Cells[row][col]
	switch d {
	case maze.North:
		return c.North
	case maze.South:
		return c.South
	case maze.East:
		return c.East
	case maze.West:
		return c.West
	default:
		return true
	}
}

// IsVisible reports whether the cell at (row, col) is revealed.
func (s Snapshot) IsVisible(row, col int) bool {
	if row < 0 || row >= s.Height || col < 0 || col >= s.Width {
		return false
	}
	return s.Cells[row][col].Visible
}
