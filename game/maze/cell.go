package maze

import (
	"fmt"
	"strings"
)

// Cell represents a single cell in a maze grid.
// It includes properties for walls on each side plus generation and fog flags.
type Cell struct {
	NorthWall bool // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool // WestWall indicates whether there is a wall on the west side of the cell.
	Visited   bool // Visited is only meaningful while the generator runs.
	Visible   bool // Visible marks the cell as revealed to the player.
}

// HasWall returns true if there is a wall on the given side of the cell.
func (c *Cell) HasWall(d Direction) bool {
	switch d {
	case North:
		return c.NorthWall
	case South:
		return c.SouthWall
	case East:
		return c.EastWall
	case West:
		return c.WestWall
	default:
		return true
	}
}

// setWall sets the presence of a wall on the given side of the cell.
func (c *Cell) setWall(d Direction, hasWall bool) {
	switch d {
	case North:
		c.NorthWall = hasWall
	case South:
		c.SouthWall = hasWall
	case East:
		c.EastWall = hasWall
	case West:
		c.WestWall = hasWall
	}
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Column index of the cell
}

// Step returns the position one unit away in direction d.
func (cp CellPosition) Step(d Direction) CellPosition {
	delta := d.Offset()
	return CellPosition{Row: cp.Row + delta.Row, Col: cp.Col + delta.Col}
}

// Direction is one of the four cardinal directions.
type Direction int

const (
	North Direction = iota
	South
	West
	East
)

// Directions lists the four directions in the order the generator shuffles them.
var Directions = [4]Direction{North, South, West, East}

var offsets = [4]CellPosition{
	North: {Row: -1, Col: 0},
	South: {Row: 1, Col: 0},
	West:  {Row: 0, Col: -1},
	East:  {Row: 0, Col: 1},
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= North && d <= East
}

// Offset returns the unit (row, col) offset of the direction.
func (d Direction) Offset() CellPosition {
	if !d.Valid() {
		return CellPosition{}
	}
	return offsets[d]
}

// Opposite returns the complementary direction: north<->south, east<->west.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a name such as "north", "n" or "up" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n", "up":
		return North, nil
	case "south", "s", "down":
		return South, nil
	case "east", "e", "right":
		return East, nil
	case "west", "w", "left":
		return West, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}
