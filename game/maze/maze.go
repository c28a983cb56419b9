/*
Package maze provides tools for creating and carving rectangular mazes.

It defines the `Grid` structure, composed of `Cell` objects that carry wall
configurations plus the generation and visibility flags.

The package includes a randomized recursive backtracker that carves a perfect
maze (a spanning tree of passages), bidirectional wall manipulation, neighbor
lookup and ASCII visualization of the grid.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDimension = errors.New("invalid maze dimension")
	ErrOutOfBounds      = errors.New("position is out of the maze")
	ErrInvalidDirection = errors.New("invalid direction")
)

// Grid represents a rectangular maze consisting of cells with walls.
type Grid struct {
	Width  int       // Width of the maze (number of columns)
	Height int       // Height of the maze (number of rows)
	Cells  [][]*Cell // 2D grid of cells forming the maze
}

// NewGrid initializes a fully walled grid of the given dimensions.
func NewGrid(height, width int) (*Grid, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, height, width)
	}

	cells := make([][]*Cell, height)
	for i := range cells {
		cells[i] = make([]*Cell, width)
		for j := range cells[i] {
			cells[i][j] = &Cell{
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}, nil
}

// InBound checks if the position lies inside the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// CellAt returns the cell at (row, col) or ErrOutOfBounds.
func (g *Grid) CellAt(row, col int) (*Cell, error) {
	if !g.InBound(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	return g.Cells[row][col], nil
}

// HasWall reports whether the cell at (row, col) has a wall facing d.
// Positions outside the grid read as walled.
func (g *Grid) HasWall(row, col int, d Direction) bool {
	cell, err := g.CellAt(row, col)
	if err != nil {
		return true
	}
	return cell.HasWall(d)
}

// CarvePassage removes the wall between (row, col) and its neighbor in direction d.
// Both sides of the edge are cleared together; nothing changes if either cell is off the grid.
func (g *Grid) CarvePassage(row, col int, d Direction) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}

	from, err := g.CellAt(row, col)
	if err != nil {
		return err
	}

	next := CellPosition{Row: row, Col: col}.Step(d)
	to, err := g.CellAt(next.Row, next.Col)
	if err != nil {
		return err
	}

	from.setWall(d, false)
	to.setWall(d.Opposite(), false)
	return nil
}

// PassageCount returns the number of carved edges, each counted once.
func (g *Grid) PassageCount() int {
	count := 0
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			// South and east cover every interior edge exactly once.
			if row+1 < g.Height && !g.Cells[row][col].SouthWall {
				count++
			}
			if col+1 < g.Width && !g.Cells[row][col].EastWall {
				count++
			}
		}
	}
	return count
}

// String provides a textual representation of the maze, ignoring fog.
func (g *Grid) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", g.Width) + "\n")

	for row := 0; row < g.Height; row++ {
		cellRow := "|"
		for col := 0; col < g.Width; col++ {
			if g.Cells[row][col].EastWall {
				cellRow += "   |"
			} else {
				cellRow += "    "
			}
		}
		output.WriteString(cellRow + "\n")

		wallRow := "+"
		for col := 0; col < g.Width; col++ {
			if g.Cells[row][col].SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}
