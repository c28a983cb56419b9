// Package render draws game snapshots as text, either into an io.Writer or onto
// a tcell screen. Only revealed cells are drawn; the rest stay under fog.
package render

import (
	"fmt"

	"github.com/beka-birhanu/vinom-fog/game"
	"github.com/beka-birhanu/vinom-fog/game/maze"
)

// Kind tells a surface how to style a glyph.
type Kind int

const (
	Blank Kind = iota
	Fog
	Wall
	GoalWall
	Player
	Goal
)

// Glyph is one character of the laid out maze.
type Glyph struct {
	Rune rune
	Kind Kind
}

const fogRune = '░'

// Each cell takes cellWidth columns and cellHeight rows; borders are shared.
const (
	cellWidth  = 4
	cellHeight = 2
)

// Layout turns a snapshot into a (2H+1) x (4W+1) grid of glyphs.
func Layout(snap game.Snapshot) [][]Glyph {
	rows, cols := snap.Height*cellHeight+1, snap.Width*cellWidth+1
	canvas := make([][]Glyph, rows)
	for r := range canvas {
		canvas[r] = make([]Glyph, cols)
		for c := range canvas[r] {
			canvas[r][c] = Glyph{Rune: ' ', Kind: Blank}
		}
	}

	for row := 0; row < snap.Height; row++ {
		for col := 0; col < snap.Width; col++ {
			if !snap.IsVisible(row, col) {
				fill(canvas, row, col, Glyph{Rune: fogRune, Kind: Fog})
			}
		}
	}

	goal := snap.Goal
	for row := 0; row < snap.Height; row++ {
		for col := 0; col < snap.Width; col++ {
			pos := maze.CellPosition{Row: row, Col: col}
			if pos != goal && snap.IsVisible(row, col) {
				drawWalls(canvas, snap, pos, Wall)
			}
		}
	}
	// Gold goal walls win over the neighbors' shared edges.
	if snap.IsVisible(goal.Row, goal.Col) {
		drawWalls(canvas, snap, goal, GoalWall)
		mark(canvas, goal, Glyph{Rune: 'X', Kind: Goal})
	}
	mark(canvas, snap.Player, Glyph{Rune: '@', Kind: Player})

	return canvas
}

// StatusLine summarises the snapshot in one line.
func StatusLine(snap game.Snapshot) string {
	if snap.Status == game.Won {
		return fmt.Sprintf("You win! %d moves", snap.Moves)
	}
	return fmt.Sprintf("moves: %d  distance: %d  vision: %d", snap.Moves, snap.Distance, snap.Vision)
}

func fill(canvas [][]Glyph, row, col int, g Glyph) {
	r := row*cellHeight + 1
	for c := col*cellWidth + 1; c < (col+1)*cellWidth; c++ {
		canvas[r][c] = g
	}
}

func mark(canvas [][]Glyph, pos maze.CellPosition, g Glyph) {
	r, c := pos.Row*cellHeight+1, pos.Col*cellWidth+cellWidth/2
	if r < 0 || r >= len(canvas) || c < 0 || c >= len(canvas[r]) {
		return
	}
	fill(canvas, pos.Row, pos.Col, Glyph{Rune: ' ', Kind: Blank})
	canvas[r][c] = g
}

func drawWalls(canvas [][]Glyph, snap game.Snapshot, pos maze.CellPosition, kind Kind) {
	top, left := pos.Row*cellHeight, pos.Col*cellWidth
	bottom, right := top+cellHeight, left+cellWidth

	horizontal := func(r int) {
		canvas[r][left] = Glyph{Rune: '+', Kind: kind}
		for c := left + 1; c < right; c++ {
			canvas[r][c] = Glyph{Rune: '-', Kind: kind}
		}
		canvas[r][right] = Glyph{Rune: '+', Kind: kind}
	}
	vertical := func(c int) {
		canvas[top][c] = Glyph{Rune: '+', Kind: kind}
		for r := top + 1; r < bottom; r++ {
			canvas[r][c] = Glyph{Rune: '|', Kind: kind}
		}
		canvas[bottom][c] = Glyph{Rune: '+', Kind: kind}
	}

	if snap.HasWall(pos.Row, pos.Col, maze.North) {
		horizontal(top)
	}
	if snap.HasWall(pos.Row, pos.Col, maze.South) {
		horizontal(bottom)
	}
	if snap.HasWall(pos.Row, pos.Col, maze.West) {
		vertical(left)
	}
	if snap.HasWall(pos.Row, pos.Col, maze.East) {
		vertical(right)
	}
}
