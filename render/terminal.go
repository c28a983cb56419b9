package render

import (
	"github.com/beka-birhanu/vinom-fog/game"
	"github.com/gdamore/tcell/v2"
)

// lightest is how far (out of 255) walls fade at the maximum distance from the goal.
const lightest = 150

// Terminal renders snapshots onto a tcell screen, centered.
type Terminal struct {
	screen tcell.Screen
	base   tcell.Style
}

var _ game.Renderer = &Terminal{}

// NewTerminal returns a renderer for an initialised screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		base:   tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
	}
}

// Render implements game.Renderer.
func (t *Terminal) Render(snap game.Snapshot) error {
	t.screen.SetStyle(t.base)
	t.screen.Clear()

	canvas := Layout(snap)
	width, height := t.screen.Size()
	offY := max((height-len(canvas)-1)/2, 0)
	offX := 0
	if len(canvas) > 0 {
		offX = max((width-len(canvas[0]))/2, 0)
	}

	styles := t.styles(snap)
	for r, row := range canvas {
		for c, g := range row {
			t.screen.SetContent(offX+c, offY+r, g.Rune, nil, styles[g.Kind])
		}
	}

	status := StatusLine(snap)
	statusStyle := t.base.Foreground(tcell.ColorYellow)
	for i, ch := range []rune(status) {
		t.screen.SetContent(offX+i, offY+len(canvas), ch, nil, statusStyle)
	}

	t.screen.Show()
	return nil
}

func (t *Terminal) styles(snap game.Snapshot) map[Kind]tcell.Style {
	return map[Kind]tcell.Style{
		Blank:    t.base,
		Fog:      t.base.Foreground(tcell.NewRGBColor(40, 40, 40)),
		Wall:     t.base.Foreground(WallColor(snap)),
		GoalWall: t.base.Foreground(tcell.ColorGold),
		Player:   t.base.Foreground(tcell.ColorAqua).Bold(true),
		Goal:     t.base.Foreground(tcell.ColorGold).Bold(true),
	}
}

// WallShade returns the wall gray level for a snapshot. With a responsive
// border walls brighten as the player gets closer to the goal; shades within
// 16 of full brightness snap to it.
func WallShade(snap game.Snapshot) int32 {
	if !snap.ResponsiveBorder {
		return 255
	}
	fade := int32(lightest * snap.ManhattanRatio())
	if fade < 16 {
		fade = 0
	}
	return 255 - fade
}

// WallColor is WallShade as a tcell color.
func WallColor(snap game.Snapshot) tcell.Color {
	v := WallShade(snap)
	return tcell.NewRGBColor(v, v, v)
}
