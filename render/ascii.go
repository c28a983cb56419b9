package render

import (
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-fog/game"
)

// ASCII renders snapshots as plain text frames.
type ASCII struct {
	w io.Writer
}

var _ game.Renderer = &ASCII{}

// NewASCII returns a renderer writing to w.
func NewASCII(w io.Writer) *ASCII {
	return &ASCII{w: w}
}

// Render implements game.Renderer.
func (a *ASCII) Render(snap game.Snapshot) error {
	_, err := io.WriteString(a.w, Text(snap))
	return err
}

// Text returns the frame for snap followed by its status line.
func Text(snap game.Snapshot) string {
	var output strings.Builder
	for _, row := range Layout(snap) {
		for _, g := range row {
			output.WriteRune(g.Rune)
		}
		output.WriteString("\n")
	}
	output.WriteString(StatusLine(snap) + "\n")
	return output.String()
}
