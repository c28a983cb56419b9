package input

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-fog/game"
	"github.com/beka-birhanu/vinom-fog/game/maze"
)

// Lines is a game.InputSource reading one direction per line, e.g. "north",
// "s" or "left". Unknown lines are skipped; "q" or "quit" ends the game.
type Lines struct {
	scanner *bufio.Scanner
}

var _ game.InputSource = &Lines{}

// NewLines reads commands from r.
func NewLines(r io.Reader) *Lines {
	return &Lines{scanner: bufio.NewScanner(r)}
}

// Next implements game.InputSource. A blocked read is not interrupted by ctx.
func (l *Lines) Next(ctx context.Context) (maze.Direction, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if !l.scanner.Scan() {
			if err := l.scanner.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}

		line := strings.ToLower(strings.TrimSpace(l.scanner.Text()))
		switch line {
		case "":
			continue
		case "q", "quit", "exit":
			return 0, game.ErrQuit
		}

		d, err := maze.ParseDirection(line)
		if errors.Is(err, maze.ErrInvalidDirection) {
			continue
		}
		return d, err
	}
}
