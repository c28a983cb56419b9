package input

import (
	"context"
	"sync"

	"github.com/beka-birhanu/vinom-fog/game"
	"github.com/beka-birhanu/vinom-fog/game/maze"
	"github.com/gdamore/tcell/v2"
)

// keyCommand is one entry of the keyboard queue: a direction or the quit request.
type keyCommand struct {
	dir  maze.Direction
	quit bool
}

// Keyboard is a game.InputSource fed by a tcell screen. A single goroutine
// polls the screen and queues directions and the quit request in the order
// they were typed, so commands reach the game one by one.
type Keyboard struct {
	screen   tcell.Screen
	commands chan keyCommand
	done     chan struct{}
	doneOnce sync.Once
	onResize func()
}

var _ game.InputSource = &Keyboard{}

// NewKeyboard starts polling screen. onResize, if set, runs after the terminal
// is resized so the caller can redraw.
func NewKeyboard(screen tcell.Screen, onResize func()) *Keyboard {
	k := &Keyboard{
		screen:   screen,
		commands: make(chan keyCommand, 16),
		done:     make(chan struct{}),
		onResize: onResize,
	}
	go k.poll()
	return k
}

// Close stops queueing keys. Keys still queued are dropped.
func (k *Keyboard) Close() {
	k.doneOnce.Do(func() { close(k.done) })
}

func (k *Keyboard) poll() {
	defer close(k.commands)
	for {
		// PollEvent returns nil once the screen is finalized.
		ev := k.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			k.screen.Sync()
			if k.onResize != nil {
				k.onResize()
			}
		case *tcell.EventKey:
			if IsQuit(ev) {
				k.push(keyCommand{quit: true})
				return
			}
			if d, ok := KeyDirection(ev); ok {
				if !k.push(keyCommand{dir: d}) {
					return
				}
			}
		}
	}
}

// push blocks until the game takes the command or the keyboard is closed.
func (k *Keyboard) push(cmd keyCommand) bool {
	select {
	case k.commands <- cmd:
		return true
	case <-k.done:
		return false
	}
}

// Next implements game.InputSource.
func (k *Keyboard) Next(ctx context.Context) (maze.Direction, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case cmd, ok := <-k.commands:
		if !ok || cmd.quit {
			return 0, game.ErrQuit
		}
		return cmd.dir, nil
	}
}
