// Command fogmaze plays a generated maze in the terminal. The player sees only
// what is in line of sight; walls darken as the goal gets closer.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"

	"github.com/beka-birhanu/vinom-fog/config"
	"github.com/beka-birhanu/vinom-fog/game"
	"github.com/beka-birhanu/vinom-fog/game/maze"
	"github.com/beka-birhanu/vinom-fog/input"
	logger "github.com/beka-birhanu/vinom-fog/infrastruture/log"
	"github.com/beka-birhanu/vinom-fog/render"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// screenRenderer serializes renders from the game loop and resize redraws.
type screenRenderer struct {
	mu   sync.Mutex
	term *render.Terminal
	last *game.Snapshot
}

func (s *screenRenderer) Render(snap game.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = &snap
	return s.term.Render(snap)
}

func (s *screenRenderer) redraw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last != nil {
		_ = s.term.Render(*s.last)
	}
}

func main() {
	envs, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Loading config: %v\n", err)
		os.Exit(1)
	}

	var (
		height     = flag.Int("height", envs.Maze.Height, "maze rows")
		width      = flag.Int("width", envs.Maze.Width, "maze columns")
		startRow   = flag.Int("start-row", 0, "starting row")
		startCol   = flag.Int("start-col", 0, "starting column")
		vision     = flag.Int("vision", envs.Maze.Vision, "line of sight in cells")
		persist    = flag.Bool("persist", envs.Maze.PersistVisibility, "keep revealed cells revealed")
		responsive = flag.Bool("responsive", envs.Maze.ResponsiveBorder, "darken walls near the goal")
		seed       = flag.Int64("seed", envs.Maze.Seed, "random seed, 0 for time based")
		plain      = flag.Bool("plain", false, "draw ASCII frames and read directions from stdin")
	)
	flag.Parse()

	// The terminal belongs to the game, so logs only go to the file when one is set.
	var logOut io.Writer = io.Discard
	if *plain {
		logOut = os.Stderr
	}
	gameLogger, err := logger.New("FOGMAZE", config.ColorCyan, logOut, &logger.Options{File: envs.LogFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = gameLogger.Sync() }()

	state, err := game.NewMazeState(game.Options{
		Height:            *height,
		Width:             *width,
		StartRow:          *startRow,
		StartCol:          *startCol,
		Vision:            *vision,
		PersistVisibility: *persist,
		ResponsiveBorder:  *responsive,
	}, maze.NewRand(*seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating maze: %v\n", err)
		os.Exit(1)
	}
	gameLogger.Infof("new %dx%d maze, goal at %d,%d", *height, *width, state.Goal.Row, state.Goal.Col)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *plain {
		err = game.Play(ctx, state, input.NewLines(os.Stdin), render.NewASCII(os.Stdout))
	} else {
		err = playScreen(ctx, state, gameLogger)
	}
	if err != nil && ctx.Err() == nil {
		gameLogger.Errorf("playing: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if state.Status == game.Won {
		gameLogger.Infof("won in %d moves", state.Moves)
		fmt.Printf("You win! %d moves\n", state.Moves)
	}
}

func playScreen(ctx context.Context, state *game.MazeState, l *zap.SugaredLogger) (err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			l.Errorf("crashed: %v\n%s", r, debug.Stack())
			err = fmt.Errorf("crashed: %v", r)
			return
		}
		screen.Fini()
	}()

	out := &screenRenderer{term: render.NewTerminal(screen)}
	keys := input.NewKeyboard(screen, out.redraw)
	defer keys.Close()
	return game.Play(ctx, state, keys, out)
}
