package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/beka-birhanu/vinom-fog/game"
	"github.com/beka-birhanu/vinom-fog/game/maze"
	"github.com/beka-birhanu/vinom-fog/service/i"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("no session")
	ErrSessionClosed   = errors.New("session is closed")
)

var _ i.GameSessionManager = &GameSessionManager{}

// command is one unit of work executed inside a session's goroutine.
type command struct {
	run  func(*game.MazeState)
	done chan struct{}
}

// session serializes every access to its MazeState through one goroutine.
type session struct {
	actions  chan command
	stop     chan struct{}
	stopOnce sync.Once
	lastSeen atomic.Int64 // unix nanoseconds
}

func (s *session) start(state *game.MazeState) {
	for {
		select {
		case <-s.stop:
			return
		case cmd := <-s.actions:
			cmd.run(state)
			close(cmd.done)
		}
	}
}

func (s *session) close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Config holds the dependencies of a GameSessionManager.
type Config struct {
	Logger      *zap.SugaredLogger
	Seed        int64         // 0 picks a time based seed
	IdleTimeout time.Duration // 0 disables reaping
}

// GameSessionManager keeps every session in memory. Commands for one session
// run strictly one after another; separate sessions share nothing.
type GameSessionManager struct {
	sessions    map[uuid.UUID]*session
	logger      *zap.SugaredLogger
	idleTimeout time.Duration
	seeds       *rand.Rand
	seedsMu     sync.Mutex
	now         func() time.Time
	sync.RWMutex
}

// NewGameSessionManager creates an empty manager.
func NewGameSessionManager(c *Config) (*GameSessionManager, error) {
	if c == nil || c.Logger == nil {
		return nil, errors.New("session manager needs a logger")
	}
	return &GameSessionManager{
		sessions:    make(map[uuid.UUID]*session),
		logger:      c.Logger,
		idleTimeout: c.IdleTimeout,
		seeds:       maze.NewRand(c.Seed),
		now:         time.Now,
	}, nil
}

// NewSession generates a maze and starts the goroutine that owns it.
func (g *GameSessionManager) NewSession(ctx context.Context, opts game.Options) (uuid.UUID, game.Snapshot, error) {
	state, err := game.NewMazeState(opts, rand.New(rand.NewSource(g.nextSeed())))
	if err != nil {
		g.logger.Errorf("creating maze for a new game: %s", err)
		return uuid.Nil, game.Snapshot{}, err
	}

	s := &session{
		actions: make(chan command),
		stop:    make(chan struct{}),
	}
	s.lastSeen.Store(g.now().UnixNano())

	g.Lock()
	id := uuid.New()
	for {
		if _, ok := g.sessions[id]; !ok {
			break
		}
		id = uuid.New()
	}
	g.sessions[id] = s
	g.Unlock()

	snap := state.Snapshot()
	go s.start(state)

	g.logger.Infof("started new game %s: %dx%d vision %d", id, opts.Height, opts.Width, opts.Vision)
	return id, snap, nil
}

// Move processes one direction command and returns the resulting snapshot.
func (g *GameSessionManager) Move(ctx context.Context, id uuid.UUID, d maze.Direction) (game.Outcome, game.Snapshot, error) {
	var (
		out     game.Outcome
		snap    game.Snapshot
		moveErr error
	)
	err := g.exec(ctx, id, func(state *game.MazeState) {
		out, moveErr = state.Step(d)
		snap = state.Snapshot()
	})
	if err != nil {
		return game.Outcome{}, game.Snapshot{}, err
	}
	if moveErr != nil {
		return out, snap, moveErr
	}

	if out.Status == game.Won && out.Accepted {
		g.logger.Infof("game %s won in %d moves", id, snap.Moves)
	}
	return out, snap, nil
}

// Snapshot returns the current state of the session.
func (g *GameSessionManager) Snapshot(ctx context.Context, id uuid.UUID) (game.Snapshot, error) {
	var snap game.Snapshot
	err := g.exec(ctx, id, func(state *game.MazeState) {
		snap = state.Snapshot()
	})
	return snap, err
}

// End stops the session and forgets it.
func (g *GameSessionManager) End(id uuid.UUID) error {
	g.Lock()
	s, ok := g.sessions[id]
	delete(g.sessions, id)
	g.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	s.close()
	g.logger.Infof("ended game %s", id)
	return nil
}

// Count returns the number of live sessions.
func (g *GameSessionManager) Count() int {
	g.RLock()
	defer g.RUnlock()
	return len(g.sessions)
}

// StopAll ends every session.
func (g *GameSessionManager) StopAll() {
	g.Lock()
	defer g.Unlock()

	for id, s := range g.sessions {
		s.close()
		delete(g.sessions, id)
	}
}

// Reap ends sessions that have been idle longer than the idle timeout and
// returns how many were dropped.
func (g *GameSessionManager) Reap() int {
	if g.idleTimeout <= 0 {
		return 0
	}
	cutoff := g.now().Add(-g.idleTimeout).UnixNano()

	g.Lock()
	defer g.Unlock()
	reaped := 0
	for id, s := range g.sessions {
		if s.lastSeen.Load() < cutoff {
			s.close()
			delete(g.sessions, id)
			reaped++
		}
	}
	if reaped > 0 {
		g.logger.Infof("reaped %d idle games", reaped)
	}
	return reaped
}

// RunReaper calls Reap periodically until ctx is done.
func (g *GameSessionManager) RunReaper(ctx context.Context) {
	if g.idleTimeout <= 0 {
		return
	}
	ticker := time.NewTicker(g.idleTimeout / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.Reap()
		}
	}
}

// exec runs fn inside the session's goroutine and waits for it to finish.
// ctx only bounds the wait for the session to accept the command.
func (g *GameSessionManager) exec(ctx context.Context, id uuid.UUID, fn func(*game.MazeState)) error {
	g.RLock()
	s, ok := g.sessions[id]
	g.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	s.lastSeen.Store(g.now().UnixNano())
	cmd := command{run: fn, done: make(chan struct{})}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.stop:
		return ErrSessionClosed
	case s.actions <- cmd:
	}

	// Once handed over the command always runs; report its result even if ctx ends meanwhile.
	<-cmd.done
	return nil
}

func (g *GameSessionManager) nextSeed() int64 {
	g.seedsMu.Lock()
	defer g.seedsMu.Unlock()
	return g.seeds.Int63()
}
