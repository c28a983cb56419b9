package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/vinom-fog/api"
	gameapi "github.com/beka-birhanu/vinom-fog/api/game"
	api_i "github.com/beka-birhanu/vinom-fog/api/i"
	"github.com/beka-birhanu/vinom-fog/api/identity"
	"github.com/beka-birhanu/vinom-fog/config"
	logger "github.com/beka-birhanu/vinom-fog/infrastruture/log"
	"github.com/beka-birhanu/vinom-fog/infrastruture/token"
	"github.com/beka-birhanu/vinom-fog/service"
	"github.com/beka-birhanu/vinom-fog/service/i"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Global variables for dependencies
var (
	envs               config.Config
	gameSessionManager *service.GameSessionManager
	jwtTokenizer       i.Tokenizer
	mazeController     api_i.Controller
	router             *api.Router
	appLogger          *zap.SugaredLogger
)

func newLogger(name, color string) *zap.SugaredLogger {
	l, err := logger.New(name, color, os.Stdout, &logger.Options{File: envs.LogFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating %s logger: %v\n", name, err)
		os.Exit(1)
	}
	return l
}

func initConfig() {
	var err error
	envs, err = config.Load()
	appLogger = newLogger("APP", config.ColorGreen)
	if err != nil {
		appLogger.Errorf("Loading config: %v", err)
		os.Exit(1)
	}
	if err := envs.RequireServer(); err != nil {
		appLogger.Errorf("Loading config: %v", err)
		os.Exit(1)
	}
	gin.SetMode(envs.GinMode)
	appLogger.Info("Config loaded")
}

func initSessionManager() {
	var err error
	gameSessionManager, err = service.NewGameSessionManager(&service.Config{
		Logger:      newLogger("SESSION-MANAGER", config.ColorCyan),
		Seed:        envs.Maze.Seed,
		IdleTimeout: envs.SessionIdleTimeout,
	})
	if err != nil {
		appLogger.Errorf("Creating session manager: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Session manager initialized")
}

func initJWTTokenizer() {
	var err error
	jwtTokenizer, err = token.NewJwtService(envs.JWTSecret, envs.JWTIssuer)
	if err != nil {
		appLogger.Errorf("Creating JWT tokenizer: %v", err)
		os.Exit(1)
	}
	appLogger.Info("JWT Tokenizer initialized")
}

func initMazeController() {
	var err error
	mazeController, err = gameapi.NewMazeController(gameapi.Config{
		Sessions:  gameSessionManager,
		Tokenizer: jwtTokenizer,
		Defaults:  envs.Maze,
		TokenTTL:  envs.TokenTTL,
		Logger:    newLogger("MAZE-API", config.ColorMagenta),
	})
	if err != nil {
		appLogger.Errorf("Creating maze controller: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
		Logger:                  newLogger("HTTP", config.ColorBlue),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize dependencies
	initConfig()
	defer func() { _ = appLogger.Sync() }()

	initSessionManager()
	defer gameSessionManager.StopAll()
	go gameSessionManager.RunReaper(ctx)

	initJWTTokenizer()
	initMazeController()
	initRouter(jwtTokenizer)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%v", envs.HostIP, envs.RESTPort),
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run HTTP server
	go func() {
		appLogger.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Errorf("Starting server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("Shutting down server: %v", err)
	}
}
