// Package gameapi handles maze session creation and play.
package gameapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-fog/api/identity"
	"github.com/beka-birhanu/vinom-fog/config"
	"github.com/beka-birhanu/vinom-fog/game"
	"github.com/beka-birhanu/vinom-fog/game/maze"
	"github.com/beka-birhanu/vinom-fog/service"
	"github.com/beka-birhanu/vinom-fog/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config holds the dependencies of a MazeController.
type Config struct {
	Sessions  i.GameSessionManager
	Tokenizer i.Tokenizer
	Defaults  config.MazeDefaults
	TokenTTL  time.Duration
	Logger    *zap.SugaredLogger
}

// MazeController manages maze sessions over HTTP.
type MazeController struct {
	sessions  i.GameSessionManager
	tokenizer i.Tokenizer
	defaults  config.MazeDefaults
	tokenTTL  time.Duration
	logger    *zap.SugaredLogger
}

// NewMazeController initializes a MazeController.
func NewMazeController(c Config) (*MazeController, error) {
	if c.Sessions == nil || c.Tokenizer == nil || c.Logger == nil {
		return nil, errors.New("maze controller needs sessions, tokenizer and logger")
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = time.Hour
	}
	return &MazeController{
		sessions:  c.Sessions,
		tokenizer: c.Tokenizer,
		defaults:  c.Defaults,
		tokenTTL:  c.TokenTTL,
		logger:    c.Logger,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/mazes", mc.create)
}

// RegisterProtected registers routes that need the session token.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes/:ID")
	{
		mazes.GET("", mc.state)
		mazes.POST("/moves", mc.move)
		mazes.DELETE("", mc.end)
		mazes.GET("/ws", mc.play)
	}
}

// create starts a new session and hands out its token.
func (mc *MazeController) create(ctx *gin.Context) {
	var request NewMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, snap, err := mc.sessions.NewSession(ctx, mc.options(request))
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	token, err := mc.tokenizer.Generate(map[string]interface{}{identity.ClaimSessionID: id.String()}, mc.tokenTTL)
	if err != nil {
		mc.logger.Errorf("signing token for game %s: %s", id, err)
		_ = mc.sessions.End(id)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while creating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, NewMazeResponse{ID: id, Token: token, State: snap})
}

// state returns the current snapshot.
func (mc *MazeController) state(ctx *gin.Context) {
	id, ok := mc.authorizedSession(ctx)
	if !ok {
		return
	}

	snap, err := mc.sessions.Snapshot(ctx, id)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, snap)
}

// move processes one direction command.
func (mc *MazeController) move(ctx *gin.Context) {
	id, ok := mc.authorizedSession(ctx)
	if !ok {
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := mc.apply(ctx, id, request.Direction)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// end stops the session.
func (mc *MazeController) end(ctx *gin.Context) {
	id, ok := mc.authorizedSession(ctx)
	if !ok {
		return
	}

	if err := mc.sessions.End(id); err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (mc *MazeController) apply(ctx context.Context, id uuid.UUID, direction string) (MoveResponse, error) {
	d, err := maze.ParseDirection(direction)
	if err != nil {
		return MoveResponse{}, err
	}

	out, snap, err := mc.sessions.Move(ctx, id, d)
	if err != nil {
		return MoveResponse{}, err
	}
	return MoveResponse{Accepted: out.Accepted, Status: out.Status, State: snap}, nil
}

// authorizedSession parses :ID and checks it against the token's session claim.
func (mc *MazeController) authorizedSession(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}

	claimed, ok := identity.SessionID(ctx)
	if !ok || claimed != id.String() {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "token does not match maze"})
		return uuid.Nil, false
	}
	return id, true
}

// options merges a request with the configured defaults.
func (mc *MazeController) options(r NewMazeRequest) game.Options {
	opts := game.Options{
		Height:            mc.defaults.Height,
		Width:             mc.defaults.Width,
		Vision:            mc.defaults.Vision,
		PersistVisibility: mc.defaults.PersistVisibility,
		ResponsiveBorder:  mc.defaults.ResponsiveBorder,
	}
	if r.Height != nil {
		opts.Height = *r.Height
	}
	if r.Width != nil {
		opts.Width = *r.Width
	}
	if r.StartRow != nil {
		opts.StartRow = *r.StartRow
	}
	if r.StartCol != nil {
		opts.StartCol = *r.StartCol
	}
	if r.Vision != nil {
		opts.Vision = *r.Vision
	}
	if r.PersistVisibility != nil {
		opts.PersistVisibility = *r.PersistVisibility
	}
	if r.ResponsiveBorder != nil {
		opts.ResponsiveBorder = *r.ResponsiveBorder
	}
	return opts
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrSessionClosed):
		return http.StatusGone
	case errors.Is(err, game.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, maze.ErrInvalidDirection),
		errors.Is(err, maze.ErrInvalidDimension),
		errors.Is(err, game.ErrInvalidStart),
		errors.Is(err, game.ErrInvalidVision):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
