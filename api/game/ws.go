package gameapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	wsReadLimit    = 1 << 12
	wsReadTimeout  = 60 * time.Second
	wsWriteTimeout = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsError is sent in place of a MoveResponse when a frame cannot be applied.
type wsError struct {
	Error string `json:"error"`
}

// play upgrades to a websocket: the first frame is the current snapshot, then
// every {"direction": ...} frame is answered with a MoveResponse.
func (mc *MazeController) play(ctx *gin.Context) {
	id, ok := mc.authorizedSession(ctx)
	if !ok {
		return
	}

	snap, err := mc.sessions.Snapshot(ctx, id)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ws, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		mc.logger.Warnf("upgrade for game %s: %s", id, err)
		return
	}
	defer ws.Close()

	ws.SetReadLimit(wsReadLimit)
	_ = ws.SetReadDeadline(time.Now().Add(wsReadTimeout))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(wsReadTimeout))
	})

	if err := writeJSON(ws, snap); err != nil {
		return
	}
	mc.serveFrames(ctx, ws, id)
}

func (mc *MazeController) serveFrames(ctx *gin.Context, ws *websocket.Conn, id uuid.UUID) {
	for {
		var request MoveRequest
		if err := ws.ReadJSON(&request); err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				mc.logger.Debugf("read from game %s: %s", id, err)
			}
			return
		}
		_ = ws.SetReadDeadline(time.Now().Add(wsReadTimeout))

		var reply interface{}
		response, moveErr := mc.apply(ctx, id, request.Direction)
		if moveErr != nil {
			reply = wsError{Error: moveErr.Error()}
		} else {
			reply = response
		}
		if err := writeJSON(ws, reply); err != nil {
			return
		}

		if moveErr != nil && statusFor(moveErr) != http.StatusBadRequest {
			// The session is gone or finished; nothing more to serve.
			_ = ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, moveErr.Error()),
				time.Now().Add(wsWriteTimeout))
			return
		}
	}
}

func writeJSON(ws *websocket.Conn, v interface{}) error {
	_ = ws.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return ws.WriteJSON(v)
}
