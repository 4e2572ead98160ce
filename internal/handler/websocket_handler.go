package handler

import (
	"context"
	"net/http"
	"time"

	"CarbonFootprintTracker/internal/events"
	"CarbonFootprintTracker/internal/logging"
	"CarbonFootprintTracker/internal/metrics"
	"CarbonFootprintTracker/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamRecords godoc
// @Summary      설문 기록 실시간 스트림 (WebSocket)
// @Description  토큰 사용자의 새 설문 기록이 저장될 때마다 이벤트(JSON)를 전송합니다.
// @Description  <br>
// @Description  **참고: 이것은 표준 HTTP API가 아닙니다.**
// @Description  클라이언트는 `ws://` 또는 `wss://` 스킴으로 연결하며, 인증은 **쿼리 파라미터('token')**로 수행합니다.
// @Tags         WebSocket
// @Param        token query    string true "로그인 시 발급받은 JWT 토큰"
// @Success      101   {string} string "101 Switching Protocols"
// @Failure      401   {object} handler.EnvelopeResponse "토큰 누락 또는 유효하지 않은 토큰"
// @Router       /ws/records [get]
func (h *Handler) StreamRecords(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Warn().Err(err).Str("username", username).Msg("StreamRecords(): failed to upgrade to WebSocket")
		return
	}
	defer conn.Close()

	metrics.WebSocketClients.Inc()
	defer metrics.WebSocketClients.Dec()
	logging.Info().Str("username", username).Msg("StreamRecords(): connection established")

	evs, cancelSub := h.stream.Subscribe(username)
	defer cancelSub()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Client -> Server, 종료 감지 전담
	go func() {
		defer cancel()
		clientReadPump(conn, username)
	}()

	clientWritePump(ctx, conn, username, evs)
	logging.Info().Str("username", username).Msg("StreamRecords(): connection closed")
}

// clientReadPump discards client messages and returns when the peer goes away.
func clientReadPump(conn *websocket.Conn, username string) {
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Debug().Err(err).Str("username", username).Msg("clientReadPump(): read failed")
			}
			return
		}
	}
}

func clientWritePump(ctx context.Context, conn *websocket.Conn, username string, evs <-chan events.RecordEvent) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return

		case ev, ok := <-evs:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(ev); err != nil {
				logging.Warn().Err(err).Str("username", username).Msg("clientWritePump(): failed to send event")
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
