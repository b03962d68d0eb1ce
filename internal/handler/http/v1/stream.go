package v1

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shenikar/city_command_center/internal/stream"
)

const (
	streamBuffer     = 64
	streamWriteWait  = 5 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = 50 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// streamSnapshot - первое сообщение после подключения
type streamSnapshot struct {
	Map          *MapFocusResponse `json:"map"`
	HighPriority int               `json:"high_priority"`
}

// @Summary Live event stream
// @Description WebSocket stream of notifications and map focus changes. The first message is a snapshot of the map focus.
// @Tags System
// @Success 101 "Switching Protocols"
// @Router /stream [get]
func (h *Handler) streamEvents(c *gin.Context) {
	log := h.logger.WithField("method", "streamEvents").WithField("remote", c.ClientIP())

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("Failed to upgrade stream connection")
		return
	}
	defer conn.Close()

	// Подписка до снимка, чтобы не потерять события между ними
	id, events := h.hub.Subscribe(streamBuffer)
	defer h.hub.Unsubscribe(id)
	log = log.WithField("subscriber", id)
	log.Info("Stream subscriber connected")

	ctx := c.Request.Context()
	snapshot, err := json.Marshal(stream.Envelope{
		Type: stream.EventSnapshot,
		Payload: streamSnapshot{
			Map:          ModelToMapFocusResponse(h.mapService.Focus(ctx)),
			HighPriority: h.incidentService.HighPriorityCount(ctx),
		},
	})
	if err != nil {
		log.WithError(err).Error("Failed to marshal stream snapshot")
		return
	}

	_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
	if err := conn.WriteMessage(websocket.TextMessage, snapshot); err != nil {
		log.WithError(err).Debug("Failed to write stream snapshot")
		return
	}

	// Читатель нужен для обработки pong и обнаружения закрытия соединения
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(streamPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(streamPingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			log.Info("Stream subscriber disconnected")
			return
		case msg, ok := <-events:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "stream closed, reconnect for a fresh snapshot"),
					time.Now().Add(time.Second))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.WithError(err).Debug("Failed to write stream event")
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
