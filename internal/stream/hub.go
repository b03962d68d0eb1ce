package stream

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/shenikar/city_command_center/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	EventNotification = "notification"
	EventMap          = "map"
	EventSnapshot     = "snapshot"

	DefaultHistorySize = 50
)

// Envelope - сообщение live-потока
type Envelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Hub рассылает уведомления и изменения фокуса карты всем подписчикам
// и хранит последние уведомления.
type Hub struct {
	mu          sync.Mutex
	subscribers map[uint64]chan []byte
	nextID      uint64
	history     []models.Notification
	historySize int
	closed      bool
	logger      *logrus.Logger
}

func NewHub(logger *logrus.Logger, historySize int) *Hub {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}
	return &Hub{
		subscribers: make(map[uint64]chan []byte),
		historySize: historySize,
		logger:      logger,
	}
}

// Subscribe регистрирует подписчика с буфером buffer сообщений.
// Канал закрывается при Unsubscribe, Close или переполнении буфера:
// отставший подписчик должен переподключиться и получить свежий снимок.
func (h *Hub) Subscribe(buffer int) (uint64, <-chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan []byte, buffer)
	if h.closed {
		close(ch)
		return 0, ch
	}
	h.nextID++
	h.subscribers[h.nextID] = ch
	return h.nextID, ch
}

func (h *Hub) Unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[id]; ok {
		delete(h.subscribers, id)
		close(ch)
	}
}

// Subscribers - количество активных подписчиков
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Notify реализует notify.Sink
func (h *Hub) Notify(_ context.Context, n models.Notification) {
	h.mu.Lock()
	h.history = append(h.history, n)
	if len(h.history) > h.historySize {
		h.history = h.history[len(h.history)-h.historySize:]
	}
	h.mu.Unlock()

	h.broadcast(Envelope{Type: EventNotification, Payload: n})
}

// MapChanged реализует service.MapObserver
func (h *Hub) MapChanged(_ context.Context, event models.MapEvent) {
	h.broadcast(Envelope{Type: EventMap, Payload: event})
}

// ListRecent возвращает последние уведомления, новые первыми
func (h *Hub) ListRecent(_ context.Context, limit int) ([]models.Notification, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if limit <= 0 || limit > len(h.history) {
		limit = len(h.history)
	}
	out := make([]models.Notification, 0, limit)
	for i := len(h.history) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, h.history[i])
	}
	return out, nil
}

// Close отключает всех подписчиков
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for id, ch := range h.subscribers {
		delete(h.subscribers, id)
		close(ch)
	}
}

func (h *Hub) broadcast(env Envelope) {
	payload, err := json.Marshal(env)
	if err != nil {
		h.logger.WithError(err).WithField("type", env.Type).Error("Failed to marshal stream event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subscribers {
		select {
		case ch <- payload:
		default:
			delete(h.subscribers, id)
			close(ch)
			h.logger.WithFields(logrus.Fields{
				"subscriber": id,
				"type":       env.Type,
			}).Warn("Stream subscriber is lagging, disconnected")
		}
	}
}
