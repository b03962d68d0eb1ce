package service_test

import (
	"bytes"
	"context"
	"sync"

	"github.com/shenikar/city_command_center/internal/models"
	"github.com/sirupsen/logrus"
)

// recordingSink сохраняет все полученные уведомления
type recordingSink struct {
	mu   sync.Mutex
	sent []models.Notification
}

func (s *recordingSink) Notify(_ context.Context, n models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, n)
}

func (s *recordingSink) All() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, len(s.sent))
	copy(out, s.sent)
	return out
}

type panicSink struct{}

func (panicSink) Notify(context.Context, models.Notification) {
	panic("toast layer crashed")
}

// sequentialIDs выдает предсказуемые идентификаторы
type sequentialIDs struct {
	mu   sync.Mutex
	next int
	ids  []string
}

func (s *sequentialIDs) IncidentID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.ids[s.next%len(s.ids)]
	s.next++
	return id
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func testIncident(id string, severity models.Severity) *models.Incident {
	return &models.Incident{
		ID:           id,
		Type:         "Gas Leak",
		Severity:     severity,
		Location:     "Ulsoor",
		Coordinates:  models.Coordinates{Lat: 12.98, Lng: 77.62},
		TimeReported: "2 mins ago",
		Status:       models.IncidentStatusNew,
		Description:  "Strong smell of gas near the lake.",
	}
}
