package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/city_command_center/internal/config"
	"github.com/shenikar/city_command_center/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config) *NotificationWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	w := NewNotificationWorker(nil, logger, cfg)
	w.sleep = func(context.Context, time.Duration) {}
	return w
}

func testPayload(t *testing.T) (NotificationEvent, string) {
	t.Helper()
	event := EventFromNotification(models.Notification{
		Kind:      models.NotificationError,
		Message:   "High Priority: Fire Incident at Indiranagar",
		Urgent:    true,
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(raw)
}

func TestProcessNotification_SignsPayload(t *testing.T) {
	event, raw := testPayload(t)
	var gotSignature, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "secret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
	})

	ok := worker.processNotificationEvent(context.Background(), event, raw)

	assert.True(t, ok)
	assert.Equal(t, raw, gotBody)
	assert.Equal(t, generateHMACSHA256(raw, "secret"), gotSignature)
}

func TestProcessNotification_RetriesThenSucceeds(t *testing.T) {
	event, raw := testPayload(t)
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	assert.True(t, worker.processNotificationEvent(context.Background(), event, raw))
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcessNotification_GivesUp(t *testing.T) {
	event, raw := testPayload(t)
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
	})

	assert.False(t, worker.processNotificationEvent(context.Background(), event, raw))
	assert.Equal(t, int32(2), calls.Load())
}

func TestProcessNotification_NoURL(t *testing.T) {
	event, raw := testPayload(t)
	worker := newTestWorker(&config.Config{WebhookTimeout: time.Second})

	assert.False(t, worker.processNotificationEvent(context.Background(), event, raw))
}

func TestEventFromNotification(t *testing.T) {
	event, _ := testPayload(t)

	assert.Equal(t, models.NotificationError, event.Kind)
	assert.True(t, event.Urgent)
	assert.Equal(t, 2024, event.Timestamp.Year())
}
