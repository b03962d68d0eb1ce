package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/shenikar/city_command_center/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(historySize int) *Hub {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewHub(logger, historySize)
}

func TestHub_BroadcastsNotification(t *testing.T) {
	hub := newTestHub(10)
	_, ch := hub.Subscribe(4)

	hub.Notify(context.Background(), models.Notification{Kind: models.NotificationSuccess, Message: "deployed"})

	raw := <-ch
	var env struct {
		Type    string              `json:"type"`
		Payload models.Notification `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, EventNotification, env.Type)
	assert.Equal(t, "deployed", env.Payload.Message)
}

func TestHub_BroadcastsMapEvent(t *testing.T) {
	hub := newTestHub(10)
	_, ch := hub.Subscribe(4)
	event := models.MapEvent{
		Change: models.MapChangeCenter,
		Focus:  models.MapFocus{Center: models.Coordinates{Lat: 12.97, Lng: 77.59}, MapType: models.MapTypeStandard},
	}

	hub.MapChanged(context.Background(), event)

	var env struct {
		Type    string          `json:"type"`
		Payload models.MapEvent `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(<-ch, &env))
	assert.Equal(t, EventMap, env.Type)
	assert.Equal(t, event.Focus.Center, env.Payload.Focus.Center)
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := newTestHub(10)
	_, slow := hub.Subscribe(1)
	_, fast := hub.Subscribe(8)

	for i := 0; i < 5; i++ {
		hub.Notify(context.Background(), models.Notification{Message: "tick"})
	}

	assert.Len(t, fast, 5)
	assert.Equal(t, 1, hub.Subscribers())

	<-slow
	_, open := <-slow
	assert.False(t, open)
}

func TestHub_LaggingSubscriberDisconnectedOnMapEvent(t *testing.T) {
	// Подготовка
	hub := newTestHub(10)
	_, ch := hub.Subscribe(1)
	ctx := context.Background()

	// Действие
	hub.Notify(ctx, models.Notification{Kind: models.NotificationSuccess, Message: "deployed"})
	hub.MapChanged(ctx, models.MapEvent{
		Change: models.MapChangeCenter,
		Focus:  models.MapFocus{Center: models.Coordinates{Lat: 12.97, Lng: 77.59}, MapType: models.MapTypeStandard},
	})

	// Проверки: подписчик получает уже отправленное уведомление,
	// затем канал закрыт вместо молчаливой потери центра карты
	var env Envelope
	require.NoError(t, json.Unmarshal(<-ch, &env))
	assert.Equal(t, EventNotification, env.Type)

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, hub.Subscribers())

	// Повторная подписка снова получает события
	_, fresh := hub.Subscribe(1)
	hub.MapChanged(ctx, models.MapEvent{Change: models.MapChangeType})
	require.NoError(t, json.Unmarshal(<-fresh, &env))
	assert.Equal(t, EventMap, env.Type)
}

func TestHub_HistoryIsBoundedNewestFirst(t *testing.T) {
	hub := newTestHub(3)
	for _, msg := range []string{"a", "b", "c", "d"} {
		hub.Notify(context.Background(), models.Notification{Message: msg})
	}

	recent, err := hub.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "d", recent[0].Message)
	assert.Equal(t, "b", recent[2].Message)

	limited, err := hub.ListRecent(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestHub_UnsubscribeAndClose(t *testing.T) {
	hub := newTestHub(10)
	id, ch := hub.Subscribe(1)
	_, other := hub.Subscribe(1)
	assert.Equal(t, 2, hub.Subscribers())

	hub.Unsubscribe(id)
	_, open := <-ch
	assert.False(t, open)

	hub.Close()
	_, open = <-other
	assert.False(t, open)
	assert.Equal(t, 0, hub.Subscribers())

	_, late := hub.Subscribe(1)
	_, open = <-late
	assert.False(t, open)
}
