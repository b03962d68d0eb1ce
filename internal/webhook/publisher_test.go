package webhook

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/city_command_center/internal/notify"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestRedisNotificationPublisher_NotifyLogsUnavailableRedis(t *testing.T) {
	// Подготовка: Redis недоступен
	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	publisher := NewRedisNotificationPublisher(client, logger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Отмена контекста вызывающего не влияет на публикацию

	// Действие
	assert.NotPanics(t, func() {
		publisher.Notify(ctx, notify.Info("F1 returned to base"))
	})

	// Проверки
	assert.Contains(t, logs.String(), "Failed to enqueue notification")
	assert.NotContains(t, logs.String(), "context canceled")
}
