package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/city_command_center/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	notificationQueueKey = "notification_events"
	publishTimeout       = 2 * time.Second
)

// NotificationEvent - структура уведомления в очереди
type NotificationEvent struct {
	Kind      models.NotificationKind `json:"kind"`
	Message   string                  `json:"message"`
	Urgent    bool                    `json:"urgent"`
	Timestamp time.Time               `json:"timestamp"`
}

// NotificationPublisher - интерфейс для публикации уведомлений
type NotificationPublisher interface {
	Publish(ctx context.Context, event NotificationEvent) error
}

// RedisNotificationPublisher - реализация NotificationPublisher, использующая Redis
type RedisNotificationPublisher struct {
	redisClient *redis.Client
	logger      *logrus.Logger
}

// NewRedisNotificationPublisher создает новый RedisNotificationPublisher
func NewRedisNotificationPublisher(client *redis.Client, logger *logrus.Logger) *RedisNotificationPublisher {
	return &RedisNotificationPublisher{
		redisClient: client,
		logger:      logger,
	}
}

// Publish публикует уведомление в очередь Redis
func (p *RedisNotificationPublisher) Publish(ctx context.Context, event NotificationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, notificationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification event to Redis: %w", err)
	}
	return nil
}

// Notify реализует notify.Sink: публикация без ожидания результата вызывающим
func (p *RedisNotificationPublisher) Notify(ctx context.Context, n models.Notification) {
	// Отмена контекста запроса не должна терять уведомление
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.Publish(pubCtx, EventFromNotification(n)); err != nil {
		p.logger.WithError(err).WithField("kind", n.Kind).Error("Failed to enqueue notification")
	}
}

func EventFromNotification(n models.Notification) NotificationEvent {
	return NotificationEvent{
		Kind:      n.Kind,
		Message:   n.Message,
		Urgent:    n.Urgent,
		Timestamp: n.CreatedAt,
	}
}
