package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/city_command_center/internal/models"
	"github.com/sirupsen/logrus"
)

const journalTimeout = 2 * time.Second

// NotificationJournal сохраняет уведомления в PostgreSQL.
// Хранит только историю уведомлений, состояние хранилищ сюда не пишется.
type NotificationJournal struct {
	db     *pgxpool.Pool
	logger *logrus.Logger
}

func NewNotificationJournal(db *pgxpool.Pool, logger *logrus.Logger) *NotificationJournal {
	return &NotificationJournal{
		db:     db,
		logger: logger,
	}
}

// Save сохраняет уведомление в журнал
func (r *NotificationJournal) Save(ctx context.Context, n models.Notification) error {
	query := `
		INSERT INTO notifications (kind, message, urgent, created_at)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := r.db.Exec(ctx, query, string(n.Kind), n.Message, n.Urgent, n.CreatedAt); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

// Notify реализует notify.Sink, ошибка записи только логируется
func (r *NotificationJournal) Notify(ctx context.Context, n models.Notification) {
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalTimeout)
	defer cancel()

	if err := r.Save(saveCtx, n); err != nil {
		r.logger.WithError(err).WithField("kind", n.Kind).Error("Failed to journal notification")
	}
}

// ListRecent возвращает последние уведомления, новые первыми
func (r *NotificationJournal) ListRecent(ctx context.Context, limit int) ([]models.Notification, error) {
	query := `
		SELECT kind, message, urgent, created_at
		FROM notifications
		ORDER BY created_at DESC, id DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0, limit)
	for rows.Next() {
		var (
			n    models.Notification
			kind string
		)
		if err := rows.Scan(&kind, &n.Message, &n.Urgent, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		n.Kind = models.NotificationKind(kind)
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return notifications, nil
}
