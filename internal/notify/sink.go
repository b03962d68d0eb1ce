package notify

import (
	"context"
	"time"

	"github.com/shenikar/city_command_center/internal/models"
	"github.com/sirupsen/logrus"
)

// Sink принимает уведомления для оператора. Доставка не влияет на состояние хранилищ.
type Sink interface {
	Notify(ctx context.Context, n models.Notification)
}

// New собирает уведомление с текущим временем
func New(kind models.NotificationKind, message string, urgent bool) models.Notification {
	return models.Notification{
		Kind:      kind,
		Message:   message,
		Urgent:    urgent,
		CreatedAt: time.Now().UTC(),
	}
}

func Success(message string) models.Notification {
	return New(models.NotificationSuccess, message, false)
}

func Info(message string) models.Notification {
	return New(models.NotificationInfo, message, false)
}

func Error(message string) models.Notification {
	return New(models.NotificationError, message, false)
}

// Urgent - ошибка с пометкой срочности (инциденты высокого приоритета)
func Urgent(message string) models.Notification {
	return New(models.NotificationError, message, true)
}

// LogSink пишет уведомления в лог
type LogSink struct {
	logger *logrus.Logger
}

func NewLogSink(logger *logrus.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Notify(_ context.Context, n models.Notification) {
	log := s.logger.WithFields(logrus.Fields{
		"component": "notification",
		"kind":      n.Kind,
		"urgent":    n.Urgent,
	})
	switch {
	case n.Urgent:
		log.Warn(n.Message)
	case n.Kind == models.NotificationError:
		log.Warn(n.Message)
	default:
		log.Info(n.Message)
	}
}

// Fanout рассылает уведомление во все приемники по очереди.
// Паника одного приемника не мешает остальным.
type Fanout struct {
	sinks  []Sink
	logger *logrus.Logger
}

func NewFanout(logger *logrus.Logger, sinks ...Sink) *Fanout {
	return &Fanout{
		sinks:  sinks,
		logger: logger,
	}
}

// Add подключает дополнительный приемник. Вызывается только при сборке приложения.
func (f *Fanout) Add(sink Sink) {
	f.sinks = append(f.sinks, sink)
}

func (f *Fanout) Notify(ctx context.Context, n models.Notification) {
	for _, sink := range f.sinks {
		deliver(ctx, f.logger, sink, n)
	}
}

// Safe оборачивает приемник так, что его паника не выходит наружу
func Safe(logger *logrus.Logger, sink Sink) Sink {
	return &safeSink{sink: sink, logger: logger}
}

type safeSink struct {
	sink   Sink
	logger *logrus.Logger
}

func (s *safeSink) Notify(ctx context.Context, n models.Notification) {
	deliver(ctx, s.logger, s.sink, n)
}

func deliver(ctx context.Context, logger *logrus.Logger, sink Sink, n models.Notification) {
	if sink == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.WithField("panic", r).Error("Notification sink panicked")
		}
	}()
	sink.Notify(ctx, n)
}

// Discard - приемник, который ничего не делает
type Discard struct{}

func (Discard) Notify(context.Context, models.Notification) {}
