package service

import (
	"context"
	"sync"
	"time"

	"github.com/shenikar/city_command_center/internal/models"
	"github.com/shenikar/city_command_center/internal/scheduler"
	"github.com/sirupsen/logrus"
)

const (
	DefaultInjectInterval    = 30 * time.Second
	DefaultInjectProbability = 0.3
)

// IncidentSource синтезирует инциденты и дает случайное число для решения о запуске
type IncidentSource interface {
	Incident() models.Incident
	Float64() float64
}

// Injector периодически добавляет синтезированные инциденты
type Injector struct {
	incidents   IncidentService
	source      IncidentSource
	scheduler   scheduler.Scheduler
	interval    time.Duration
	probability float64
	logger      *logrus.Logger

	mu   sync.Mutex
	stop func()
}

func NewInjector(incidents IncidentService, source IncidentSource, sched scheduler.Scheduler, interval time.Duration, probability float64, logger *logrus.Logger) *Injector {
	if interval <= 0 {
		interval = DefaultInjectInterval
	}
	return &Injector{
		incidents:   incidents,
		source:      source,
		scheduler:   sched,
		interval:    interval,
		probability: probability,
		logger:      logger,
	}
}

// Start запускает таймер. Повторный вызов без Stop ничего не делает.
func (i *Injector) Start(ctx context.Context) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.stop != nil {
		return
	}
	i.logger.WithFields(logrus.Fields{
		"interval":    i.interval,
		"probability": i.probability,
	}).Info("Starting incident injector...")

	i.stop = i.scheduler.Every(i.interval, func() {
		i.Tick(ctx)
	})
}

// Stop останавливает таймер. После возврата тики больше не выполняются.
func (i *Injector) Stop() {
	i.mu.Lock()
	stop := i.stop
	i.stop = nil
	i.mu.Unlock()

	if stop != nil {
		stop()
		i.logger.Info("Stopping incident injector.")
	}
}

// Tick выполняет одну попытку синтеза. Возвращает true, если инцидент добавлен.
func (i *Injector) Tick(ctx context.Context) bool {
	if i.source.Float64() >= i.probability {
		return false
	}

	incident := i.source.Incident()
	if err := i.incidents.InjectIncident(ctx, &incident); err != nil {
		i.logger.WithError(err).Error("Failed to inject incident")
		return false
	}
	return true
}
