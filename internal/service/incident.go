package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/shenikar/city_command_center/internal/models"
	"github.com/shenikar/city_command_center/internal/notify"
	"github.com/sirupsen/logrus"
)

// SeverityAll - фильтр без ограничения по важности
const SeverityAll = "all"

// TimeReportedJustNow - отметка времени для только что созданных инцидентов
const TimeReportedJustNow = "Just now"

// IncidentRepository определяет контракт хранилища инцидентов
type IncidentRepository interface {
	Prepend(incident models.Incident) error
	Exists(id string) bool
	GetByID(id string) (models.Incident, bool)
	Update(id string, fn func(*models.Incident)) (models.Incident, bool)
	List() []models.Incident
}

// IDSource выдает новые идентификаторы инцидентов
type IDSource interface {
	IncidentID() string
}

// IncidentService определяет контракт жизненного цикла инцидентов
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	InjectIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	UpdateIncident(ctx context.Context, id string, patch models.IncidentPatch) error
	CloseIncident(ctx context.Context, id string) error
	ListIncidents(ctx context.Context) []models.Incident
	FilterBySeverity(ctx context.Context, level string) ([]models.Incident, error)
	HighPriorityCount(ctx context.Context) int
}

type incidentService struct {
	// mu сериализует изменения: ручные и фоновые (инжектор)
	mu       sync.Mutex
	repo     IncidentRepository
	ids      IDSource
	notifier notify.Sink
	logger   *logrus.Logger
}

func NewIncidentService(repo IncidentRepository, ids IDSource, notifier notify.Sink, logger *logrus.Logger) IncidentService {
	return &incidentService{
		repo:     repo,
		ids:      ids,
		notifier: notify.Safe(logger, notifier),
		logger:   logger,
	}
}

// CreateIncident добавляет инцидент в начало списка и уведомляет оператора
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"type":    incident.Type,
	})
	log.Info("Attempting to create a new incident")

	if err := s.insert(incident); err != nil {
		log.WithError(err).Warn("Rejected incident")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	s.notifier.Notify(ctx, notify.Success(fmt.Sprintf("New incident created: %s", incident.Type)))
	return nil
}

// InjectIncident добавляет инцидент из фонового источника.
// Уведомление отправляется только для высокой важности и помечается как срочное.
func (s *incidentService) InjectIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "InjectIncident",
		"type":     incident.Type,
		"severity": incident.Severity,
	})

	if err := s.insert(incident); err != nil {
		log.WithError(err).Warn("Rejected synthesized incident")
		return fmt.Errorf("service: could not inject incident: %w", err)
	}

	log.WithField("incident_id", incident.ID).Info("Synthesized incident added")
	if incident.Severity == models.SeverityHigh {
		s.notifier.Notify(ctx, notify.Urgent(fmt.Sprintf("High Priority: %s at %s", incident.Type, incident.Location)))
	}
	return nil
}

// insert заполняет значения по умолчанию и при совпадении id выдает новый
func (s *incidentService) insert(incident *models.Incident) error {
	if !incident.Severity.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSeverity, incident.Severity)
	}
	if !incident.Status.Valid() {
		incident.Status = models.IncidentStatusNew
	}
	if incident.TimeReported == "" {
		incident.TimeReported = TimeReportedJustNow
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for incident.ID == "" || s.repo.Exists(incident.ID) {
		if incident.ID != "" {
			s.logger.WithField("incident_id", incident.ID).Warn("Incident id collision, regenerating")
		}
		incident.ID = s.ids.IncidentID()
	}
	return s.repo.Prepend(*incident)
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	incident, ok := s.repo.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("service: incident %s: %w", id, ErrIncidentNotFound)
	}
	return &incident, nil
}

// UpdateIncident переносит поля патча в инцидент.
// Неизвестный id и закрытый инцидент - тихий no-op.
func (s *incidentService) UpdateIncident(ctx context.Context, id string, patch models.IncidentPatch) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": id,
	})
	log.Info("Attempting to update incident")

	s.mu.Lock()
	defer s.mu.Unlock()

	_, found := s.repo.Update(id, func(inc *models.Incident) {
		if inc.Status == models.IncidentStatusClosed {
			return
		}
		patch.Apply(inc)
	})
	if !found {
		log.Debug("Incident not found, nothing to update")
		return nil
	}

	log.Info("Incident updated successfully")
	return nil
}

// CloseIncident переводит инцидент в closed. Повторный вызов дает то же состояние.
// Назначенные подразделения не освобождаются.
func (s *incidentService) CloseIncident(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "CloseIncident",
		"incident_id": id,
	})
	log.Info("Attempting to close incident")

	s.mu.Lock()
	_, found := s.repo.Update(id, func(inc *models.Incident) {
		inc.Status = models.IncidentStatusClosed
	})
	s.mu.Unlock()

	if !found {
		log.Debug("Incident not found, nothing to close")
		return nil
	}

	log.Info("Incident closed successfully")
	s.notifier.Notify(ctx, notify.Success("Incident marked as resolved"))
	return nil
}

// ListIncidents возвращает все инциденты, новые первыми
func (s *incidentService) ListIncidents(ctx context.Context) []models.Incident {
	return s.repo.List()
}

// FilterBySeverity возвращает инциденты заданной важности или все для "all"
func (s *incidentService) FilterBySeverity(ctx context.Context, level string) ([]models.Incident, error) {
	incidents := s.repo.List()
	if level == "" || level == SeverityAll {
		return incidents, nil
	}

	severity := models.Severity(level)
	if !severity.Valid() {
		return nil, fmt.Errorf("service: %w: %q", ErrInvalidSeverity, level)
	}

	filtered := make([]models.Incident, 0, len(incidents))
	for _, inc := range incidents {
		if inc.Severity == severity {
			filtered = append(filtered, inc)
		}
	}
	return filtered, nil
}

// HighPriorityCount - количество инцидентов высокой важности
func (s *incidentService) HighPriorityCount(ctx context.Context) int {
	count := 0
	for _, inc := range s.repo.List() {
		if inc.Severity == models.SeverityHigh {
			count++
		}
	}
	return count
}
