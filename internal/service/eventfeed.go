package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/city_command_center/internal/models"
	"github.com/sirupsen/logrus"
)

// maxPromotedTypeLength - длина типа инцидента, созданного из текста события
const maxPromotedTypeLength = 30

// PromotedIDSource выдает идентификаторы инцидентов, созданных из ленты событий
type PromotedIDSource interface {
	PromotedIncidentID() string
}

// EventFeedService - лента обнаруженных событий из внешних источников
type EventFeedService interface {
	ListEvents(ctx context.Context, query string) []models.DetectedEvent
	GetEvent(ctx context.Context, id string) (*models.DetectedEvent, error)
	Stats(ctx context.Context) models.EventFeedStats
	PromoteEvent(ctx context.Context, id string) (*models.Incident, error)
}

type eventFeedService struct {
	events    []models.DetectedEvent
	incidents IncidentService
	ids       PromotedIDSource
	logger    *logrus.Logger
}

func NewEventFeedService(events []models.DetectedEvent, incidents IncidentService, ids PromotedIDSource, logger *logrus.Logger) EventFeedService {
	feed := make([]models.DetectedEvent, len(events))
	copy(feed, events)
	return &eventFeedService{
		events:    feed,
		incidents: incidents,
		ids:       ids,
		logger:    logger,
	}
}

// ListEvents возвращает события, у которых текст, район или источник
// содержат query без учета регистра. Пустой запрос - вся лента.
func (s *eventFeedService) ListEvents(ctx context.Context, query string) []models.DetectedEvent {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]models.DetectedEvent, 0, len(s.events))
	for _, e := range s.events {
		if query == "" ||
			strings.Contains(strings.ToLower(e.Text), query) ||
			strings.Contains(strings.ToLower(e.Location), query) ||
			strings.Contains(strings.ToLower(e.Source), query) {
			out = append(out, e)
		}
	}
	return out
}

func (s *eventFeedService) GetEvent(ctx context.Context, id string) (*models.DetectedEvent, error) {
	for _, e := range s.events {
		if e.ID == id {
			event := e
			return &event, nil
		}
	}
	return nil, fmt.Errorf("service: detected event %s: %w", id, ErrEventNotFound)
}

func (s *eventFeedService) Stats(ctx context.Context) models.EventFeedStats {
	stats := models.EventFeedStats{Total: len(s.events)}
	for _, e := range s.events {
		if e.Verified {
			stats.Verified++
		}
		if e.Severity == models.SeverityHigh {
			stats.HighPriority++
		}
	}
	return stats
}

// PromoteEvent создает инцидент из события через IncidentService.CreateIncident
func (s *eventFeedService) PromoteEvent(ctx context.Context, id string) (*models.Incident, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":  "eventfeed",
		"method":   "PromoteEvent",
		"event_id": id,
		"source":   event.Source,
	})
	log.Info("Promoting detected event to incident")

	incident := &models.Incident{
		ID:           s.ids.PromotedIncidentID(),
		Type:         promotedType(event.Text),
		Severity:     event.Severity,
		Location:     event.Location,
		Coordinates:  event.Coordinates,
		TimeReported: TimeReportedJustNow,
		Status:       models.IncidentStatusNew,
		Description:  event.Text,
	}
	if err := s.incidents.CreateIncident(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident from detected event")
		return nil, fmt.Errorf("service: could not promote event %s: %w", id, err)
	}

	log.WithField("incident_id", incident.ID).Info("Detected event promoted")
	return incident, nil
}

// promotedType обрезает текст события до maxPromotedTypeLength символов
func promotedType(text string) string {
	runes := []rune(text)
	if len(runes) <= maxPromotedTypeLength {
		return text
	}
	return string(runes[:maxPromotedTypeLength]) + "..."
}
