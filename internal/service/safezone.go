package service

import (
	"context"
	"fmt"

	"github.com/shenikar/city_command_center/internal/models"
	"github.com/sirupsen/logrus"
)

// SafeZoneService - каталог зон и маршрутов эвакуации
type SafeZoneService interface {
	ListSafeZones(ctx context.Context) []models.SafeZone
	ListEvacuationRoutes(ctx context.Context) []models.EvacuationRoute
	GetSafeZone(ctx context.Context, id string) (*models.SafeZone, error)
	ViewOnMap(ctx context.Context, id string) error
}

type safeZoneService struct {
	zones  []models.SafeZone
	routes []models.EvacuationRoute
	maps   MapService
	logger *logrus.Logger
}

func NewSafeZoneService(zones []models.SafeZone, routes []models.EvacuationRoute, maps MapService, logger *logrus.Logger) SafeZoneService {
	catalog := make([]models.SafeZone, len(zones))
	copy(catalog, zones)
	routeCatalog := make([]models.EvacuationRoute, len(routes))
	copy(routeCatalog, routes)
	return &safeZoneService{
		zones:  catalog,
		routes: routeCatalog,
		maps:   maps,
		logger: logger,
	}
}

func (s *safeZoneService) ListSafeZones(ctx context.Context) []models.SafeZone {
	out := make([]models.SafeZone, len(s.zones))
	copy(out, s.zones)
	return out
}

// ListEvacuationRoutes возвращает маршруты в порядке каталога
func (s *safeZoneService) ListEvacuationRoutes(ctx context.Context) []models.EvacuationRoute {
	out := make([]models.EvacuationRoute, len(s.routes))
	copy(out, s.routes)
	return out
}

func (s *safeZoneService) GetSafeZone(ctx context.Context, id string) (*models.SafeZone, error) {
	for _, z := range s.zones {
		if z.ID == id {
			zone := z
			return &zone, nil
		}
	}
	return nil, fmt.Errorf("service: safe zone %s: %w", id, ErrSafeZoneNotFound)
}

// ViewOnMap центрирует карту на зоне и включает слой зон
func (s *safeZoneService) ViewOnMap(ctx context.Context, id string) error {
	zone, err := s.GetSafeZone(ctx, id)
	if err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"service":      "safezone",
		"method":       "ViewOnMap",
		"safe_zone_id": id,
	}).Info("Focusing map on safe zone")

	s.maps.SetCenter(ctx, zone.Coordinates)
	s.maps.ShowOverlay(ctx, OverlaySafeZones)
	return nil
}
