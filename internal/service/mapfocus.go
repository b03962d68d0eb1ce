package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/shenikar/city_command_center/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	OverlayHeatmap   = "heatmap"
	OverlayTraffic   = "traffic"
	OverlayForces    = "forces"
	OverlaySafeZones = "safezones"
)

// MapObserver получает каждое изменение фокуса карты (рендер карты, live-поток)
type MapObserver interface {
	MapChanged(ctx context.Context, event models.MapEvent)
}

// MapService определяет контракт общего фокуса карты
type MapService interface {
	Focus(ctx context.Context) models.MapFocus
	SetCenter(ctx context.Context, center models.Coordinates)
	SetMapType(ctx context.Context, mapType models.MapType) error
	ToggleOverlay(ctx context.Context, overlay string) bool
	ShowOverlay(ctx context.Context, overlay string)
	Watch(observer MapObserver)
}

type mapService struct {
	mu        sync.Mutex
	center    models.Coordinates
	mapType   models.MapType
	overlays  []string
	observers []MapObserver
	logger    *logrus.Logger
}

// NewMapService создает фокус с центром center, стандартным слоем и тепловой картой
func NewMapService(center models.Coordinates, logger *logrus.Logger) MapService {
	return &mapService{
		center:   center,
		mapType:  models.MapTypeStandard,
		overlays: []string{OverlayHeatmap},
		logger:   logger,
	}
}

func (s *mapService) Focus(ctx context.Context) models.MapFocus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// SetCenter всегда заменяет центр и всегда публикует событие,
// даже если координаты не изменились
func (s *mapService) SetCenter(ctx context.Context, center models.Coordinates) {
	s.mu.Lock()
	s.center = center
	event := models.MapEvent{Change: models.MapChangeCenter, Focus: s.snapshot()}
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"service": "map",
		"method":  "SetCenter",
		"lat":     center.Lat,
		"lng":     center.Lng,
	}).Debug("Map center changed")
	s.publish(ctx, event)
}

// SetMapType принимает только standard, satellite и traffic
func (s *mapService) SetMapType(ctx context.Context, mapType models.MapType) error {
	if !mapType.Valid() {
		s.logger.WithField("map_type", mapType).Warn("Rejected unknown map type")
		return fmt.Errorf("service: %w: %q", ErrInvalidMapType, mapType)
	}

	s.mu.Lock()
	s.mapType = mapType
	event := models.MapEvent{Change: models.MapChangeType, Focus: s.snapshot()}
	s.mu.Unlock()

	s.publish(ctx, event)
	return nil
}

// ToggleOverlay включает слой, если он выключен, и наоборот.
// Возвращает состояние слоя после переключения.
func (s *mapService) ToggleOverlay(ctx context.Context, overlay string) bool {
	if overlay == "" {
		return false
	}

	s.mu.Lock()
	active := true
	if idx := s.indexOf(overlay); idx >= 0 {
		s.overlays = append(s.overlays[:idx], s.overlays[idx+1:]...)
		active = false
	} else {
		s.overlays = append(s.overlays, overlay)
	}
	event := models.MapEvent{Change: models.MapChangeOverlay, Focus: s.snapshot()}
	s.mu.Unlock()

	s.publish(ctx, event)
	return active
}

// ShowOverlay включает слой, если он еще не включен
func (s *mapService) ShowOverlay(ctx context.Context, overlay string) {
	if overlay == "" {
		return
	}

	s.mu.Lock()
	if s.indexOf(overlay) >= 0 {
		s.mu.Unlock()
		return
	}
	s.overlays = append(s.overlays, overlay)
	event := models.MapEvent{Change: models.MapChangeOverlay, Focus: s.snapshot()}
	s.mu.Unlock()

	s.publish(ctx, event)
}

// Watch подписывает наблюдателя. Вызывается при сборке приложения.
func (s *mapService) Watch(observer MapObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

func (s *mapService) indexOf(overlay string) int {
	for i, o := range s.overlays {
		if o == overlay {
			return i
		}
	}
	return -1
}

func (s *mapService) snapshot() models.MapFocus {
	overlays := make([]string, len(s.overlays))
	copy(overlays, s.overlays)
	return models.MapFocus{
		Center:         s.center,
		MapType:        s.mapType,
		ActiveOverlays: overlays,
	}
}

func (s *mapService) publish(ctx context.Context, event models.MapEvent) {
	s.mu.Lock()
	observers := make([]MapObserver, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, o := range observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					s.logger.WithField("panic", r).Error("Map observer panicked")
				}
			}()
			o.MapChanged(ctx, event)
		}()
	}
}
