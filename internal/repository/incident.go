package repository

import (
	"fmt"
	"sync"

	"github.com/shenikar/city_command_center/internal/models"
	"github.com/shenikar/city_command_center/internal/service"
)

// IncidentRepository хранит инциденты в памяти, новые - в начале списка
type IncidentRepository struct {
	mu    sync.RWMutex
	items []models.Incident
	ids   map[string]struct{}
}

func NewIncidentRepository() service.IncidentRepository {
	return &IncidentRepository{
		ids: make(map[string]struct{}),
	}
}

// Prepend добавляет инцидент в начало списка
func (r *IncidentRepository) Prepend(incident models.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[incident.ID]; ok {
		return fmt.Errorf("incident with id %s: %w", incident.ID, service.ErrDuplicateID)
	}

	r.items = append(r.items, models.Incident{})
	copy(r.items[1:], r.items)
	r.items[0] = incident
	r.ids[incident.ID] = struct{}{}
	return nil
}

// Exists проверяет, занят ли идентификатор
func (r *IncidentRepository) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ids[id]
	return ok
}

// GetByID возвращает копию инцидента
func (r *IncidentRepository) GetByID(id string) (models.Incident, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, inc := range r.items {
		if inc.ID == id {
			return inc, true
		}
	}
	return models.Incident{}, false
}

// Update применяет fn к инциденту под блокировкой записи.
// Возвращает итоговое значение и false, если инцидент не найден.
func (r *IncidentRepository) Update(id string, fn func(*models.Incident)) (models.Incident, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			fn(&r.items[i])
			// Идентификатор не меняется
			r.items[i].ID = id
			return r.items[i], true
		}
	}
	return models.Incident{}, false
}

// List возвращает снимок списка, новые инциденты первыми
func (r *IncidentRepository) List() []models.Incident {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Incident, len(r.items))
	copy(out, r.items)
	return out
}

// SeedIncidents добавляет стартовый набор инцидентов, сохраняя его порядок
func SeedIncidents(repo service.IncidentRepository, incidents []models.Incident) error {
	for i := len(incidents) - 1; i >= 0; i-- {
		if err := repo.Prepend(incidents[i]); err != nil {
			return fmt.Errorf("failed to seed incidents: %w", err)
		}
	}
	return nil
}
