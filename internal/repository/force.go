package repository

import (
	"fmt"
	"sync"

	"github.com/shenikar/city_command_center/internal/models"
	"github.com/shenikar/city_command_center/internal/service"
)

// ForceRepository хранит подразделения в порядке добавления и округа в порядке перечисления
type ForceRepository struct {
	mu        sync.RWMutex
	forces    []models.Force
	divisions []models.Division
}

func NewForceRepository(forces []models.Force, divisions []models.Division) (service.ForceRepository, error) {
	ids := make(map[string]struct{}, len(forces))
	for _, f := range forces {
		if _, ok := ids[f.ID]; ok {
			return nil, fmt.Errorf("force with id %s: %w", f.ID, service.ErrDuplicateID)
		}
		ids[f.ID] = struct{}{}
	}

	repo := &ForceRepository{
		forces:    make([]models.Force, len(forces)),
		divisions: make([]models.Division, len(divisions)),
	}
	copy(repo.forces, forces)
	copy(repo.divisions, divisions)
	return repo, nil
}

func (r *ForceRepository) ListForces() []models.Force {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Force, len(r.forces))
	copy(out, r.forces)
	return out
}

func (r *ForceRepository) GetForce(id string) (models.Force, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.forces {
		if f.ID == id {
			return f, true
		}
	}
	return models.Force{}, false
}

// ClaimFirst находит первое подразделение, удовлетворяющее match, и
// изменяет его через mutate за одну блокировку.
func (r *ForceRepository) ClaimFirst(match func(models.Force) bool, mutate func(*models.Force)) (models.Force, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.forces {
		if match(r.forces[i]) {
			mutate(&r.forces[i])
			return r.forces[i], true
		}
	}
	return models.Force{}, false
}

// UpdateForce применяет mutate, если match вернул true для подразделения id
func (r *ForceRepository) UpdateForce(id string, match func(models.Force) bool, mutate func(*models.Force)) (models.Force, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.forces {
		if r.forces[i].ID != id {
			continue
		}
		if !match(r.forces[i]) {
			return r.forces[i], false
		}
		mutate(&r.forces[i])
		r.forces[i].ID = id
		return r.forces[i], true
	}
	return models.Force{}, false
}

func (r *ForceRepository) ListDivisions() []models.Division {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Division, len(r.divisions))
	copy(out, r.divisions)
	return out
}

func (r *ForceRepository) GetDivision(id string) (models.Division, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.divisions {
		if d.ID == id {
			return d, true
		}
	}
	return models.Division{}, false
}

func (r *ForceRepository) UpdateDivision(id string, mutate func(*models.Division)) (models.Division, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.divisions {
		if r.divisions[i].ID == id {
			mutate(&r.divisions[i])
			r.divisions[i].ID = id
			return r.divisions[i], true
		}
	}
	return models.Division{}, false
}
