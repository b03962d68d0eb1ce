package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/shenikar/city_command_center/internal/models"
	"github.com/shenikar/city_command_center/internal/notify"
	"github.com/sirupsen/logrus"
)

const (
	DeployedTimeJustNow = "Just now"
	LocationEnRoute     = "En route"
)

// ForceRepository определяет контракт хранилища подразделений и округов
type ForceRepository interface {
	ListForces() []models.Force
	GetForce(id string) (models.Force, bool)
	ClaimFirst(match func(models.Force) bool, mutate func(*models.Force)) (models.Force, bool)
	UpdateForce(id string, match func(models.Force) bool, mutate func(*models.Force)) (models.Force, bool)
	ListDivisions() []models.Division
	GetDivision(id string) (models.Division, bool)
	UpdateDivision(id string, mutate func(*models.Division)) (models.Division, bool)
}

// ForceService определяет контракт назначения подразделений и ротации округов
type ForceService interface {
	ListForces(ctx context.Context) []models.Force
	GetForce(ctx context.Context, id string) (*models.Force, error)
	DeployForce(ctx context.Context, incidentID string) (*models.Force, error)
	ReturnForce(ctx context.Context, forceID string) bool

	ListDivisions(ctx context.Context) []models.Division
	GetDivision(ctx context.Context, id string) (*models.Division, error)
	DivisionsByFatigue(ctx context.Context) []models.Division
	ComputeFatigue(ctx context.Context, divisionID string) (int, error)
	OverallFatigue(ctx context.Context) int
	RotationEligible(ctx context.Context, divisionID string) (bool, error)
	RotationCandidates(ctx context.Context) []models.Division
	Rotate(ctx context.Context, divisionID string) bool
	SetFatigue(ctx context.Context, divisionID string, level int) bool
	AvailableCount(ctx context.Context, divisionID string) int
	DeployedCount(ctx context.Context, divisionID string) int
}

type forceService struct {
	repo     ForceRepository
	notifier notify.Sink
	logger   *logrus.Logger
}

func NewForceService(repo ForceRepository, notifier notify.Sink, logger *logrus.Logger) ForceService {
	return &forceService{
		repo:     repo,
		notifier: notify.Safe(logger, notifier),
		logger:   logger,
	}
}

func (s *forceService) ListForces(ctx context.Context) []models.Force {
	return s.repo.ListForces()
}

func (s *forceService) GetForce(ctx context.Context, id string) (*models.Force, error) {
	force, ok := s.repo.GetForce(id)
	if !ok {
		return nil, fmt.Errorf("service: force %s: %w", id, ErrForceNotFound)
	}
	return &force, nil
}

// DeployForce назначает на инцидент первое доступное подразделение в порядке реестра.
// Тип подразделения, расстояние и загрузка округа не учитываются.
func (s *forceService) DeployForce(ctx context.Context, incidentID string) (*models.Force, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "force",
		"method":      "DeployForce",
		"incident_id": incidentID,
	})
	log.Info("Attempting to deploy a force")

	if incidentID == "" {
		return nil, fmt.Errorf("service: %w", ErrInvalidIncidentID)
	}

	force, ok := s.repo.ClaimFirst(
		func(f models.Force) bool { return f.Status == models.ForceStatusAvailable },
		func(f *models.Force) {
			f.Status = models.ForceStatusDeployed
			f.Incident = incidentID
			f.DeployedTime = DeployedTimeJustNow
			f.Location = LocationEnRoute
		},
	)
	if !ok {
		log.Warn("No available forces to deploy")
		s.notifier.Notify(ctx, notify.Error("No available forces to deploy"))
		return nil, fmt.Errorf("service: could not deploy force: %w", ErrNoAvailableForces)
	}

	log.WithField("force_id", force.ID).Info("Force deployed successfully")
	s.notifier.Notify(ctx, notify.Success(fmt.Sprintf("%s deployed successfully", force.Name)))
	return &force, nil
}

// ReturnForce возвращает подразделение на базу. Для недеплоенного или неизвестного - no-op.
func (s *forceService) ReturnForce(ctx context.Context, forceID string) bool {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "force",
		"method":   "ReturnForce",
		"force_id": forceID,
	})
	log.Info("Attempting to return force to base")

	force, ok := s.repo.UpdateForce(forceID,
		func(f models.Force) bool { return f.Status == models.ForceStatusDeployed },
		func(f *models.Force) {
			f.Status = models.ForceStatusAvailable
			f.Incident = ""
			f.DeployedTime = ""
			f.Location = f.HomeBase
		},
	)
	if !ok {
		log.Debug("Force is not deployed, nothing to return")
		return false
	}

	log.Info("Force returned to base")
	s.notifier.Notify(ctx, notify.Info(fmt.Sprintf("%s returned to base", force.Name)))
	return true
}

// ListDivisions возвращает округа в фиксированном порядке
func (s *forceService) ListDivisions(ctx context.Context) []models.Division {
	return s.repo.ListDivisions()
}

func (s *forceService) GetDivision(ctx context.Context, id string) (*models.Division, error) {
	division, ok := s.repo.GetDivision(id)
	if !ok {
		return nil, fmt.Errorf("service: division %s: %w", id, ErrDivisionNotFound)
	}
	return &division, nil
}

// DivisionsByFatigue - округа по убыванию усталости
func (s *forceService) DivisionsByFatigue(ctx context.Context) []models.Division {
	divisions := s.repo.ListDivisions()
	sort.SliceStable(divisions, func(i, j int) bool {
		return divisions[i].FatigueLevel > divisions[j].FatigueLevel
	})
	return divisions
}

// ComputeFatigue возвращает сохраненный уровень усталости, без пересчета
func (s *forceService) ComputeFatigue(ctx context.Context, divisionID string) (int, error) {
	division, err := s.GetDivision(ctx, divisionID)
	if err != nil {
		return 0, err
	}
	return division.FatigueLevel, nil
}

// OverallFatigue - средняя усталость по всем округам
func (s *forceService) OverallFatigue(ctx context.Context) int {
	divisions := s.repo.ListDivisions()
	if len(divisions) == 0 {
		return 0
	}
	total := 0
	for _, d := range divisions {
		total += d.FatigueLevel
	}
	return total / len(divisions)
}

func (s *forceService) RotationEligible(ctx context.Context, divisionID string) (bool, error) {
	division, err := s.GetDivision(ctx, divisionID)
	if err != nil {
		return false, err
	}
	return division.NeedsRotation(), nil
}

// RotationCandidates - округа с усталостью выше порога, самые уставшие первыми
func (s *forceService) RotationCandidates(ctx context.Context) []models.Division {
	candidates := make([]models.Division, 0)
	for _, d := range s.DivisionsByFatigue(ctx) {
		if d.NeedsRotation() {
			candidates = append(candidates, d)
		}
	}
	return candidates
}

// Rotate сбрасывает показатели усталости округа, если он нуждается в ротации.
// Подбор сменного состава здесь не выполняется.
func (s *forceService) Rotate(ctx context.Context, divisionID string) bool {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "force",
		"method":      "Rotate",
		"division_id": divisionID,
	})
	log.Info("Attempting to rotate division")

	rotated := false
	division, found := s.repo.UpdateDivision(divisionID, func(d *models.Division) {
		if !d.NeedsRotation() {
			return
		}
		d.FatigueLevel = 0
		d.ActiveTime = "0h"
		d.UrgentNeed = false
		rotated = true
	})
	if !found || !rotated {
		log.Debug("Division is not eligible for rotation")
		return false
	}

	log.Info("Division rotated")
	s.notifier.Notify(ctx, notify.Success(fmt.Sprintf("Personnel rotation started for %s", division.Name)))
	return true
}

// SetFatigue принимает внешнее значение усталости, ограничивая его диапазоном 0..100
func (s *forceService) SetFatigue(ctx context.Context, divisionID string, level int) bool {
	level = max(0, min(100, level))
	_, found := s.repo.UpdateDivision(divisionID, func(d *models.Division) {
		d.FatigueLevel = level
	})
	if found {
		s.logger.WithFields(logrus.Fields{
			"service":       "force",
			"method":        "SetFatigue",
			"division_id":   divisionID,
			"fatigue_level": level,
		}).Debug("Division fatigue updated")
	}
	return found
}

func (s *forceService) AvailableCount(ctx context.Context, divisionID string) int {
	return s.count(divisionID, models.ForceStatusAvailable)
}

func (s *forceService) DeployedCount(ctx context.Context, divisionID string) int {
	return s.count(divisionID, models.ForceStatusDeployed)
}

func (s *forceService) count(divisionID string, status models.ForceStatus) int {
	n := 0
	for _, f := range s.repo.ListForces() {
		if f.DivisionID == divisionID && f.Status == status {
			n++
		}
	}
	return n
}
