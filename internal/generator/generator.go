package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/city_command_center/internal/models"
)

const (
	IncidentIDPrefix = "inc-"
	PromotedIDPrefix = "gen-"
	ForceIDPrefix    = "force-"

	// DefaultIncidentCount - размер начального списка инцидентов
	DefaultIncidentCount = 8
	// DefaultForceCount - размер начального реестра подразделений
	DefaultForceCount = 15
)

var (
	severities = []models.Severity{models.SeverityLow, models.SeverityMedium, models.SeverityHigh}
	forceTypes = []models.ForceType{models.ForceTypePolice, models.ForceTypeFire, models.ForceTypeMedical, models.ForceTypeDisaster}
)

// Generator собирает случайные, но корректные сущности.
// Источник случайности передается снаружи, чтобы тесты были детерминированы.
type Generator struct {
	mu    sync.Mutex
	rnd   *rand.Rand
	vocab Vocabulary
}

func New(rnd *rand.Rand, vocab Vocabulary) *Generator {
	return &Generator{
		rnd:   rnd,
		vocab: vocab,
	}
}

// Vocabulary возвращает словарь генератора
func (g *Generator) Vocabulary() Vocabulary {
	return g.vocab
}

// Incidents генерирует count инцидентов
func (g *Generator) Incidents(count int) []models.Incident {
	g.mu.Lock()
	defer g.mu.Unlock()

	incidents := make([]models.Incident, 0, count)
	for i := 0; i < count; i++ {
		incidents = append(incidents, g.incident())
	}
	return incidents
}

// Incident генерирует один инцидент
func (g *Generator) Incident() models.Incident {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.incident()
}

// Point возвращает случайную точку рядом с центром города
func (g *Generator) Point() models.Coordinates {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.point()
}

// Float64 возвращает число из [0, 1); используется инжектором
func (g *Generator) Float64() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Float64()
}

// PromotedIncidentID выдает идентификатор инцидента, созданного из ленты событий
func (g *Generator) PromotedIncidentID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.id(PromotedIDPrefix)
}

// IncidentID выдает новый идентификатор инцидента
func (g *Generator) IncidentID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.id(IncidentIDPrefix)
}

func (g *Generator) incident() models.Incident {
	severity := severities[g.rnd.Intn(len(severities))]
	location := g.pick(g.vocab.Locations)
	incidentType := g.pick(g.vocab.IncidentTypes)
	timeReported := g.pick(g.vocab.ReportedTimes)

	return models.Incident{
		ID:           g.id(IncidentIDPrefix),
		Type:         incidentType,
		Severity:     severity,
		Location:     location,
		Coordinates:  g.point(),
		TimeReported: timeReported,
		Status:       g.incidentStatus(timeReported),
		Description:  g.description(incidentType, location),
	}
}

// incidentStatus: свежие инциденты чаще находятся в статусе new
func (g *Generator) incidentStatus(timeReported string) models.IncidentStatus {
	r := g.rnd.Float64()
	newBound, progressBound := 0.3, 0.8
	if strings.Contains(timeReported, "min") {
		newBound, progressBound = 0.7, 0.9
	}
	switch {
	case r < newBound:
		return models.IncidentStatusNew
	case r < progressBound:
		return models.IncidentStatusInProgress
	default:
		return models.IncidentStatusResolved
	}
}

func (g *Generator) description(incidentType, location string) string {
	switch incidentType {
	case "Traffic Accident":
		return fmt.Sprintf("Multiple vehicle collision reported on %s main road. %d vehicles involved. Traffic backing up rapidly.", location, g.rnd.Intn(5)+2)
	case "Protest Gathering":
		return fmt.Sprintf("Approximately %d protesters gathered at %s. Peaceful demonstration but growing in numbers.", g.rnd.Intn(200)+50, location)
	case "Fire Incident":
		return fmt.Sprintf("Fire reported in commercial building at %s. %d fire engines dispatched. Evacuation in progress.", location, g.rnd.Intn(3)+1)
	case "Flooding":
		return fmt.Sprintf("Flash flooding reported in %s following heavy rainfall. Roads submerged to approximately %d feet. Vehicle movement restricted.", location, g.rnd.Intn(2)+1)
	default:
		return fmt.Sprintf("Incident reported at %s. Units dispatched to assess the situation.", location)
	}
}

// Divisions генерирует округа в фиксированном порядке словаря
func (g *Generator) Divisions() []models.Division {
	g.mu.Lock()
	defer g.mu.Unlock()

	divisions := make([]models.Division, 0, len(g.vocab.Divisions))
	for _, seed := range g.vocab.Divisions {
		divisions = append(divisions, models.Division{
			ID:            seed.ID,
			Name:          seed.Name,
			CommandCenter: seed.CommandCenter,
			Capacity:      seed.Capacity,
			FatigueLevel:  g.rnd.Intn(100),
			ActiveTime:    fmt.Sprintf("%dh", g.rnd.Intn(12)+1),
			CallsHandled:  g.rnd.Intn(50) + 10,
			UrgentNeed:    g.rnd.Float64() > 0.8,
		})
	}
	return divisions
}

// Forces генерирует count подразделений, распределенных по округам словаря
func (g *Generator) Forces(count int) []models.Force {
	g.mu.Lock()
	defer g.mu.Unlock()

	forces := make([]models.Force, 0, count)
	for i := 0; i < count; i++ {
		forces = append(forces, g.force())
	}
	return forces
}

func (g *Generator) force() models.Force {
	forceType := forceTypes[g.rnd.Intn(len(forceTypes))]
	division := g.vocab.Divisions[g.rnd.Intn(len(g.vocab.Divisions))]
	station := g.pick(g.vocab.Stations)
	homeBase := station + " Station"

	force := models.Force{
		ID:         g.id(ForceIDPrefix),
		Name:       g.forceName(forceType, station),
		Type:       forceType,
		DivisionID: division.ID,
		Personnel:  g.rnd.Intn(10) + 3,
		Status:     models.ForceStatusAvailable,
		HomeBase:   homeBase,
		Location:   homeBase,
	}

	// ~30% подразделений уже на выезде к моменту старта
	if g.rnd.Float64() <= 0.3 {
		force.Status = models.ForceStatusDeployed
		force.Location = "Deployed"
		force.Incident = g.id(IncidentIDPrefix)
		force.DeployedTime = g.pick(g.vocab.DeployedTimes)
	}
	return force
}

func (g *Generator) forceName(forceType models.ForceType, station string) string {
	switch forceType {
	case models.ForceTypePolice:
		return fmt.Sprintf("%s Police Unit %d", station, g.rnd.Intn(10)+1)
	case models.ForceTypeFire:
		return fmt.Sprintf("%s Fire Brigade %c", station, 'A'+rune(g.rnd.Intn(6)))
	case models.ForceTypeMedical:
		return fmt.Sprintf("Emergency Medical Team %d", g.rnd.Intn(10)+1)
	default:
		return fmt.Sprintf("NDRF Team %c", 'A'+rune(g.rnd.Intn(6)))
	}
}

func (g *Generator) point() models.Coordinates {
	spread := g.vocab.Spread
	return models.Coordinates{
		Lat: g.vocab.Center.Lat + (g.rnd.Float64()*2*spread - spread),
		Lng: g.vocab.Center.Lng + (g.rnd.Float64()*2*spread - spread),
	}
}

func (g *Generator) pick(values []string) string {
	return values[g.rnd.Intn(len(values))]
}

// id берет 122 бита из источника случайности через uuid
func (g *Generator) id(prefix string) string {
	id, err := uuid.NewRandomFromReader(g.rnd)
	if err != nil {
		id = uuid.New()
	}
	return prefix + id.String()
}
