package generator

import (
	"fmt"
	"os"

	"github.com/shenikar/city_command_center/internal/models"
	"gopkg.in/yaml.v3"
)

// Vocabulary - словарь, из которого генераторы собирают сущности
type Vocabulary struct {
	Center        models.Coordinates `yaml:"center"`
	Spread        float64            `yaml:"spread"`
	Locations     []string           `yaml:"locations"`
	IncidentTypes []string           `yaml:"incident_types"`
	Stations      []string           `yaml:"stations"`
	ReportedTimes []string           `yaml:"reported_times"`
	DeployedTimes []string           `yaml:"deployed_times"`
	Divisions     []DivisionSeed     `yaml:"divisions"`
	SafeZones     []models.SafeZone  `yaml:"safe_zones"`

	EvacuationRoutes []models.EvacuationRoute `yaml:"evacuation_routes"`
	DetectedEvents   []models.DetectedEvent   `yaml:"detected_events"`
}

// DivisionSeed - неизменяемая часть округа
type DivisionSeed struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	CommandCenter string `yaml:"command_center"`
	Capacity      int    `yaml:"capacity"`
}

// DefaultVocabulary возвращает словарь Бенгалуру
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Center: models.Coordinates{Lat: 12.9716, Lng: 77.5946},
		Spread: 0.05,
		Locations: []string{
			"Koramangala", "Indiranagar", "MG Road", "Whitefield", "Electronic City",
			"JP Nagar", "Jayanagar", "BTM Layout", "HSR Layout", "Bannerghatta Road",
			"Hebbal", "Yeshwanthpur", "Marathahalli", "Bellandur", "Richmond Road",
			"Malleshwaram", "Basavanagudi", "Rajajinagar", "Shivajinagar", "Ulsoor",
		},
		IncidentTypes: []string{
			"Traffic Accident", "Road Blockage", "Protest Gathering", "Fire Incident",
			"Flooding", "Building Collapse", "Medical Emergency", "Power Outage",
			"Public Disturbance", "VIP Movement", "Civil Unrest", "Terrorist Threat",
			"Water Shortage", "Metro Disruption", "Gas Leak", "Tree Fall",
			"Marathon Event", "Tech Conference", "Election Rally", "Religious Procession",
		},
		Stations: []string{
			"Koramangala", "Indiranagar", "Whitefield", "MG Road", "Jayanagar",
			"JP Nagar", "HSR Layout", "Banashankari", "Electronic City", "Hebbal",
			"Yeshwanthpur", "Marathahalli", "Vijayanagar", "Malleswaram", "RT Nagar",
		},
		ReportedTimes: []string{"2 mins ago", "5 mins ago", "12 mins ago", "25 mins ago", "1 hour ago"},
		DeployedTimes: []string{"10 mins ago", "25 mins ago", "1 hour ago", "3 hours ago"},
		Divisions: []DivisionSeed{
			{ID: "north", Name: "North Division", CommandCenter: "Hebbal Command Center", Capacity: 800},
			{ID: "south", Name: "South Division", CommandCenter: "Jayanagar Command Center", Capacity: 750},
			{ID: "east", Name: "East Division", CommandCenter: "Whitefield Command Center", Capacity: 720},
			{ID: "west", Name: "West Division", CommandCenter: "Vijayanagar Command Center", Capacity: 680},
			{ID: "central", Name: "Central Division", CommandCenter: "MG Road Command Center", Capacity: 900},
		},
		SafeZones: []models.SafeZone{
			{ID: "sz1", Name: "Cubbon Park", Type: "evacuation", Capacity: 5000, Status: "ready", Coordinates: models.Coordinates{Lat: 12.9763, Lng: 77.5929}},
			{ID: "sz2", Name: "National College Grounds", Type: "evacuation", Capacity: 3000, Status: "ready", Coordinates: models.Coordinates{Lat: 12.9425, Lng: 77.5714}},
			{ID: "sz3", Name: "Shivaji Nagar Bus Station", Type: "transport", Capacity: 2000, Status: "active", Coordinates: models.Coordinates{Lat: 12.9820, Lng: 77.6094}},
			{ID: "sz4", Name: "Freedom Park", Type: "evacuation", Capacity: 4000, Status: "ready", Coordinates: models.Coordinates{Lat: 12.9724, Lng: 77.5808}},
		},
		EvacuationRoutes: []models.EvacuationRoute{
			{ID: "er1", Name: "Koramangala to HSR", FromLocation: "Koramangala", ToLocation: "HSR Layout", Status: models.RouteStatusClear, Congestion: "low"},
			{ID: "er2", Name: "MG Road to Cubbon Park", FromLocation: "MG Road", ToLocation: "Cubbon Park", Status: models.RouteStatusBlocked, Congestion: "high"},
			{ID: "er3", Name: "Indiranagar to Old Airport Road", FromLocation: "Indiranagar", ToLocation: "Old Airport Road", Status: models.RouteStatusPartial, Congestion: "medium"},
		},
		DetectedEvents: []models.DetectedEvent{
			{
				ID: "s1", Source: "Twitter", Timestamp: "12 mins ago", Verified: true,
				Text:        "#BangaloreFlood Water logging on Outer Ring Road near Bellandur. Traffic at standstill. @blrcitytraffic",
				Location:    "Bellandur",
				Coordinates: models.Coordinates{Lat: 12.9257, Lng: 77.6681},
				Severity:    models.SeverityMedium,
			},
			{
				ID: "s2", Source: "WhatsApp", Timestamp: "5 mins ago", Verified: false,
				Text:        "Fire spotted at commercial building in Indranagar 100ft road. Smoke visible from CMH Road.",
				Location:    "Indiranagar",
				Coordinates: models.Coordinates{Lat: 12.9784, Lng: 77.6408},
				Severity:    models.SeverityHigh,
			},
			{
				ID: "s3", Source: "Twitter", Timestamp: "28 mins ago", Verified: true,
				Text:        "Protests building at Town Hall. Around 200 people gathered. Police presence requested. #BengaluruProtests",
				Location:    "Town Hall",
				Coordinates: models.Coordinates{Lat: 12.9667, Lng: 77.5667},
				Severity:    models.SeverityMedium,
			},
			{
				ID: "s4", Source: "Emergency Line", Timestamp: "3 mins ago", Verified: true,
				Text:        "Multiple cars collided on Nice Road near entrance. Traffic backing up. Request immediate assistance.",
				Location:    "Nice Road",
				Coordinates: models.Coordinates{Lat: 12.9150, Lng: 77.4751},
				Severity:    models.SeverityHigh,
			},
			{
				ID: "s5", Source: "Twitter", Timestamp: "17 mins ago", Verified: false,
				Text:        "Metro service interrupted at MG Road station. Large crowd gathering. #NammaMetro @OfficialBMRCL",
				Location:    "MG Road",
				Coordinates: models.Coordinates{Lat: 12.9757, Lng: 77.6194},
				Severity:    models.SeverityLow,
			},
		},
	}
}

// LoadVocabulary читает yaml-файл словаря. Незаданные в файле разделы
// берутся из DefaultVocabulary.
func LoadVocabulary(path string) (Vocabulary, error) {
	vocab := DefaultVocabulary()
	raw, err := os.ReadFile(path)
	if err != nil {
		return vocab, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	var override Vocabulary
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return vocab, fmt.Errorf("vocabulary %s: %w", path, err)
	}

	if override.Center != (models.Coordinates{}) {
		vocab.Center = override.Center
	}
	if override.Spread > 0 {
		vocab.Spread = override.Spread
	}
	if len(override.Locations) > 0 {
		vocab.Locations = override.Locations
	}
	if len(override.IncidentTypes) > 0 {
		vocab.IncidentTypes = override.IncidentTypes
	}
	if len(override.Stations) > 0 {
		vocab.Stations = override.Stations
	}
	if len(override.ReportedTimes) > 0 {
		vocab.ReportedTimes = override.ReportedTimes
	}
	if len(override.DeployedTimes) > 0 {
		vocab.DeployedTimes = override.DeployedTimes
	}
	if len(override.Divisions) > 0 {
		vocab.Divisions = override.Divisions
	}
	if len(override.SafeZones) > 0 {
		vocab.SafeZones = override.SafeZones
	}
	if len(override.EvacuationRoutes) > 0 {
		vocab.EvacuationRoutes = override.EvacuationRoutes
	}
	if len(override.DetectedEvents) > 0 {
		vocab.DetectedEvents = override.DetectedEvents
	}

	if err := vocab.Validate(); err != nil {
		return vocab, fmt.Errorf("vocabulary %s: %w", path, err)
	}
	return vocab, nil
}

// Validate проверяет, что из словаря можно собрать корректные сущности
func (v Vocabulary) Validate() error {
	switch {
	case len(v.Locations) == 0:
		return fmt.Errorf("locations must not be empty")
	case len(v.IncidentTypes) == 0:
		return fmt.Errorf("incident_types must not be empty")
	case len(v.Stations) == 0:
		return fmt.Errorf("stations must not be empty")
	case len(v.ReportedTimes) == 0:
		return fmt.Errorf("reported_times must not be empty")
	case len(v.DeployedTimes) == 0:
		return fmt.Errorf("deployed_times must not be empty")
	case len(v.Divisions) == 0:
		return fmt.Errorf("divisions must not be empty")
	case v.Spread <= 0:
		return fmt.Errorf("spread must be positive")
	}
	seen := make(map[string]struct{}, len(v.Divisions))
	for _, d := range v.Divisions {
		if d.ID == "" {
			return fmt.Errorf("division id must not be empty")
		}
		if _, ok := seen[d.ID]; ok {
			return fmt.Errorf("duplicate division id %q", d.ID)
		}
		seen[d.ID] = struct{}{}
	}
	for _, r := range v.EvacuationRoutes {
		if !r.Status.Valid() {
			return fmt.Errorf("evacuation route %q: unknown status %q", r.ID, r.Status)
		}
	}
	events := make(map[string]struct{}, len(v.DetectedEvents))
	for _, e := range v.DetectedEvents {
		if e.ID == "" || e.Text == "" {
			return fmt.Errorf("detected event must have id and text")
		}
		if !e.Severity.Valid() {
			return fmt.Errorf("detected event %q: unknown severity %q", e.ID, e.Severity)
		}
		if _, ok := events[e.ID]; ok {
			return fmt.Errorf("duplicate detected event id %q", e.ID)
		}
		events[e.ID] = struct{}{}
	}
	return nil
}
