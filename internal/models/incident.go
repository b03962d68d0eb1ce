package models

// Severity - уровень важности инцидента
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Valid проверяет, что значение входит в допустимый набор
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// IncidentStatus - состояние жизненного цикла инцидента
type IncidentStatus string

const (
	IncidentStatusNew        IncidentStatus = "new"
	IncidentStatusInProgress IncidentStatus = "in-progress"
	IncidentStatusResolved   IncidentStatus = "resolved"
	IncidentStatusClosed     IncidentStatus = "closed"
)

func (s IncidentStatus) Valid() bool {
	switch s {
	case IncidentStatusNew, IncidentStatusInProgress, IncidentStatusResolved, IncidentStatusClosed:
		return true
	}
	return false
}

// Coordinates - пара широта/долгота
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Incident struct {
	ID           string         `json:"id"`
	Type         string         `json:"type"`
	Severity     Severity       `json:"severity"`
	Location     string         `json:"location"`
	Coordinates  Coordinates    `json:"coordinates"`
	TimeReported string         `json:"time_reported"`
	Status       IncidentStatus `json:"status"`
	Description  string         `json:"description,omitempty"`
}

// IncidentPatch содержит изменяемые поля инцидента, nil означает "не менять".
// ID и Severity не изменяются после создания.
type IncidentPatch struct {
	Type         *string
	Location     *string
	Coordinates  *Coordinates
	TimeReported *string
	Status       *IncidentStatus
	Description  *string
}

// Apply переносит заданные поля патча в инцидент
func (p IncidentPatch) Apply(incident *Incident) {
	if p.Type != nil {
		incident.Type = *p.Type
	}
	if p.Location != nil {
		incident.Location = *p.Location
	}
	if p.Coordinates != nil {
		incident.Coordinates = *p.Coordinates
	}
	if p.TimeReported != nil {
		incident.TimeReported = *p.TimeReported
	}
	if p.Status != nil && p.Status.Valid() {
		incident.Status = *p.Status
	}
	if p.Description != nil {
		incident.Description = *p.Description
	}
}
