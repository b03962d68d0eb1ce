package v1

import "time"

// CoordinatesDTO - географические координаты
// @Description Географические координаты
type CoordinatesDTO struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	ID           string         `json:"id,omitempty" validate:"omitempty,max=64"`
	Type         string         `json:"type" validate:"required,min=2,max=255"`
	Severity     string         `json:"severity" validate:"required,oneof=low medium high"`
	Location     string         `json:"location" validate:"required,max=255"`
	Coordinates  CoordinatesDTO `json:"coordinates"`
	TimeReported string         `json:"time_reported,omitempty" validate:"omitempty,max=64"`
	Status       string         `json:"status,omitempty" validate:"omitempty,oneof=new in-progress resolved closed"`
	Description  string         `json:"description,omitempty"`
}

// UpdateIncidentRequest DTO для частичного обновления инцидента.
// Важность инцидента не изменяется.
// @Description DTO для частичного обновления инцидента
type UpdateIncidentRequest struct {
	Type         *string         `json:"type,omitempty" validate:"omitempty,min=2,max=255"`
	Location     *string         `json:"location,omitempty" validate:"omitempty,max=255"`
	Coordinates  *CoordinatesDTO `json:"coordinates,omitempty"`
	TimeReported *string         `json:"time_reported,omitempty" validate:"omitempty,max=64"`
	Status       *string         `json:"status,omitempty" validate:"omitempty,oneof=new in-progress resolved closed"`
	Description  *string         `json:"description,omitempty"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID           string         `json:"id"`
	Type         string         `json:"type"`
	Severity     string         `json:"severity"`
	Location     string         `json:"location"`
	Coordinates  CoordinatesDTO `json:"coordinates"`
	TimeReported string         `json:"time_reported"`
	Status       string         `json:"status"`
	Description  string         `json:"description,omitempty"`
}

// IncidentListResponse DTO для списка инцидентов
// @Description DTO для списка инцидентов
type IncidentListResponse struct {
	Incidents    []*IncidentResponse `json:"incidents"`
	HighPriority int                 `json:"high_priority"`
}

// DeployForceRequest DTO для назначения подразделения на инцидент
// @Description DTO для назначения подразделения на инцидент
type DeployForceRequest struct {
	IncidentID string `json:"incident_id" validate:"required,max=64"`
}

// ForceResponse DTO для ответа с информацией о подразделении
// @Description DTO для ответа с информацией о подразделении
type ForceResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Division     string `json:"division"`
	Personnel    int    `json:"personnel"`
	Status       string `json:"status"`
	HomeBase     string `json:"home_base"`
	Location     string `json:"location"`
	Incident     string `json:"incident,omitempty"`
	DeployedTime string `json:"deployed_time,omitempty"`
}

// DivisionResponse DTO для ответа с информацией об округе
// @Description DTO для ответа с информацией об округе
type DivisionResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	CommandCenter  string `json:"command_center"`
	Capacity       int    `json:"capacity"`
	FatigueLevel   int    `json:"fatigue_level"`
	FatigueBand    string `json:"fatigue_band"`
	ActiveTime     string `json:"active_time"`
	CallsHandled   int    `json:"calls_handled"`
	UrgentNeed     bool   `json:"urgent_need"`
	NeedsRotation  bool   `json:"needs_rotation"`
	AvailableCount int    `json:"available_forces"`
	DeployedCount  int    `json:"deployed_forces"`
}

// RotationResponse DTO для сводки ротации
// @Description DTO для сводки ротации
type RotationResponse struct {
	OverallFatigue int                 `json:"overall_fatigue"`
	Threshold      int                 `json:"threshold"`
	Candidates     []*DivisionResponse `json:"candidates"`
}

// SetFatigueRequest DTO для установки уровня усталости
// @Description DTO для установки уровня усталости, значение ограничивается диапазоном 0..100
type SetFatigueRequest struct {
	FatigueLevel *int `json:"fatigue_level" validate:"required"`
}

// SetMapTypeRequest DTO для смены слоя карты
// @Description DTO для смены слоя карты
type SetMapTypeRequest struct {
	MapType string `json:"map_type" validate:"required,oneof=standard satellite traffic"`
}

// MapFocusResponse DTO для состояния фокуса карты
// @Description DTO для состояния фокуса карты
type MapFocusResponse struct {
	Center         CoordinatesDTO `json:"center"`
	MapType        string         `json:"map_type"`
	ActiveOverlays []string       `json:"active_overlays"`
}

// OverlayToggleResponse DTO для результата переключения слоя
// @Description DTO для результата переключения слоя
type OverlayToggleResponse struct {
	Overlay string `json:"overlay"`
	Active  bool   `json:"active"`
}

// SafeZoneResponse DTO для безопасной зоны
// @Description DTO для безопасной зоны
type SafeZoneResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Capacity    int            `json:"capacity"`
	Status      string         `json:"status"`
	Coordinates CoordinatesDTO `json:"coordinates"`
}

// EvacuationRouteResponse DTO для маршрута эвакуации
// @Description DTO для маршрута эвакуации
type EvacuationRouteResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`
	Status       string `json:"status"`
	Congestion   string `json:"congestion"`
}

// DetectedEventResponse DTO для события из внешнего источника
// @Description DTO для события из внешнего источника
type DetectedEventResponse struct {
	ID          string         `json:"id"`
	Source      string         `json:"source"`
	Text        string         `json:"text"`
	Timestamp   string         `json:"timestamp"`
	Verified    bool           `json:"verified"`
	Location    string         `json:"location"`
	Coordinates CoordinatesDTO `json:"coordinates"`
	Severity    string         `json:"severity"`
}

// EventStatsResponse DTO для счетчиков ленты событий
type EventStatsResponse struct {
	Total        int `json:"total"`
	Verified     int `json:"verified"`
	HighPriority int `json:"high_priority"`
}

// EventListResponse DTO для ленты событий
// @Description Отфильтрованные события и счетчики по всей ленте
type EventListResponse struct {
	Events []*DetectedEventResponse `json:"events"`
	Stats  EventStatsResponse       `json:"stats"`
}

// NotificationResponse DTO для уведомления
// @Description DTO для уведомления
type NotificationResponse struct {
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Urgent    bool      `json:"urgent"`
	CreatedAt time.Time `json:"created_at"`
}
