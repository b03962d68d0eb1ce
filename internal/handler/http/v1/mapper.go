package v1

import "github.com/shenikar/city_command_center/internal/models"

func coordinatesToModel(dto CoordinatesDTO) models.Coordinates {
	return models.Coordinates{Lat: dto.Lat, Lng: dto.Lng}
}

func coordinatesToDTO(c models.Coordinates) CoordinatesDTO {
	return CoordinatesDTO{Lat: c.Lat, Lng: c.Lng}
}

// CreateRequestToIncident преобразует DTO создания в доменную модель.
// Пустые id, статус и время заполняет сервис.
func CreateRequestToIncident(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		ID:           dto.ID,
		Type:         dto.Type,
		Severity:     models.Severity(dto.Severity),
		Location:     dto.Location,
		Coordinates:  coordinatesToModel(dto.Coordinates),
		TimeReported: dto.TimeReported,
		Status:       models.IncidentStatus(dto.Status),
		Description:  dto.Description,
	}
}

// UpdateRequestToPatch преобразует DTO обновления в частичное изменение
func UpdateRequestToPatch(dto UpdateIncidentRequest) models.IncidentPatch {
	patch := models.IncidentPatch{
		Type:         dto.Type,
		Location:     dto.Location,
		TimeReported: dto.TimeReported,
		Description:  dto.Description,
	}
	if dto.Coordinates != nil {
		c := coordinatesToModel(*dto.Coordinates)
		patch.Coordinates = &c
	}
	if dto.Status != nil {
		s := models.IncidentStatus(*dto.Status)
		patch.Status = &s
	}
	return patch
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:           model.ID,
		Type:         model.Type,
		Severity:     string(model.Severity),
		Location:     model.Location,
		Coordinates:  coordinatesToDTO(model.Coordinates),
		TimeReported: model.TimeReported,
		Status:       string(model.Status),
		Description:  model.Description,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i := range incidents {
		responses[i] = ModelToIncidentResponse(&incidents[i])
	}
	return responses
}

func ModelToForceResponse(model *models.Force) *ForceResponse {
	return &ForceResponse{
		ID:           model.ID,
		Name:         model.Name,
		Type:         string(model.Type),
		Division:     model.DivisionID,
		Personnel:    model.Personnel,
		Status:       string(model.Status),
		HomeBase:     model.HomeBase,
		Location:     model.Location,
		Incident:     model.Incident,
		DeployedTime: model.DeployedTime,
	}
}

func ModelsToForceResponses(forces []models.Force) []*ForceResponse {
	responses := make([]*ForceResponse, len(forces))
	for i := range forces {
		responses[i] = ModelToForceResponse(&forces[i])
	}
	return responses
}

// ModelToDivisionResponse дополняет округ счетчиками подразделений
func ModelToDivisionResponse(model *models.Division, available, deployed int) *DivisionResponse {
	return &DivisionResponse{
		ID:             model.ID,
		Name:           model.Name,
		CommandCenter:  model.CommandCenter,
		Capacity:       model.Capacity,
		FatigueLevel:   model.FatigueLevel,
		FatigueBand:    string(model.FatigueBand()),
		ActiveTime:     model.ActiveTime,
		CallsHandled:   model.CallsHandled,
		UrgentNeed:     model.UrgentNeed,
		NeedsRotation:  model.NeedsRotation(),
		AvailableCount: available,
		DeployedCount:  deployed,
	}
}

func ModelToMapFocusResponse(model models.MapFocus) *MapFocusResponse {
	overlays := make([]string, len(model.ActiveOverlays))
	copy(overlays, model.ActiveOverlays)
	return &MapFocusResponse{
		Center:         coordinatesToDTO(model.Center),
		MapType:        string(model.MapType),
		ActiveOverlays: overlays,
	}
}

func ModelToSafeZoneResponse(model *models.SafeZone) *SafeZoneResponse {
	return &SafeZoneResponse{
		ID:          model.ID,
		Name:        model.Name,
		Type:        model.Type,
		Capacity:    model.Capacity,
		Status:      model.Status,
		Coordinates: coordinatesToDTO(model.Coordinates),
	}
}

func ModelToEvacuationRouteResponse(model *models.EvacuationRoute) *EvacuationRouteResponse {
	return &EvacuationRouteResponse{
		ID:           model.ID,
		Name:         model.Name,
		FromLocation: model.FromLocation,
		ToLocation:   model.ToLocation,
		Status:       string(model.Status),
		Congestion:   model.Congestion,
	}
}

func ModelsToDetectedEventResponses(events []models.DetectedEvent) []*DetectedEventResponse {
	responses := make([]*DetectedEventResponse, len(events))
	for i, e := range events {
		responses[i] = &DetectedEventResponse{
			ID:          e.ID,
			Source:      e.Source,
			Text:        e.Text,
			Timestamp:   e.Timestamp,
			Verified:    e.Verified,
			Location:    e.Location,
			Coordinates: coordinatesToDTO(e.Coordinates),
			Severity:    string(e.Severity),
		}
	}
	return responses
}

func ModelToEventStatsResponse(stats models.EventFeedStats) EventStatsResponse {
	return EventStatsResponse{
		Total:        stats.Total,
		Verified:     stats.Verified,
		HighPriority: stats.HighPriority,
	}
}

func ModelsToNotificationResponses(notifications []models.Notification) []*NotificationResponse {
	responses := make([]*NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = &NotificationResponse{
			Kind:      string(n.Kind),
			Message:   n.Message,
			Urgent:    n.Urgent,
			CreatedAt: n.CreatedAt,
		}
	}
	return responses
}
