package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/city_command_center/internal/models"
	"github.com/shenikar/city_command_center/internal/service"
	"github.com/shenikar/city_command_center/internal/stream"
	"github.com/sirupsen/logrus"
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 200
)

// NotificationHistory отдает последние уведомления, новые первыми
type NotificationHistory interface {
	ListRecent(ctx context.Context, limit int) ([]models.Notification, error)
}

// PointSource выдает точку рядом с центром города
type PointSource interface {
	Point() models.Coordinates
}

// Dependencies - сервисы, которые обслуживает API
type Dependencies struct {
	Incidents service.IncidentService
	Forces    service.ForceService
	Maps      service.MapService
	SafeZones service.SafeZoneService
	Events    service.EventFeedService
	History   NotificationHistory
	Points    PointSource
	Hub       *stream.Hub
}

type Handler struct {
	incidentService service.IncidentService
	forceService    service.ForceService
	mapService      service.MapService
	safeZoneService service.SafeZoneService
	eventService    service.EventFeedService
	history         NotificationHistory
	points          PointSource
	hub             *stream.Hub
	logger          *logrus.Logger
	validate        *validator.Validate
}

func NewHandler(deps Dependencies, logger *logrus.Logger) *Handler {
	return &Handler{
		incidentService: deps.Incidents,
		forceService:    deps.Forces,
		mapService:      deps.Maps,
		safeZoneService: deps.SafeZones,
		eventService:    deps.Events,
		history:         deps.History,
		points:          deps.Points,
		hub:             deps.Hub,
		logger:          logger,
		validate:        validator.New(),
	}
}

// bindAndValidate читает тело запроса и проверяет его по тегам validate
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError переводит ошибки сервисов в HTTP-статусы
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrIncidentNotFound),
		errors.Is(err, service.ErrForceNotFound),
		errors.Is(err, service.ErrDivisionNotFound),
		errors.Is(err, service.ErrSafeZoneNotFound),
		errors.Is(err, service.ErrEventNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoAvailableForces):
		log.WithError(err).Warn("No forces available")
		c.JSON(http.StatusConflict, gin.H{"error": service.ErrNoAvailableForces.Error()})
	case errors.Is(err, service.ErrInvalidIncidentID),
		errors.Is(err, service.ErrInvalidMapType),
		errors.Is(err, service.ErrInvalidSeverity),
		errors.Is(err, service.ErrDuplicateID):
		log.WithError(err).Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Create a new incident
// @Description Create an incident. Missing id, status and report time are filled in by the service.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := CreateRequestToIncident(input)
	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get a list of incidents
// @Description Get incidents, newest first, optionally filtered by severity.
// @Tags Incidents
// @Produce json
// @Param severity query string false "Severity filter: all, low, medium, high" default(all)
// @Success 200 {object} IncidentListResponse
// @Failure 400 {object} map[string]string "Unknown severity"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	ctx := c.Request.Context()

	incidents, err := h.incidentService.FilterBySeverity(ctx, c.DefaultQuery("severity", service.SeverityAll))
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, IncidentListResponse{
		Incidents:    ModelsToIncidentResponses(incidents),
		HighPriority: h.incidentService.HighPriorityCount(ctx),
	})
}

// @Summary Get incident by ID
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update an existing incident
// @Description Apply a partial update. Severity cannot be changed. Unknown or closed incidents are left untouched.
// @Tags Incidents
// @Accept json
// @Param id path string true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Incident update request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /incidents/{id} [patch]
func (h *Handler) updateIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)

	var input UpdateIncidentRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.incidentService.UpdateIncident(c.Request.Context(), id, UpdateRequestToPatch(input)); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Close an incident
// @Description Mark an incident as closed. Repeated calls and unknown ids are accepted.
// @Tags Incidents
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Router /incidents/{id}/close [post]
func (h *Handler) closeIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "closeIncident").WithField("id", id)

	if err := h.incidentService.CloseIncident(c.Request.Context(), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Focus the map on an incident
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} MapFocusResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/focus [post]
func (h *Handler) focusIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "focusIncident").WithField("id", id)
	ctx := c.Request.Context()

	incident, err := h.incidentService.GetIncident(ctx, id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	h.mapService.SetCenter(ctx, incident.Coordinates)
	c.JSON(http.StatusOK, ModelToMapFocusResponse(h.mapService.Focus(ctx)))
}

// @Summary Get the force roster
// @Tags Forces
// @Produce json
// @Success 200 {array} ForceResponse
// @Router /forces [get]
func (h *Handler) listForces(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToForceResponses(h.forceService.ListForces(c.Request.Context())))
}

// @Summary Deploy a force
// @Description Assign the first available force in roster order to the incident.
// @Tags Forces
// @Accept json
// @Produce json
// @Param request body DeployForceRequest true "Deployment request"
// @Success 200 {object} ForceResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 409 {object} map[string]string "No available forces"
// @Router /forces/deploy [post]
func (h *Handler) deployForce(c *gin.Context) {
	var input DeployForceRequest
	log := h.logger.WithField("method", "deployForce")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	force, err := h.forceService.DeployForce(c.Request.Context(), input.IncidentID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToForceResponse(force))
}

// @Summary Return a force to base
// @Description Only deployed forces are returned. Other forces are left untouched.
// @Tags Forces
// @Produce json
// @Param id path string true "Force ID"
// @Success 200 {object} map[string]bool "returned"
// @Router /forces/{id}/return [post]
func (h *Handler) returnForce(c *gin.Context) {
	id := c.Param("id")
	returned := h.forceService.ReturnForce(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"returned": returned})
}

// @Summary Focus the map on a force
// @Tags Forces
// @Produce json
// @Param id path string true "Force ID"
// @Success 200 {object} MapFocusResponse
// @Failure 404 {object} map[string]string "Force not found"
// @Router /forces/{id}/focus [post]
func (h *Handler) focusForce(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "focusForce").WithField("id", id)
	ctx := c.Request.Context()

	if _, err := h.forceService.GetForce(ctx, id); err != nil {
		respondError(c, log, err)
		return
	}
	// У подразделений нет координат, карта центрируется на точке рядом с городом
	h.mapService.SetCenter(ctx, h.points.Point())
	c.JSON(http.StatusOK, ModelToMapFocusResponse(h.mapService.Focus(ctx)))
}

func (h *Handler) divisionResponse(ctx context.Context, d *models.Division) *DivisionResponse {
	return ModelToDivisionResponse(d, h.forceService.AvailableCount(ctx, d.ID), h.forceService.DeployedCount(ctx, d.ID))
}

func (h *Handler) divisionResponses(ctx context.Context, divisions []models.Division) []*DivisionResponse {
	responses := make([]*DivisionResponse, len(divisions))
	for i := range divisions {
		responses[i] = h.divisionResponse(ctx, &divisions[i])
	}
	return responses
}

// @Summary Get divisions
// @Description Get divisions in roster order, or sorted by fatigue when sort=fatigue.
// @Tags Divisions
// @Produce json
// @Param sort query string false "Sort order: roster or fatigue" default(roster)
// @Success 200 {array} DivisionResponse
// @Router /divisions [get]
func (h *Handler) listDivisions(c *gin.Context) {
	ctx := c.Request.Context()
	var divisions []models.Division
	if c.Query("sort") == "fatigue" {
		divisions = h.forceService.DivisionsByFatigue(ctx)
	} else {
		divisions = h.forceService.ListDivisions(ctx)
	}
	c.JSON(http.StatusOK, h.divisionResponses(ctx, divisions))
}

// @Summary Get division by ID
// @Tags Divisions
// @Produce json
// @Param id path string true "Division ID"
// @Success 200 {object} DivisionResponse
// @Failure 404 {object} map[string]string "Division not found"
// @Router /divisions/{id} [get]
func (h *Handler) getDivision(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getDivision").WithField("id", id)
	ctx := c.Request.Context()

	division, err := h.forceService.GetDivision(ctx, id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, h.divisionResponse(ctx, division))
}

// @Summary Get the rotation summary
// @Description Overall fatigue and the divisions eligible for rotation.
// @Tags Divisions
// @Produce json
// @Success 200 {object} RotationResponse
// @Router /divisions/rotation [get]
func (h *Handler) rotationSummary(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, RotationResponse{
		OverallFatigue: h.forceService.OverallFatigue(ctx),
		Threshold:      models.RotationThreshold,
		Candidates:     h.divisionResponses(ctx, h.forceService.RotationCandidates(ctx)),
	})
}

// @Summary Rotate division personnel
// @Description Rotation happens only when fatigue is above the threshold.
// @Tags Divisions
// @Produce json
// @Param id path string true "Division ID"
// @Success 200 {object} map[string]bool "rotated"
// @Router /divisions/{id}/rotate [post]
func (h *Handler) rotateDivision(c *gin.Context) {
	rotated := h.forceService.Rotate(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"rotated": rotated})
}

// @Summary Set division fatigue
// @Description Record the fatigue gauge of a division. The value is clamped to 0..100.
// @Tags Divisions
// @Accept json
// @Produce json
// @Param id path string true "Division ID"
// @Param request body SetFatigueRequest true "Fatigue level"
// @Success 200 {object} DivisionResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Division not found"
// @Router /divisions/{id}/fatigue [put]
func (h *Handler) setFatigue(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "setFatigue").WithField("id", id)
	ctx := c.Request.Context()

	var input SetFatigueRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if !h.forceService.SetFatigue(ctx, id, *input.FatigueLevel) {
		respondError(c, log, service.ErrDivisionNotFound)
		return
	}
	division, err := h.forceService.GetDivision(ctx, id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, h.divisionResponse(ctx, division))
}

// @Summary Get the map focus
// @Tags Map
// @Produce json
// @Success 200 {object} MapFocusResponse
// @Router /map [get]
func (h *Handler) getMapFocus(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToMapFocusResponse(h.mapService.Focus(c.Request.Context())))
}

// @Summary Set the map center
// @Tags Map
// @Accept json
// @Produce json
// @Param request body CoordinatesDTO true "New center"
// @Success 200 {object} MapFocusResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /map/center [put]
func (h *Handler) setMapCenter(c *gin.Context) {
	var input CoordinatesDTO
	log := h.logger.WithField("method", "setMapCenter")
	ctx := c.Request.Context()

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	h.mapService.SetCenter(ctx, coordinatesToModel(input))
	c.JSON(http.StatusOK, ModelToMapFocusResponse(h.mapService.Focus(ctx)))
}

// @Summary Set the map type
// @Tags Map
// @Accept json
// @Produce json
// @Param request body SetMapTypeRequest true "Map type"
// @Success 200 {object} MapFocusResponse
// @Failure 400 {object} map[string]string "Unknown map type"
// @Router /map/type [put]
func (h *Handler) setMapType(c *gin.Context) {
	var input SetMapTypeRequest
	log := h.logger.WithField("method", "setMapType")
	ctx := c.Request.Context()

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.mapService.SetMapType(ctx, models.MapType(input.MapType)); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToMapFocusResponse(h.mapService.Focus(ctx)))
}

// @Summary Toggle a map overlay
// @Tags Map
// @Produce json
// @Param id path string true "Overlay ID"
// @Success 200 {object} OverlayToggleResponse
// @Router /map/overlays/{id}/toggle [post]
func (h *Handler) toggleOverlay(c *gin.Context) {
	overlay := c.Param("id")
	active := h.mapService.ToggleOverlay(c.Request.Context(), overlay)
	c.JSON(http.StatusOK, OverlayToggleResponse{Overlay: overlay, Active: active})
}

// @Summary Get safe zones
// @Tags SafeZones
// @Produce json
// @Success 200 {array} SafeZoneResponse
// @Router /safezones [get]
func (h *Handler) listSafeZones(c *gin.Context) {
	zones := h.safeZoneService.ListSafeZones(c.Request.Context())
	responses := make([]*SafeZoneResponse, len(zones))
	for i := range zones {
		responses[i] = ModelToSafeZoneResponse(&zones[i])
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get evacuation routes
// @Tags SafeZones
// @Produce json
// @Success 200 {array} EvacuationRouteResponse
// @Router /safezones/routes [get]
func (h *Handler) listEvacuationRoutes(c *gin.Context) {
	routes := h.safeZoneService.ListEvacuationRoutes(c.Request.Context())
	responses := make([]*EvacuationRouteResponse, len(routes))
	for i := range routes {
		responses[i] = ModelToEvacuationRouteResponse(&routes[i])
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Focus the map on a safe zone
// @Description Center the map on the zone and enable the safe zones overlay.
// @Tags SafeZones
// @Produce json
// @Param id path string true "Safe zone ID"
// @Success 200 {object} MapFocusResponse
// @Failure 404 {object} map[string]string "Safe zone not found"
// @Router /safezones/{id}/focus [post]
func (h *Handler) focusSafeZone(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "focusSafeZone").WithField("id", id)
	ctx := c.Request.Context()

	if err := h.safeZoneService.ViewOnMap(ctx, id); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToMapFocusResponse(h.mapService.Focus(ctx)))
}

// @Summary Get detected events
// @Description Get the external event feed. The query matches text, location or source, case-insensitive.
// @Tags Events
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} EventListResponse
// @Router /events [get]
func (h *Handler) listEvents(c *gin.Context) {
	ctx := c.Request.Context()
	events := h.eventService.ListEvents(ctx, c.Query("q"))
	c.JSON(http.StatusOK, EventListResponse{
		Events: ModelsToDetectedEventResponses(events),
		Stats:  ModelToEventStatsResponse(h.eventService.Stats(ctx)),
	})
}

// @Summary Create an incident from a detected event
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 201 {object} IncidentResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/incident [post]
func (h *Handler) promoteEvent(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "promoteEvent").WithField("id", id)

	incident, err := h.eventService.PromoteEvent(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary Get recent notifications
// @Tags Notifications
// @Produce json
// @Param limit query int false "Number of notifications" default(20)
// @Success 200 {array} NotificationResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	log := h.logger.WithField("method", "listNotifications")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultNotificationLimit)))
	if err != nil || limit <= 0 {
		limit = defaultNotificationLimit
	}
	limit = min(limit, maxNotificationLimit)

	notifications, err := h.history.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToNotificationResponses(notifications))
}

// @Summary Get application health status
// @Tags System
// @Produce json
// @Success 200 {object} map[string]any "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"incidents":     len(h.incidentService.ListIncidents(ctx)),
		"high_priority": h.incidentService.HighPriorityCount(ctx),
		"subscribers":   h.hub.Subscribers(),
	})
}
