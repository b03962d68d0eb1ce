// Package docs содержит описание OpenAPI, которое отдает gin-swagger.
// Обновляется командой: swag init -g cmd/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/incidents": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Incidents"],
                "summary": "Get a list of incidents",
                "parameters": [
                    {"type": "string", "default": "all", "description": "Severity filter: all, low, medium, high", "name": "severity", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.IncidentListResponse"}},
                    "400": {"description": "Unknown severity", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Incidents"],
                "summary": "Create a new incident",
                "parameters": [
                    {"description": "Incident creation request", "name": "incident", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.CreateIncidentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/v1.IncidentResponse"}},
                    "400": {"description": "Invalid request body or validation error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "429": {"description": "Too many requests", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/incidents/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Incidents"],
                "summary": "Get incident by ID",
                "parameters": [{"type": "string", "description": "Incident ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.IncidentResponse"}},
                    "404": {"description": "Incident not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "tags": ["Incidents"],
                "summary": "Update an existing incident",
                "parameters": [
                    {"type": "string", "description": "Incident ID", "name": "id", "in": "path", "required": true},
                    {"description": "Incident update request", "name": "incident", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.UpdateIncidentRequest"}}
                ],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/incidents/{id}/close": {
            "post": {
                "tags": ["Incidents"],
                "summary": "Close an incident",
                "parameters": [{"type": "string", "description": "Incident ID", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/incidents/{id}/focus": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Incidents"],
                "summary": "Focus the map on an incident",
                "parameters": [{"type": "string", "description": "Incident ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.MapFocusResponse"}}}
            }
        },
        "/forces": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Forces"],
                "summary": "Get the force roster",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/v1.ForceResponse"}}}}
            }
        },
        "/forces/deploy": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Forces"],
                "summary": "Deploy a force",
                "parameters": [{"description": "Deployment request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.DeployForceRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.ForceResponse"}},
                    "409": {"description": "No available forces", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/forces/{id}/return": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Forces"],
                "summary": "Return a force to base",
                "parameters": [{"type": "string", "description": "Force ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "returned", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}}}
            }
        },
        "/forces/{id}/focus": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Forces"],
                "summary": "Focus the map on a force",
                "parameters": [{"type": "string", "description": "Force ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.MapFocusResponse"}}}
            }
        },
        "/divisions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Divisions"],
                "summary": "Get divisions",
                "parameters": [{"type": "string", "default": "roster", "description": "Sort order: roster or fatigue", "name": "sort", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/v1.DivisionResponse"}}}}
            }
        },
        "/divisions/rotation": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Divisions"],
                "summary": "Get the rotation summary",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.RotationResponse"}}}
            }
        },
        "/divisions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Divisions"],
                "summary": "Get division by ID",
                "parameters": [{"type": "string", "description": "Division ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.DivisionResponse"}}}
            }
        },
        "/divisions/{id}/rotate": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Divisions"],
                "summary": "Rotate division personnel",
                "parameters": [{"type": "string", "description": "Division ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "rotated", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}}}
            }
        },
        "/divisions/{id}/fatigue": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Divisions"],
                "summary": "Set division fatigue",
                "parameters": [
                    {"type": "string", "description": "Division ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fatigue level", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.SetFatigueRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.DivisionResponse"}}}
            }
        },
        "/map": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Map"],
                "summary": "Get the map focus",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.MapFocusResponse"}}}
            }
        },
        "/map/center": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Map"],
                "summary": "Set the map center",
                "parameters": [{"description": "New center", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.CoordinatesDTO"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.MapFocusResponse"}}}
            }
        },
        "/map/type": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Map"],
                "summary": "Set the map type",
                "parameters": [{"description": "Map type", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.SetMapTypeRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.MapFocusResponse"}}}
            }
        },
        "/map/overlays/{id}/toggle": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Map"],
                "summary": "Toggle a map overlay",
                "parameters": [{"type": "string", "description": "Overlay ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.OverlayToggleResponse"}}}
            }
        },
        "/safezones": {
            "get": {
                "produces": ["application/json"],
                "tags": ["SafeZones"],
                "summary": "Get safe zones",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/v1.SafeZoneResponse"}}}}
            }
        },
        "/safezones/routes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["SafeZones"],
                "summary": "Get evacuation routes",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/v1.EvacuationRouteResponse"}}}}
            }
        },
        "/safezones/{id}/focus": {
            "post": {
                "produces": ["application/json"],
                "tags": ["SafeZones"],
                "summary": "Focus the map on a safe zone",
                "parameters": [{"type": "string", "description": "Safe zone ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.MapFocusResponse"}}}
            }
        },
        "/events": {
            "get": {
                "description": "Get the external event feed. The query matches text, location or source, case-insensitive.",
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "Get detected events",
                "parameters": [{"type": "string", "description": "Search query", "name": "q", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.EventListResponse"}}}
            }
        },
        "/events/{id}/incident": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "Create an incident from a detected event",
                "parameters": [{"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/v1.IncidentResponse"}},
                    "404": {"description": "Event not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal server error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/notifications": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Notifications"],
                "summary": "Get recent notifications",
                "parameters": [{"type": "integer", "default": 20, "description": "Number of notifications", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/v1.NotificationResponse"}}}}
            }
        },
        "/stream": {
            "get": {
                "tags": ["System"],
                "summary": "Live event stream",
                "responses": {"101": {"description": "Switching Protocols"}}
            }
        },
        "/system/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Get application health status",
                "responses": {"200": {"description": "Status OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        }
    },
    "definitions": {
        "v1.CoordinatesDTO": {
            "type": "object",
            "properties": {"lat": {"type": "number"}, "lng": {"type": "number"}}
        },
        "v1.CreateIncidentRequest": {
            "type": "object",
            "required": ["location", "severity", "type"],
            "properties": {
                "id": {"type": "string"},
                "type": {"type": "string"},
                "severity": {"type": "string", "enum": ["low", "medium", "high"]},
                "location": {"type": "string"},
                "coordinates": {"$ref": "#/definitions/v1.CoordinatesDTO"},
                "time_reported": {"type": "string"},
                "status": {"type": "string", "enum": ["new", "in-progress", "resolved", "closed"]},
                "description": {"type": "string"}
            }
        },
        "v1.UpdateIncidentRequest": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "location": {"type": "string"},
                "coordinates": {"$ref": "#/definitions/v1.CoordinatesDTO"},
                "time_reported": {"type": "string"},
                "status": {"type": "string", "enum": ["new", "in-progress", "resolved", "closed"]},
                "description": {"type": "string"}
            }
        },
        "v1.IncidentResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "type": {"type": "string"},
                "severity": {"type": "string"},
                "location": {"type": "string"},
                "coordinates": {"$ref": "#/definitions/v1.CoordinatesDTO"},
                "time_reported": {"type": "string"},
                "status": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "v1.IncidentListResponse": {
            "type": "object",
            "properties": {
                "incidents": {"type": "array", "items": {"$ref": "#/definitions/v1.IncidentResponse"}},
                "high_priority": {"type": "integer"}
            }
        },
        "v1.DeployForceRequest": {
            "type": "object",
            "required": ["incident_id"],
            "properties": {"incident_id": {"type": "string"}}
        },
        "v1.ForceResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string"},
                "division": {"type": "string"},
                "personnel": {"type": "integer"},
                "status": {"type": "string"},
                "home_base": {"type": "string"},
                "location": {"type": "string"},
                "incident": {"type": "string"},
                "deployed_time": {"type": "string"}
            }
        },
        "v1.DivisionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "command_center": {"type": "string"},
                "capacity": {"type": "integer"},
                "fatigue_level": {"type": "integer"},
                "fatigue_band": {"type": "string"},
                "active_time": {"type": "string"},
                "calls_handled": {"type": "integer"},
                "urgent_need": {"type": "boolean"},
                "needs_rotation": {"type": "boolean"},
                "available_forces": {"type": "integer"},
                "deployed_forces": {"type": "integer"}
            }
        },
        "v1.RotationResponse": {
            "type": "object",
            "properties": {
                "overall_fatigue": {"type": "integer"},
                "threshold": {"type": "integer"},
                "candidates": {"type": "array", "items": {"$ref": "#/definitions/v1.DivisionResponse"}}
            }
        },
        "v1.SetFatigueRequest": {
            "type": "object",
            "required": ["fatigue_level"],
            "properties": {"fatigue_level": {"type": "integer"}}
        },
        "v1.SetMapTypeRequest": {
            "type": "object",
            "required": ["map_type"],
            "properties": {"map_type": {"type": "string", "enum": ["standard", "satellite", "traffic"]}}
        },
        "v1.MapFocusResponse": {
            "type": "object",
            "properties": {
                "center": {"$ref": "#/definitions/v1.CoordinatesDTO"},
                "map_type": {"type": "string"},
                "active_overlays": {"type": "array", "items": {"type": "string"}}
            }
        },
        "v1.OverlayToggleResponse": {
            "type": "object",
            "properties": {"overlay": {"type": "string"}, "active": {"type": "boolean"}}
        },
        "v1.SafeZoneResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string"},
                "capacity": {"type": "integer"},
                "status": {"type": "string"},
                "coordinates": {"$ref": "#/definitions/v1.CoordinatesDTO"}
            }
        },
        "v1.EvacuationRouteResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "from_location": {"type": "string"},
                "to_location": {"type": "string"},
                "status": {"type": "string"},
                "congestion": {"type": "string"}
            }
        },
        "v1.DetectedEventResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "source": {"type": "string"},
                "text": {"type": "string"},
                "timestamp": {"type": "string"},
                "verified": {"type": "boolean"},
                "location": {"type": "string"},
                "coordinates": {"$ref": "#/definitions/v1.CoordinatesDTO"},
                "severity": {"type": "string"}
            }
        },
        "v1.EventStatsResponse": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "verified": {"type": "integer"},
                "high_priority": {"type": "integer"}
            }
        },
        "v1.EventListResponse": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/v1.DetectedEventResponse"}},
                "stats": {"$ref": "#/definitions/v1.EventStatsResponse"}
            }
        },
        "v1.NotificationResponse": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "message": {"type": "string"},
                "urgent": {"type": "boolean"},
                "created_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "City Command Center API",
	Description:      "Incident, force and map focus coordination for a city command center.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
