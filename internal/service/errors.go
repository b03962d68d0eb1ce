package service

import "errors"

var (
	ErrDuplicateID       = errors.New("duplicate id")
	ErrIncidentNotFound  = errors.New("incident not found")
	ErrForceNotFound     = errors.New("force not found")
	ErrDivisionNotFound  = errors.New("division not found")
	ErrSafeZoneNotFound  = errors.New("safe zone not found")
	ErrEventNotFound     = errors.New("detected event not found")
	ErrNoAvailableForces = errors.New("no available forces")
	ErrInvalidIncidentID = errors.New("invalid incident id")
	ErrInvalidMapType    = errors.New("invalid map type")
	ErrInvalidSeverity   = errors.New("invalid severity")
)
