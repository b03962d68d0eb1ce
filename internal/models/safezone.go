package models

type SafeZone struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Capacity    int         `json:"capacity"`
	Status      string      `json:"status"`
	Coordinates Coordinates `json:"coordinates"`
}

type RouteStatus string

const (
	RouteStatusClear   RouteStatus = "clear"
	RouteStatusPartial RouteStatus = "partial"
	RouteStatusBlocked RouteStatus = "blocked"
)

func (s RouteStatus) Valid() bool {
	switch s {
	case RouteStatusClear, RouteStatusPartial, RouteStatusBlocked:
		return true
	}
	return false
}

// EvacuationRoute - маршрут эвакуации между двумя районами
type EvacuationRoute struct {
	ID           string      `json:"id" yaml:"id"`
	Name         string      `json:"name" yaml:"name"`
	FromLocation string      `json:"from_location" yaml:"from_location"`
	ToLocation   string      `json:"to_location" yaml:"to_location"`
	Status       RouteStatus `json:"status" yaml:"status"`
	Congestion   string      `json:"congestion" yaml:"congestion"`
}
