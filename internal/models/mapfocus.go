package models

// MapType - тип базового слоя карты
type MapType string

const (
	MapTypeStandard  MapType = "standard"
	MapTypeSatellite MapType = "satellite"
	MapTypeTraffic   MapType = "traffic"
)

func (t MapType) Valid() bool {
	switch t {
	case MapTypeStandard, MapTypeSatellite, MapTypeTraffic:
		return true
	}
	return false
}

// MapFocus - общее состояние области просмотра карты
type MapFocus struct {
	Center         Coordinates `json:"center"`
	MapType        MapType     `json:"map_type"`
	ActiveOverlays []string    `json:"active_overlays"`
}

// MapChange описывает, какая часть фокуса карты изменилась
type MapChange string

const (
	MapChangeCenter  MapChange = "center"
	MapChangeType    MapChange = "map_type"
	MapChangeOverlay MapChange = "overlay"
)

// MapEvent публикуется при каждом изменении фокуса карты
type MapEvent struct {
	Change MapChange `json:"change"`
	Focus  MapFocus  `json:"focus"`
}
