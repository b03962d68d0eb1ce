package models

type ForceType string

const (
	ForceTypePolice   ForceType = "police"
	ForceTypeFire     ForceType = "fire"
	ForceTypeMedical  ForceType = "medical"
	ForceTypeDisaster ForceType = "disaster"
)

// ForceStatus - состояние подразделения
type ForceStatus string

const (
	ForceStatusAvailable   ForceStatus = "available"
	ForceStatusDeployed    ForceStatus = "deployed"
	ForceStatusMaintenance ForceStatus = "maintenance"
)

// Force - выездное подразделение (наряд, расчет, бригада).
// Incident заполнен тогда и только тогда, когда Status == deployed.
type Force struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Type         ForceType   `json:"type"`
	DivisionID   string      `json:"division_id"`
	Personnel    int         `json:"personnel"`
	Status       ForceStatus `json:"status"`
	HomeBase     string      `json:"home_base"`
	Location     string      `json:"location"`
	Incident     string      `json:"incident,omitempty"`
	DeployedTime string      `json:"deployed_time,omitempty"`
}

// Division - округ, объединяющий подразделения
type Division struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CommandCenter string `json:"command_center"`
	Capacity      int    `json:"capacity"`
	FatigueLevel  int    `json:"fatigue_level"`
	ActiveTime    string `json:"active_time"`
	CallsHandled  int    `json:"calls_handled"`
	UrgentNeed    bool   `json:"urgent_need"`
}

// RotationThreshold - уровень усталости, выше которого округ нуждается в ротации
const RotationThreshold = 60

// NeedsRotation сообщает, превышает ли усталость порог ротации
func (d Division) NeedsRotation() bool {
	return d.FatigueLevel > RotationThreshold
}

// FatigueBand - качественная оценка уровня усталости
type FatigueBand string

const (
	FatigueFresh    FatigueBand = "fresh"
	FatigueModerate FatigueBand = "moderate"
	FatigueHigh     FatigueBand = "high"
	FatigueCritical FatigueBand = "critical"
)

func (d Division) FatigueBand() FatigueBand {
	switch {
	case d.FatigueLevel > 75:
		return FatigueCritical
	case d.FatigueLevel > 50:
		return FatigueHigh
	case d.FatigueLevel > 25:
		return FatigueModerate
	default:
		return FatigueFresh
	}
}
