package models

// DetectedEvent - сообщение о происшествии из внешнего источника (соцсети, мессенджеры, линия экстренных вызовов)
type DetectedEvent struct {
	ID          string      `json:"id" yaml:"id"`
	Source      string      `json:"source" yaml:"source"`
	Text        string      `json:"text" yaml:"text"`
	Timestamp   string      `json:"timestamp" yaml:"timestamp"`
	Verified    bool        `json:"verified" yaml:"verified"`
	Location    string      `json:"location" yaml:"location"`
	Coordinates Coordinates `json:"coordinates" yaml:"coordinates"`
	Severity    Severity    `json:"severity" yaml:"severity"`
}

// EventFeedStats - сводка по ленте событий
type EventFeedStats struct {
	Total        int `json:"total"`
	Verified     int `json:"verified"`
	HighPriority int `json:"high_priority"`
}
