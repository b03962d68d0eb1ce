package models

import "time"

// NotificationKind - классификация уведомления для оператора
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
)

// Notification - событие для внешнего слоя отображения (toast, webhook, журнал)
type Notification struct {
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	Urgent    bool             `json:"urgent"`
	CreatedAt time.Time        `json:"created_at"`
}
