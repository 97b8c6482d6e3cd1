package dto

import "time"

// NotificationResponse señal derivada del catálogo (stock bajo o antiguo).
type NotificationResponse struct {
	ID            string    `json:"id"`
	Kind          string    `json:"kind"` // low_stock | old_stock
	ComponentID   string    `json:"component_id"`
	ComponentName string    `json:"component_name"`
	Message       string    `json:"message"`
	Timestamp     time.Time `json:"timestamp"`
	Read          bool      `json:"read"`
}

// MarkNotificationReadRequest body para marcar leída/no leída una notificación.
type MarkNotificationReadRequest struct {
	Read bool `json:"read"`
}
