package entity

import "time"

// Clases de notificación derivadas del catálogo.
const (
	NotificationLowStock = "low_stock" // cantidad en o bajo el umbral
	NotificationOldStock = "old_stock" // sin movimientos dentro de la ventana
)

// IsValidNotificationKind indica si la clase pertenece al enum de notificaciones.
func IsValidNotificationKind(kind string) bool {
	return kind == NotificationLowStock || kind == NotificationOldStock
}

// Notification es una señal derivada del estado actual del catálogo: se recalcula,
// no se persiste como fuente de verdad. El único estado propio es el flag Read,
// que vive en su propio almacén (NotificationReadRepository).
type Notification struct {
	ID            string // clave determinista: kind + ":" + componentID
	Kind          string // low_stock | old_stock
	ComponentID   string
	ComponentName string
	Message       string
	Timestamp     time.Time
	Read          bool
}

// NotificationKey arma la clave determinista con la que se guarda el flag de leído.
func NotificationKey(kind, componentID string) string {
	return kind + ":" + componentID
}
