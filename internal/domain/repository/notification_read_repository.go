package repository

// NotificationReadRepository almacén del flag de leído de las notificaciones
// derivadas. Es el único estado propio de una notificación: el resto se recalcula
// del catálogo en cada consulta, así la derivación se mantiene idempotente.
type NotificationReadRepository interface {
	// ListRead devuelve las claves (entity.NotificationKey) marcadas como leídas.
	ListRead() (map[string]bool, error)
	SetRead(kind, componentID string, read bool) error
}
