package memory

import (
	"github.com/jhoicas/lims-api/internal/domain/entity"
	"github.com/jhoicas/lims-api/internal/domain/repository"
)

var _ repository.NotificationReadRepository = (*NotificationReadRepo)(nil)

// NotificationReadRepo flags de leído en memoria.
type NotificationReadRepo struct {
	store *Store
}

// NewNotificationReadRepository construye el adaptador sobre el Store.
func NewNotificationReadRepository(store *Store) *NotificationReadRepo {
	return &NotificationReadRepo{store: store}
}

// ListRead devuelve las claves marcadas como leídas.
func (r *NotificationReadRepo) ListRead() (map[string]bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	keys := make(map[string]bool, len(r.store.reads))
	for k, read := range r.store.reads {
		if read {
			keys[k] = true
		}
	}
	return keys, nil
}

// SetRead fija el flag de leído para (kind, componentID).
func (r *NotificationReadRepo) SetRead(kind, componentID string, read bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.reads[entity.NotificationKey(kind, componentID)] = read
	return nil
}
