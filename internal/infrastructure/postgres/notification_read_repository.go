package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/lims-api/internal/domain/entity"
	"github.com/jhoicas/lims-api/internal/domain/repository"
)

var _ repository.NotificationReadRepository = (*NotificationReadRepo)(nil)

// NotificationReadRepo almacén del flag de leído sobre PostgreSQL.
// Clave natural (kind, component_id): las notificaciones son derivadas, solo
// este flag se persiste.
type NotificationReadRepo struct {
	pool *pgxpool.Pool
}

// NewNotificationReadRepository construye el adaptador.
func NewNotificationReadRepository(pool *pgxpool.Pool) *NotificationReadRepo {
	return &NotificationReadRepo{pool: pool}
}

// ListRead devuelve las claves marcadas como leídas.
func (r *NotificationReadRepo) ListRead() (map[string]bool, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT kind, component_id FROM notification_reads WHERE read = true`)
	if err != nil {
		return nil, fmt.Errorf("list notification reads: %w", err)
	}
	defer rows.Close()
	keys := make(map[string]bool)
	for rows.Next() {
		var kind, componentID string
		if err := rows.Scan(&kind, &componentID); err != nil {
			return nil, fmt.Errorf("scan notification read: %w", err)
		}
		keys[entity.NotificationKey(kind, componentID)] = true
	}
	return keys, rows.Err()
}

// SetRead inserta o actualiza el flag de leído para (kind, component_id).
func (r *NotificationReadRepo) SetRead(kind, componentID string, read bool) error {
	query := `
		INSERT INTO notification_reads (kind, component_id, read, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (kind, component_id)
		DO UPDATE SET read = EXCLUDED.read, updated_at = now()`
	_, err := r.pool.Exec(context.Background(), query, kind, componentID, read)
	if err != nil {
		return fmt.Errorf("set notification read: %w", err)
	}
	return nil
}
