package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/lims-api/internal/domain/entity"
	"github.com/jhoicas/lims-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, component_id, type, quantity, user_id, username, reason, project, created_at`

// MovementRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
// La tabla es append-only: no hay UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento del ledger.
func (r *MovementRepo) Create(m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, component_id, type, quantity, user_id, username, reason, project, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	project := (*string)(nil)
	if m.Project != "" {
		project = &m.Project
	}
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ComponentID, m.Type, m.Quantity, m.UserID, m.Username, m.Reason, project, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// ListByComponent lista los movimientos de un componente, más recientes primero.
// Un componentID desconocido devuelve lista vacía, no error.
func (r *MovementRepo) ListByComponent(componentID string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements WHERE component_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, componentID, limit, offset)
}

// ListAll lista el historial completo, más recientes primero.
func (r *MovementRepo) ListAll(limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	list := []*entity.Movement{}
	for rows.Next() {
		var m entity.Movement
		var project *string
		if err := rows.Scan(&m.ID, &m.ComponentID, &m.Type, &m.Quantity, &m.UserID,
			&m.Username, &m.Reason, &project, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if project != nil {
			m.Project = *project
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
