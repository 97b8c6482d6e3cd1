package repository

import "github.com/jhoicas/lims-api/internal/domain/entity"

// MovementRepository puerto de persistencia del ledger de movimientos.
// Append-only: no existen Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListByComponent lista los movimientos de un componente, más recientes primero.
	// Devuelve lista vacía (no error) para un componentID desconocido.
	ListByComponent(componentID string, limit, offset int) ([]*entity.Movement, error)
	// ListAll lista el historial completo, más recientes primero.
	ListAll(limit, offset int) ([]*entity.Movement, error)
}
