package memory

import (
	"github.com/jhoicas/lims-api/internal/domain/entity"
	"github.com/jhoicas/lims-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo ledger en memoria, append-only.
type MovementRepo struct {
	store *Store
	inTx  bool
}

// NewMovementRepository construye el adaptador sobre el Store.
func NewMovementRepository(store *Store) *MovementRepo {
	return &MovementRepo{store: store}
}

// Create agrega un movimiento al final del ledger.
func (r *MovementRepo) Create(m *entity.Movement) error {
	unlock := r.store.lock(r.inTx)
	defer unlock()
	r.store.movements = append(r.store.movements, cloneMovement(m))
	return nil
}

// ListByComponent lista movimientos de un componente, más recientes primero.
func (r *MovementRepo) ListByComponent(componentID string, limit, offset int) ([]*entity.Movement, error) {
	unlock := r.store.rlock(r.inTx)
	defer unlock()
	return collect(r.store.movements, limit, offset, func(m *entity.Movement) bool {
		return m.ComponentID == componentID
	}), nil
}

// ListAll lista el historial completo, más recientes primero.
func (r *MovementRepo) ListAll(limit, offset int) ([]*entity.Movement, error) {
	unlock := r.store.rlock(r.inTx)
	defer unlock()
	return collect(r.store.movements, limit, offset, func(*entity.Movement) bool { return true }), nil
}

// collect recorre el ledger de atrás hacia adelante (orden de inserción inverso
// = más recientes primero) aplicando filtro y paginación.
func collect(movements []*entity.Movement, limit, offset int, keep func(*entity.Movement) bool) []*entity.Movement {
	list := []*entity.Movement{}
	skipped := 0
	for i := len(movements) - 1; i >= 0; i-- {
		m := movements[i]
		if !keep(m) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if limit > 0 && len(list) >= limit {
			break
		}
		list = append(list, cloneMovement(m))
	}
	return list
}
