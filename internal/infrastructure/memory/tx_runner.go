package memory

import (
	"context"

	"github.com/jhoicas/lims-api/internal/application/inventory"
	"github.com/jhoicas/lims-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks bajo el lock de escritura del Store, con snapshot
// para rollback. Equivale a la transacción con SELECT FOR UPDATE del adaptador
// PostgreSQL: dos movimientos concurrentes nunca intercalan su check-then-act.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el Store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run toma el lock de escritura, ejecuta fn con repos atados a la "transacción"
// y deshace todo cambio si fn devuelve error.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	componentRepo repository.ComponentRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	components, order, movements := r.store.snapshot()

	movRepo := &MovementRepo{store: r.store, inTx: true}
	componentRepo := &ComponentRepo{store: r.store, inTx: true}
	if err := fn(movRepo, componentRepo); err != nil {
		r.store.restore(components, order, movements)
		return err
	}
	return nil
}
