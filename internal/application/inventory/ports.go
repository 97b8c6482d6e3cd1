package inventory

import (
	"context"

	"github.com/jhoicas/lims-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios
// atados a esa transacción. Es la frontera de atomicidad del motor de
// movimientos: el append al ledger y la mutación de cantidad se confirman
// juntos o se descartan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		componentRepo repository.ComponentRepository,
	) error) error
}
