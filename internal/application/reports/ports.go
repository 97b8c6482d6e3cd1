package reports

import (
	"context"
	"time"

	"github.com/jhoicas/lims-api/internal/domain/entity"
)

// InventoryPDFGenerator genera la representación PDF del reporte de inventario.
type InventoryPDFGenerator interface {
	GenerateInventoryReport(
		ctx context.Context,
		generatedAt time.Time,
		components []*entity.Component,
		lowStock []*entity.Component,
	) ([]byte, error)
}
