package reports

import (
	"context"
	"time"

	"github.com/jhoicas/lims-api/internal/domain/entity"
	"github.com/jhoicas/lims-api/internal/domain/repository"
	"github.com/jhoicas/lims-api/internal/domain/stock"
)

// nowFunc permite congelar el reloj en tests.
var nowFunc = time.Now

// PDFUseCase genera el reporte PDF de inventario: catálogo completo más la
// sección de componentes en nivel crítico o bajo.
type PDFUseCase struct {
	componentRepo repository.ComponentRepository
	generator     InventoryPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(componentRepo repository.ComponentRepository, generator InventoryPDFGenerator) *PDFUseCase {
	return &PDFUseCase{componentRepo: componentRepo, generator: generator}
}

// GenerateInventoryReport arma el PDF con el estado actual del catálogo.
func (uc *PDFUseCase) GenerateInventoryReport(ctx context.Context) ([]byte, error) {
	components, err := uc.componentRepo.Search(repository.SearchFilters{})
	if err != nil {
		return nil, err
	}
	var lowStock []*entity.Component
	for _, c := range components {
		if stock.LowStockCheck(c.Quantity, c.CriticalLowThreshold) != stock.LevelGood {
			lowStock = append(lowStock, c)
		}
	}
	return uc.generator.GenerateInventoryReport(ctx, nowFunc(), components, lowStock)
}
