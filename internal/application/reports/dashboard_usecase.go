// Package reports contiene los casos de uso de reportes: métricas del dashboard
// de inventario y exportación PDF.
package reports

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lims-api/internal/application/dto"
	"github.com/jhoicas/lims-api/internal/domain/entity"
	"github.com/jhoicas/lims-api/internal/domain/repository"
	"github.com/jhoicas/lims-api/internal/domain/stock"
)

const dashboardMonths = 6 // meses de la serie de movimientos del dashboard

// DashboardUseCase arma las métricas del dashboard de inventario.
//
// Fuente de datos: ReportRepository (agregados del ledger) y ComponentRepository
// (conteos y valor total se computan sobre el catálogo en memoria, reutilizando
// las mismas reglas de nivel que usa el derivador de alertas).
type DashboardUseCase struct {
	reportRepo    repository.ReportRepository
	componentRepo repository.ComponentRepository
	windowDays    int
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	reportRepo repository.ReportRepository,
	componentRepo repository.ComponentRepository,
	windowDays int,
) *DashboardUseCase {
	if windowDays <= 0 {
		windowDays = 90
	}
	return &DashboardUseCase{reportRepo: reportRepo, componentRepo: componentRepo, windowDays: windowDays}
}

// GetMetrics construye el DashboardMetricsDTO.
//
// Tres consultas al ledger en paralelo mientras el catálogo se recorre en el
// goroutine principal:
//  1. GetMonthlyMovements(inward)   → MonthlyInward
//  2. GetMonthlyMovements(outward)  → MonthlyOutward
//  3. GetCategoryDistribution       → CategoryDistribution
func (uc *DashboardUseCase) GetMetrics(ctx context.Context) (*dto.DashboardMetricsDTO, error) {
	now := nowFunc()

	type monthlyResult struct {
		rows []repository.MonthlyMovementResult
		err  error
	}
	type categoryResult struct {
		rows []repository.CategoryCountResult
		err  error
	}

	inwardCh := make(chan monthlyResult, 1)
	outwardCh := make(chan monthlyResult, 1)
	categoryCh := make(chan categoryResult, 1)

	go func() {
		rows, err := uc.reportRepo.GetMonthlyMovements(ctx, entity.MovementTypeInward, dashboardMonths)
		inwardCh <- monthlyResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.GetMonthlyMovements(ctx, entity.MovementTypeOutward, dashboardMonths)
		outwardCh <- monthlyResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.GetCategoryDistribution(ctx)
		categoryCh <- categoryResult{rows, err}
	}()

	components, err := uc.componentRepo.Search(repository.SearchFilters{})
	if err != nil {
		return nil, fmt.Errorf("dashboard: catálogo: %w", err)
	}

	var lowStockCount, oldStockCount int64
	totalValue := decimal.Zero
	for _, c := range components {
		if stock.LowStockCheck(c.Quantity, c.CriticalLowThreshold) != stock.LevelGood {
			lowStockCount++
		}
		if stock.StaleStockCheck(c.LastMovement, c.CreatedAt, now, uc.windowDays) {
			oldStockCount++
		}
		totalValue = totalValue.Add(c.UnitPrice.Mul(decimal.NewFromInt(c.Quantity)))
	}

	inward := <-inwardCh
	outward := <-outwardCh
	category := <-categoryCh
	if inward.err != nil {
		return nil, fmt.Errorf("dashboard: serie inward: %w", inward.err)
	}
	if outward.err != nil {
		return nil, fmt.Errorf("dashboard: serie outward: %w", outward.err)
	}
	if category.err != nil {
		return nil, fmt.Errorf("dashboard: distribución por categoría: %w", category.err)
	}

	return &dto.DashboardMetricsDTO{
		TotalComponents:      int64(len(components)),
		LowStockCount:        lowStockCount,
		OldStockCount:        oldStockCount,
		TotalValue:           totalValue,
		MonthlyInward:        toMonthlyDTOs(inward.rows),
		MonthlyOutward:       toMonthlyDTOs(outward.rows),
		CategoryDistribution: toCategoryDTOs(category.rows),
	}, nil
}

func toMonthlyDTOs(rows []repository.MonthlyMovementResult) []dto.MonthlyMovementDTO {
	out := make([]dto.MonthlyMovementDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MonthlyMovementDTO{Month: r.Month, Count: r.Count, Quantity: r.Quantity})
	}
	return out
}

func toCategoryDTOs(rows []repository.CategoryCountResult) []dto.CategoryCountDTO {
	out := make([]dto.CategoryCountDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CategoryCountDTO{Category: r.Category, Count: r.Count})
	}
	return out
}
