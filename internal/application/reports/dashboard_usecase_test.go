package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lims-api/internal/application/reports"
	"github.com/jhoicas/lims-api/internal/domain/entity"
	"github.com/jhoicas/lims-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// seedCatalog siembra tres componentes: uno crítico, uno antiguo y uno sano.
func seedCatalog(t *testing.T, store *memory.Store) {
	t.Helper()
	repo := memory.NewComponentRepository(store)
	now := time.Now()
	reciente := now.AddDate(0, 0, -3)
	viejo := now.AddDate(0, 0, -120)

	seed := []*entity.Component{
		{
			ID: "a", Name: "Resistencia 10k", PartNumber: "RES-10K",
			Category: entity.CategoryResistors, Quantity: 10, CriticalLowThreshold: 50,
			UnitPrice: decimal.RequireFromString("2.50"),
			CreatedAt: now.AddDate(0, 0, -30), LastMovement: &reciente,
		},
		{
			ID: "b", Name: "Capacitor 100nF", PartNumber: "CAP-100N",
			Category: entity.CategoryCapacitors, Quantity: 500, CriticalLowThreshold: 50,
			UnitPrice: decimal.NewFromInt(1),
			CreatedAt: now.AddDate(0, 0, -300), LastMovement: &viejo,
		},
		{
			ID: "c", Name: "Resistencia 1k", PartNumber: "RES-1K",
			Category: entity.CategoryResistors, Quantity: 200, CriticalLowThreshold: 50,
			CreatedAt: now.AddDate(0, 0, -10), LastMovement: &reciente,
		},
	}
	for _, c := range seed {
		require.NoError(t, repo.Create(c))
	}
}

func seedLedger(t *testing.T, store *memory.Store) {
	t.Helper()
	repo := memory.NewMovementRepository(store)
	now := time.Now()
	seed := []*entity.Movement{
		{ID: "m1", ComponentID: "a", Type: entity.MovementTypeInward, Quantity: 100, Reason: "compra", CreatedAt: now},
		{ID: "m2", ComponentID: "b", Type: entity.MovementTypeInward, Quantity: 50, Reason: "compra", CreatedAt: now},
		{ID: "m3", ComponentID: "a", Type: entity.MovementTypeOutward, Quantity: 30, Reason: "consumo", CreatedAt: now},
	}
	for _, m := range seed {
		require.NoError(t, repo.Create(m))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_Metricas(t *testing.T) {
	store := memory.NewStore()
	seedCatalog(t, store)
	seedLedger(t, store)

	uc := reports.NewDashboardUseCase(
		memory.NewReportRepository(store),
		memory.NewComponentRepository(store),
		90,
	)

	out, err := uc.GetMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), out.TotalComponents)
	assert.Equal(t, int64(1), out.LowStockCount, "solo el componente crítico cuenta")
	assert.Equal(t, int64(1), out.OldStockCount, "solo el componente sin movimientos recientes cuenta")

	// 10 × 2.50 + 500 × 1 + 200 × 0 = 525
	assert.True(t, decimal.RequireFromString("525").Equal(out.TotalValue),
		"valor total: %s", out.TotalValue)

	thisMonth := time.Now().Format("2006-01")
	require.Len(t, out.MonthlyInward, 1)
	assert.Equal(t, thisMonth, out.MonthlyInward[0].Month)
	assert.Equal(t, int64(2), out.MonthlyInward[0].Count)
	assert.Equal(t, int64(150), out.MonthlyInward[0].Quantity)

	require.Len(t, out.MonthlyOutward, 1)
	assert.Equal(t, int64(30), out.MonthlyOutward[0].Quantity)

	require.Len(t, out.CategoryDistribution, 2)
	assert.Equal(t, entity.CategoryResistors, out.CategoryDistribution[0].Category)
	assert.Equal(t, int64(2), out.CategoryDistribution[0].Count)
	assert.Equal(t, entity.CategoryCapacitors, out.CategoryDistribution[1].Category)
}

func TestDashboard_CatalogoVacio(t *testing.T) {
	store := memory.NewStore()
	uc := reports.NewDashboardUseCase(
		memory.NewReportRepository(store),
		memory.NewComponentRepository(store),
		90,
	)

	out, err := uc.GetMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), out.TotalComponents)
	assert.Equal(t, int64(0), out.LowStockCount)
	assert.True(t, out.TotalValue.IsZero())
	assert.Empty(t, out.MonthlyInward)
	assert.Empty(t, out.CategoryDistribution)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte PDF
// ──────────────────────────────────────────────────────────────────────────────

// fakeGenerator captura los argumentos para verificar el filtrado de stock bajo.
type fakeGenerator struct {
	components []*entity.Component
	lowStock   []*entity.Component
}

func (f *fakeGenerator) GenerateInventoryReport(
	_ context.Context,
	_ time.Time,
	components, lowStock []*entity.Component,
) ([]byte, error) {
	f.components = components
	f.lowStock = lowStock
	return []byte("%PDF-fake"), nil
}

func TestPDF_FiltraStockBajo(t *testing.T) {
	store := memory.NewStore()
	seedCatalog(t, store)

	gen := &fakeGenerator{}
	uc := reports.NewPDFUseCase(memory.NewComponentRepository(store), gen)

	data, err := uc.GenerateInventoryReport(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	assert.Len(t, gen.components, 3, "el catálogo completo va al reporte")
	require.Len(t, gen.lowStock, 1, "solo el componente en alerta va a la sección de stock bajo")
	assert.Equal(t, "a", gen.lowStock[0].ID)
}
