package repository

import "context"

// MonthlyMovementResult agregado mensual del ledger para un tipo de movimiento.
type MonthlyMovementResult struct {
	Month    string // "YYYY-MM"
	Count    int64  // movimientos registrados en el mes
	Quantity int64  // unidades totales del mes
}

// CategoryCountResult número de componentes por categoría.
type CategoryCountResult struct {
	Category string
	Count    int64
}

// ReportRepository consultas de solo lectura para reportes del dashboard.
type ReportRepository interface {
	// GetMonthlyMovements agrega el ledger por mes para el tipo dado (inward|outward),
	// limitado a los últimos months meses, orden cronológico ascendente.
	GetMonthlyMovements(ctx context.Context, movementType string, months int) ([]MonthlyMovementResult, error)
	GetCategoryDistribution(ctx context.Context) ([]CategoryCountResult, error)
}
