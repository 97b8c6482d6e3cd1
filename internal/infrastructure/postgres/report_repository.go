package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/lims-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los agregados del dashboard.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetMonthlyMovements agrega el ledger por mes para el tipo dado, últimos
// months meses, orden cronológico ascendente.
func (r *ReportRepo) GetMonthlyMovements(
	ctx context.Context,
	movementType string,
	months int,
) ([]repository.MonthlyMovementResult, error) {
	const query = `
	SELECT
	    to_char(date_trunc('month', created_at), 'YYYY-MM') AS month,
	    COUNT(*)                                            AS count,
	    COALESCE(SUM(quantity), 0)                          AS quantity
	FROM movements
	WHERE type = $1
	  AND created_at >= date_trunc('month', now()) - make_interval(months => $2 - 1)
	GROUP BY 1
	ORDER BY 1 ASC`

	rows, err := r.pool.Query(ctx, query, movementType, months)
	if err != nil {
		return nil, fmt.Errorf("reports.GetMonthlyMovements: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlyMovementResult
	for rows.Next() {
		var row repository.MonthlyMovementResult
		if err := rows.Scan(&row.Month, &row.Count, &row.Quantity); err != nil {
			return nil, fmt.Errorf("reports.GetMonthlyMovements scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetCategoryDistribution cuenta componentes por categoría, mayor primero.
func (r *ReportRepo) GetCategoryDistribution(ctx context.Context) ([]repository.CategoryCountResult, error) {
	const query = `
	SELECT category, COUNT(*) AS count
	FROM components
	GROUP BY category
	ORDER BY count DESC, category ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.GetCategoryDistribution: %w", err)
	}
	defer rows.Close()

	var results []repository.CategoryCountResult
	for rows.Next() {
		var row repository.CategoryCountResult
		if err := rows.Scan(&row.Category, &row.Count); err != nil {
			return nil, fmt.Errorf("reports.GetCategoryDistribution scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
