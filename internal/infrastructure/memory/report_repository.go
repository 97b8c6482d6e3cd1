package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/lims-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo agregados del dashboard computados sobre el Store.
type ReportRepo struct {
	store *Store
}

// NewReportRepository construye el adaptador sobre el Store.
func NewReportRepository(store *Store) *ReportRepo {
	return &ReportRepo{store: store}
}

// GetMonthlyMovements agrega el ledger por mes para el tipo dado, últimos
// months meses, orden cronológico ascendente.
func (r *ReportRepo) GetMonthlyMovements(
	ctx context.Context,
	movementType string,
	months int,
) ([]repository.MonthlyMovementResult, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	now := time.Now()
	cutoff := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(months - 1), 0)

	byMonth := make(map[string]*repository.MonthlyMovementResult)
	for _, m := range r.store.movements {
		if m.Type != movementType || m.CreatedAt.Before(cutoff) {
			continue
		}
		month := m.CreatedAt.Format("2006-01")
		agg, ok := byMonth[month]
		if !ok {
			agg = &repository.MonthlyMovementResult{Month: month}
			byMonth[month] = agg
		}
		agg.Count++
		agg.Quantity += m.Quantity
	}

	results := make([]repository.MonthlyMovementResult, 0, len(byMonth))
	for _, agg := range byMonth {
		results = append(results, *agg)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Month < results[j].Month })
	return results, nil
}

// GetCategoryDistribution cuenta componentes por categoría, mayor primero.
func (r *ReportRepo) GetCategoryDistribution(ctx context.Context) ([]repository.CategoryCountResult, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	counts := make(map[string]int64)
	for _, c := range r.store.components {
		counts[c.Category]++
	}
	results := make([]repository.CategoryCountResult, 0, len(counts))
	for category, count := range counts {
		results = append(results, repository.CategoryCountResult{Category: category, Count: count})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].Category < results[j].Category
	})
	return results, nil
}
