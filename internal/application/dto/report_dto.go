package dto

import "github.com/shopspring/decimal"

// MonthlyMovementDTO punto de la serie mensual de movimientos.
type MonthlyMovementDTO struct {
	Month    string `json:"month"` // "YYYY-MM"
	Count    int64  `json:"count"`
	Quantity int64  `json:"quantity"`
}

// CategoryCountDTO número de componentes por categoría.
type CategoryCountDTO struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// DashboardMetricsDTO resumen del dashboard de inventario.
type DashboardMetricsDTO struct {
	TotalComponents      int64                `json:"total_components"`
	LowStockCount        int64                `json:"low_stock_count"`
	OldStockCount        int64                `json:"old_stock_count"`
	TotalValue           decimal.Decimal      `json:"total_value"` // Σ quantity × unit_price
	MonthlyInward        []MonthlyMovementDTO `json:"monthly_inward"`
	MonthlyOutward       []MonthlyMovementDTO `json:"monthly_outward"`
	CategoryDistribution []CategoryCountDTO   `json:"category_distribution"`
}
