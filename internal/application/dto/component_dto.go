package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateComponentRequest entrada para crear un componente del catálogo.
// Quantity es el stock inicial; después solo cambia vía movimientos.
type CreateComponentRequest struct {
	Name                 string          `json:"name" validate:"required,min=1,max=200"`
	Manufacturer         string          `json:"manufacturer" validate:"required"`
	PartNumber           string          `json:"part_number" validate:"required,min=1,max=100"`
	Description          string          `json:"description" validate:"required"`
	Category             string          `json:"category" validate:"required"`
	Location             string          `json:"location" validate:"required"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	Quantity             int64           `json:"quantity" validate:"min=0"`
	CriticalLowThreshold int64           `json:"critical_low_threshold" validate:"min=0"`
	DatasheetURL         string          `json:"datasheet_url"`
}

// UpdateComponentRequest entrada para actualizar campos descriptivos.
// Sin Quantity ni LastMovement: esos se manejan vía movimientos.
type UpdateComponentRequest struct {
	Name                 *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Manufacturer         *string          `json:"manufacturer"`
	PartNumber           *string          `json:"part_number"`
	Description          *string          `json:"description"`
	Category             *string          `json:"category"`
	Location             *string          `json:"location"`
	UnitPrice            *decimal.Decimal `json:"unit_price"`
	CriticalLowThreshold *int64           `json:"critical_low_threshold"`
	DatasheetURL         *string          `json:"datasheet_url"`
}

// SearchComponentsRequest query params de GET /api/components.
type SearchComponentsRequest struct {
	Query       string `query:"query"`
	Category    string `query:"category"`
	Location    string `query:"location"`
	MinQuantity *int64 `query:"min_quantity"`
	MaxQuantity *int64 `query:"max_quantity"`
}

// ComponentResponse salida de un componente. StockLevel es derivado
// (critical | low | good), no persistido.
type ComponentResponse struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Manufacturer         string          `json:"manufacturer"`
	PartNumber           string          `json:"part_number"`
	Description          string          `json:"description"`
	Category             string          `json:"category"`
	Location             string          `json:"location"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	Quantity             int64           `json:"quantity"`
	CriticalLowThreshold int64           `json:"critical_low_threshold"`
	DatasheetURL         string          `json:"datasheet_url,omitempty"`
	StockLevel           string          `json:"stock_level"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
	LastMovement         *time.Time      `json:"last_movement,omitempty"`
}

// ComponentListResponse lista de componentes.
type ComponentListResponse struct {
	Items []ComponentResponse `json:"items"`
	Total int                 `json:"total"`
}
