package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías fijas del catálogo de componentes electrónicos.
const (
	CategoryResistors      = "Resistors"
	CategoryCapacitors     = "Capacitors"
	CategoryInductors      = "Inductors"
	CategorySemiconductors = "Semiconductors"
	CategoryICs            = "ICs"
	CategoryConnectors     = "Connectors"
	CategorySensors        = "Sensors"
	CategoryTools          = "Tools"
	CategoryPCBs           = "PCBs"
	CategoryOther          = "Other"
)

// Categories lista las 10 categorías válidas, en el orden que muestra el cliente.
var Categories = []string{
	CategoryResistors, CategoryCapacitors, CategoryInductors, CategorySemiconductors,
	CategoryICs, CategoryConnectors, CategorySensors, CategoryTools, CategoryPCBs,
	CategoryOther,
}

// IsValidCategory indica si la categoría pertenece al enum fijo.
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Component representa un componente electrónico del catálogo del laboratorio.
// Quantity y LastMovement se mutan únicamente vía el motor de movimientos;
// el resto de campos son descriptivos y se editan por CRUD.
type Component struct {
	ID                   string
	Name                 string
	Manufacturer         string
	PartNumber           string
	Description          string
	Category             string
	Location             string // etiqueta de ubicación física, ej. "A1-B2"
	UnitPrice            decimal.Decimal
	Quantity             int64 // invariante: >= 0 en todo momento
	CriticalLowThreshold int64 // invariante: >= 0
	DatasheetURL         string
	CreatedBy            string // UserID del administrador que lo creó
	CreatedAt            time.Time
	UpdatedAt            time.Time
	LastMovement         *time.Time // nil hasta el primer movimiento
}
