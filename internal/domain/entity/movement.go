package entity

import "time"

// Tipos de movimiento del ledger.
const (
	MovementTypeInward  = "inward"  // entrada (recepción)
	MovementTypeOutward = "outward" // salida (consumo)
)

// IsValidMovementType indica si el tipo pertenece al enum del ledger.
func IsValidMovementType(t string) bool {
	return t == MovementTypeInward || t == MovementTypeOutward
}

// Movement representa una transacción del ledger de inventario. El ledger es
// append-only: una vez creado el movimiento es inmutable, sin ruta de edición
// ni borrado.
type Movement struct {
	ID          string
	ComponentID string
	Type        string // inward | outward
	Quantity    int64  // invariante: > 0
	UserID      string
	Username    string
	Reason      string // obligatorio, ej. "Production use", "Purchase order #1234"
	Project     string // opcional, etiqueta de proyecto
	CreatedAt   time.Time
}
