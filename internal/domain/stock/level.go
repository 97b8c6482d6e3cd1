// Package stock contiene las reglas puras de nivel de inventario (servicio de
// dominio, sin dependencias externas ni efectos secundarios).
package stock

import "time"

// Niveles derivados de comparar cantidad contra el umbral crítico.
const (
	LevelCritical = "critical" // quantity <= umbral
	LevelLow      = "low"      // quantity <= 2 * umbral
	LevelGood     = "good"
)

// LowStockCheck clasifica el nivel de stock de un componente. Determinista:
//
//	quantity <= threshold     → critical
//	quantity <= 2*threshold   → low
//	en otro caso              → good
func LowStockCheck(quantity, criticalLowThreshold int64) string {
	switch {
	case quantity <= criticalLowThreshold:
		return LevelCritical
	case quantity <= 2*criticalLowThreshold:
		return LevelLow
	default:
		return LevelGood
	}
}

// StaleStockCheck indica si el componente lleva más de windowDays sin movimientos.
// La referencia es el último movimiento o, si nunca hubo, la fecha de creación.
func StaleStockCheck(lastMovement *time.Time, createdAt, now time.Time, windowDays int) bool {
	ref := createdAt
	if lastMovement != nil {
		ref = *lastMovement
	}
	return now.Sub(ref) > time.Duration(windowDays)*24*time.Hour
}
