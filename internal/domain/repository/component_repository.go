package repository

import (
	"time"

	"github.com/jhoicas/lims-api/internal/domain/entity"
)

// SearchFilters filtros tipados para la búsqueda de componentes. Todos los
// campos son opcionales; sin filtros la búsqueda devuelve el catálogo completo
// en orden de inserción.
type SearchFilters struct {
	Query       string // substring sobre name, part_number, manufacturer y description (case-insensitive)
	Category    string // match exacto contra el enum de categorías
	Location    string // substring sobre location
	MinQuantity *int64 // rango inclusivo de cantidad
	MaxQuantity *int64
}

// ComponentRepository puerto de persistencia del catálogo de componentes.
//
// Por contrato, Quantity y LastMovement solo se tocan con UpdateStock y desde
// el motor de movimientos (dentro de su transacción); Update ignora ambos campos.
type ComponentRepository interface {
	Create(component *entity.Component) error
	GetByID(id string) (*entity.Component, error)
	// GetForUpdate obtiene el componente bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción del TxRunner.
	GetForUpdate(id string) (*entity.Component, error)
	Update(component *entity.Component) error
	// UpdateStock fija cantidad y último movimiento (uso exclusivo del motor de movimientos).
	UpdateStock(id string, quantity int64, lastMovement time.Time) error
	Search(filters SearchFilters) ([]*entity.Component, error)
	Delete(id string) error
}
