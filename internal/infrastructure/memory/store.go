// Package memory implementa los puertos de persistencia sobre estado en memoria.
// Se usa en tests y para correr la API sin PostgreSQL. La atomicidad del motor
// de movimientos se garantiza con un lock de escritura sobre el Store completo:
// los escritores se serializan y ningún lector observa el ledger y la cantidad
// a medio actualizar.
package memory

import (
	"sync"

	"github.com/jhoicas/lims-api/internal/domain/entity"
)

// Store estado compartido entre los repositorios en memoria.
type Store struct {
	mu         sync.RWMutex
	components map[string]*entity.Component
	order      []string // orden de inserción del catálogo
	movements  []*entity.Movement
	users      map[string]*entity.User
	reads      map[string]bool // entity.NotificationKey -> leído
}

// NewStore construye un Store vacío.
func NewStore() *Store {
	return &Store{
		components: make(map[string]*entity.Component),
		users:      make(map[string]*entity.User),
		reads:      make(map[string]bool),
	}
}

// rlock toma el lock de lectura salvo dentro de una transacción (el TxRunner ya
// sostiene el lock de escritura). Devuelve la función de unlock.
func (s *Store) rlock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Store) lock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// snapshot copia el estado mutable por el motor de movimientos (componentes y
// ledger) para poder deshacer una transacción fallida.
func (s *Store) snapshot() (map[string]*entity.Component, []string, []*entity.Movement) {
	components := make(map[string]*entity.Component, len(s.components))
	for id, c := range s.components {
		components[id] = cloneComponent(c)
	}
	order := append([]string(nil), s.order...)
	movements := append([]*entity.Movement(nil), s.movements...)
	return components, order, movements
}

func (s *Store) restore(components map[string]*entity.Component, order []string, movements []*entity.Movement) {
	s.components = components
	s.order = order
	s.movements = movements
}

// cloneComponent copia la entidad para que los llamadores no muten el estado
// interno del Store a través de los punteros devueltos.
func cloneComponent(c *entity.Component) *entity.Component {
	if c == nil {
		return nil
	}
	out := *c
	if c.LastMovement != nil {
		t := *c.LastMovement
		out.LastMovement = &t
	}
	return &out
}

func cloneMovement(m *entity.Movement) *entity.Movement {
	if m == nil {
		return nil
	}
	out := *m
	return &out
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	out := *u
	return &out
}
