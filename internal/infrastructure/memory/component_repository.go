package memory

import (
	"strings"
	"time"

	"github.com/jhoicas/lims-api/internal/domain/entity"
	"github.com/jhoicas/lims-api/internal/domain/repository"
)

var _ repository.ComponentRepository = (*ComponentRepo)(nil)

// ComponentRepo catálogo en memoria. inTx marca los repos creados por el
// TxRunner, que ya sostiene el lock de escritura del Store.
type ComponentRepo struct {
	store *Store
	inTx  bool
}

// NewComponentRepository construye el adaptador sobre el Store.
func NewComponentRepository(store *Store) *ComponentRepo {
	return &ComponentRepo{store: store}
}

// Create persiste un componente y lo agrega al orden de inserción.
func (r *ComponentRepo) Create(c *entity.Component) error {
	unlock := r.store.lock(r.inTx)
	defer unlock()
	r.store.components[c.ID] = cloneComponent(c)
	r.store.order = append(r.store.order, c.ID)
	return nil
}

// GetByID devuelve una copia del componente, o nil, nil si no existe.
func (r *ComponentRepo) GetByID(id string) (*entity.Component, error) {
	unlock := r.store.rlock(r.inTx)
	defer unlock()
	return cloneComponent(r.store.components[id]), nil
}

// GetForUpdate equivale a GetByID: la exclusión la da el lock del TxRunner.
func (r *ComponentRepo) GetForUpdate(id string) (*entity.Component, error) {
	return r.GetByID(id)
}

// Update reemplaza los campos descriptivos; conserva quantity y last_movement
// del estado actual, igual que el adaptador PostgreSQL.
func (r *ComponentRepo) Update(c *entity.Component) error {
	unlock := r.store.lock(r.inTx)
	defer unlock()
	current, ok := r.store.components[c.ID]
	if !ok {
		return nil
	}
	updated := cloneComponent(c)
	updated.Quantity = current.Quantity
	updated.LastMovement = current.LastMovement
	r.store.components[c.ID] = updated
	return nil
}

// UpdateStock fija cantidad y último movimiento.
func (r *ComponentRepo) UpdateStock(id string, quantity int64, lastMovement time.Time) error {
	unlock := r.store.lock(r.inTx)
	defer unlock()
	c, ok := r.store.components[id]
	if !ok {
		return nil
	}
	c.Quantity = quantity
	t := lastMovement
	c.LastMovement = &t
	c.UpdatedAt = lastMovement
	return nil
}

// Search filtra el catálogo en orden de inserción.
func (r *ComponentRepo) Search(filters repository.SearchFilters) ([]*entity.Component, error) {
	unlock := r.store.rlock(r.inTx)
	defer unlock()
	var list []*entity.Component
	for _, id := range r.store.order {
		c, ok := r.store.components[id]
		if !ok {
			continue
		}
		if matches(c, filters) {
			list = append(list, cloneComponent(c))
		}
	}
	return list, nil
}

// Delete elimina el componente del catálogo (el ledger queda intacto).
func (r *ComponentRepo) Delete(id string) error {
	unlock := r.store.lock(r.inTx)
	defer unlock()
	delete(r.store.components, id)
	for i, oid := range r.store.order {
		if oid == id {
			r.store.order = append(r.store.order[:i], r.store.order[i+1:]...)
			break
		}
	}
	return nil
}

func matches(c *entity.Component, f repository.SearchFilters) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.PartNumber), q) &&
			!strings.Contains(strings.ToLower(c.Manufacturer), q) &&
			!strings.Contains(strings.ToLower(c.Description), q) {
			return false
		}
	}
	if f.Category != "" && c.Category != f.Category {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(c.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.MinQuantity != nil && c.Quantity < *f.MinQuantity {
		return false
	}
	if f.MaxQuantity != nil && c.Quantity > *f.MaxQuantity {
		return false
	}
	return true
}
