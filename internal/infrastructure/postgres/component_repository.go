package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/lims-api/internal/domain/entity"
	"github.com/jhoicas/lims-api/internal/domain/repository"
)

var _ repository.ComponentRepository = (*ComponentRepo)(nil)

const componentColumns = `id, name, manufacturer, part_number, description, category, location,
		unit_price, quantity, critical_low_threshold, datasheet_url, created_by, created_at, updated_at, last_movement`

// ComponentRepo implementación del puerto ComponentRepository sobre PostgreSQL
// (usable con pool o tx).
type ComponentRepo struct {
	q Querier
}

// NewComponentRepository construye el adaptador de catálogo. Pasar pool o tx (Querier).
func NewComponentRepository(q Querier) *ComponentRepo {
	return &ComponentRepo{q: q}
}

// Create persiste un nuevo componente.
func (r *ComponentRepo) Create(c *entity.Component) error {
	query := `
		INSERT INTO components (id, name, manufacturer, part_number, description, category, location, unit_price, quantity, critical_low_threshold, datasheet_url, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	createdBy := (*string)(nil)
	if c.CreatedBy != "" {
		createdBy = &c.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Manufacturer, c.PartNumber, c.Description, c.Category, c.Location,
		c.UnitPrice, c.Quantity, c.CriticalLowThreshold, c.DatasheetURL, createdBy,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert component: %w", err)
	}
	return nil
}

// GetByID obtiene un componente por ID. Devuelve nil, nil si no existe.
func (r *ComponentRepo) GetByID(id string) (*entity.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get component")
}

// GetForUpdate obtiene el componente bloqueando su fila (SELECT FOR UPDATE).
// Dentro de una transacción serializa los movimientos concurrentes del mismo componente.
func (r *ComponentRepo) GetForUpdate(id string) (*entity.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get component for update")
}

// Update actualiza los campos descriptivos. No toca quantity ni last_movement:
// esos se fijan solo con UpdateStock desde el motor de movimientos.
func (r *ComponentRepo) Update(c *entity.Component) error {
	query := `
		UPDATE components SET name = $2, manufacturer = $3, part_number = $4, description = $5,
			category = $6, location = $7, unit_price = $8, critical_low_threshold = $9,
			datasheet_url = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Manufacturer, c.PartNumber, c.Description, c.Category, c.Location,
		c.UnitPrice, c.CriticalLowThreshold, c.DatasheetURL, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update component: %w", err)
	}
	return nil
}

// UpdateStock fija cantidad y último movimiento (uso exclusivo del motor de movimientos).
func (r *ComponentRepo) UpdateStock(id string, quantity int64, lastMovement time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE components SET quantity = $2, last_movement = $3, updated_at = now() WHERE id = $1`,
		id, quantity, lastMovement,
	)
	if err != nil {
		return fmt.Errorf("update component stock: %w", err)
	}
	return nil
}

// Search busca componentes con filtros opcionales. Sin filtros devuelve el
// catálogo completo en orden de inserción (created_at ascendente).
func (r *ComponentRepo) Search(filters repository.SearchFilters) ([]*entity.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE 1=1`
	args := []any{}
	pos := 1
	if filters.Query != "" {
		query += fmt.Sprintf(
			" AND (name ILIKE $%d OR part_number ILIKE $%d OR manufacturer ILIKE $%d OR description ILIKE $%d)",
			pos, pos, pos, pos)
		args = append(args, "%"+filters.Query+"%")
		pos++
	}
	if filters.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", pos)
		args = append(args, filters.Category)
		pos++
	}
	if filters.Location != "" {
		query += fmt.Sprintf(" AND location ILIKE $%d", pos)
		args = append(args, "%"+filters.Location+"%")
		pos++
	}
	if filters.MinQuantity != nil {
		query += fmt.Sprintf(" AND quantity >= $%d", pos)
		args = append(args, *filters.MinQuantity)
		pos++
	}
	if filters.MaxQuantity != nil {
		query += fmt.Sprintf(" AND quantity <= $%d", pos)
		args = append(args, *filters.MaxQuantity)
		pos++
	}
	query += " ORDER BY created_at ASC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search components: %w", err)
	}
	defer rows.Close()
	var list []*entity.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina un componente por ID (hard delete; el ledger conserva sus movimientos).
func (r *ComponentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM components WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete component: %w", err)
	}
	return nil
}

func (r *ComponentRepo) scanOne(row pgx.Row, op string) (*entity.Component, error) {
	c, err := scanComponent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func scanComponent(row pgx.Row) (*entity.Component, error) {
	var c entity.Component
	var createdBy *string
	if err := row.Scan(
		&c.ID, &c.Name, &c.Manufacturer, &c.PartNumber, &c.Description, &c.Category,
		&c.Location, &c.UnitPrice, &c.Quantity, &c.CriticalLowThreshold, &c.DatasheetURL,
		&createdBy, &c.CreatedAt, &c.UpdatedAt, &c.LastMovement,
	); err != nil {
		return nil, err
	}
	if createdBy != nil {
		c.CreatedBy = *createdBy
	}
	return &c, nil
}
