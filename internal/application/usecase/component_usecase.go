package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/lims-api/internal/application/dto"
	"github.com/jhoicas/lims-api/internal/domain"
	"github.com/jhoicas/lims-api/internal/domain/entity"
	"github.com/jhoicas/lims-api/internal/domain/repository"
	"github.com/jhoicas/lims-api/internal/domain/stock"
)

// ComponentUseCase casos de uso CRUD del catálogo. Quantity y LastMovement se
// manejan vía movimientos; aquí solo se tocan campos descriptivos.
type ComponentUseCase struct {
	repo repository.ComponentRepository
}

// NewComponentUseCase construye el caso de uso.
func NewComponentUseCase(repo repository.ComponentRepository) *ComponentUseCase {
	return &ComponentUseCase{repo: repo}
}

// Create crea un componente con su stock inicial.
func (uc *ComponentUseCase) Create(createdBy string, in dto.CreateComponentRequest) (*dto.ComponentResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.PartNumber) == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.CriticalLowThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	component := &entity.Component{
		ID:                   uuid.New().String(),
		Name:                 in.Name,
		Manufacturer:         in.Manufacturer,
		PartNumber:           in.PartNumber,
		Description:          in.Description,
		Category:             in.Category,
		Location:             in.Location,
		UnitPrice:            in.UnitPrice,
		Quantity:             in.Quantity,
		CriticalLowThreshold: in.CriticalLowThreshold,
		DatasheetURL:         in.DatasheetURL,
		CreatedBy:            createdBy,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.repo.Create(component); err != nil {
		return nil, err
	}
	return ToComponentResponse(component), nil
}

// GetByID obtiene un componente por ID. Devuelve nil, nil si no existe.
func (uc *ComponentUseCase) GetByID(id string) (*dto.ComponentResponse, error) {
	component, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, nil
	}
	return ToComponentResponse(component), nil
}

// Update actualiza campos descriptivos. No permite modificar Quantity ni
// LastMovement: esos cambian solo vía el motor de movimientos.
func (uc *ComponentUseCase) Update(id string, in dto.UpdateComponentRequest) (*dto.ComponentResponse, error) {
	component, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, nil
	}
	if in.Name != nil {
		component.Name = *in.Name
	}
	if in.Manufacturer != nil {
		component.Manufacturer = *in.Manufacturer
	}
	if in.PartNumber != nil {
		component.PartNumber = *in.PartNumber
	}
	if in.Description != nil {
		component.Description = *in.Description
	}
	if in.Category != nil {
		if !entity.IsValidCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		component.Category = *in.Category
	}
	if in.Location != nil {
		component.Location = *in.Location
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		component.UnitPrice = *in.UnitPrice
	}
	if in.CriticalLowThreshold != nil {
		if *in.CriticalLowThreshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		component.CriticalLowThreshold = *in.CriticalLowThreshold
	}
	if in.DatasheetURL != nil {
		component.DatasheetURL = *in.DatasheetURL
	}
	component.UpdatedAt = time.Now()
	if err := uc.repo.Update(component); err != nil {
		return nil, err
	}
	return ToComponentResponse(component), nil
}

// Search busca componentes con filtros opcionales. Sin filtros devuelve el
// catálogo completo en orden de inserción.
func (uc *ComponentUseCase) Search(in dto.SearchComponentsRequest) (*dto.ComponentListResponse, error) {
	list, err := uc.repo.Search(repository.SearchFilters{
		Query:       in.Query,
		Category:    in.Category,
		Location:    in.Location,
		MinQuantity: in.MinQuantity,
		MaxQuantity: in.MaxQuantity,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ComponentResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *ToComponentResponse(c))
	}
	return &dto.ComponentListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina un componente (hard delete). Su historial en el ledger queda
// intacto, con la referencia huérfana.
func (uc *ComponentUseCase) Delete(id string) error {
	component, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if component == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ToComponentResponse mapea la entidad al DTO de salida, con el nivel de stock derivado.
func ToComponentResponse(c *entity.Component) *dto.ComponentResponse {
	if c == nil {
		return nil
	}
	return &dto.ComponentResponse{
		ID:                   c.ID,
		Name:                 c.Name,
		Manufacturer:         c.Manufacturer,
		PartNumber:           c.PartNumber,
		Description:          c.Description,
		Category:             c.Category,
		Location:             c.Location,
		UnitPrice:            c.UnitPrice,
		Quantity:             c.Quantity,
		CriticalLowThreshold: c.CriticalLowThreshold,
		DatasheetURL:         c.DatasheetURL,
		StockLevel:           stock.LowStockCheck(c.Quantity, c.CriticalLowThreshold),
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
		LastMovement:         c.LastMovement,
	}
}
