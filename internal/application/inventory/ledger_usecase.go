package inventory

import (
	"github.com/jhoicas/lims-api/internal/application/dto"
	"github.com/jhoicas/lims-api/internal/domain/entity"
	"github.com/jhoicas/lims-api/internal/domain/repository"
)

// LedgerUseCase consultas de solo lectura sobre el historial de movimientos.
type LedgerUseCase struct {
	movementRepo repository.MovementRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(movementRepo repository.MovementRepository) *LedgerUseCase {
	return &LedgerUseCase{movementRepo: movementRepo}
}

// ListByComponent historial de un componente, más recientes primero.
// Para un componentID desconocido devuelve lista vacía, no error.
func (uc *LedgerUseCase) ListByComponent(componentID string, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	list, err := uc.movementRepo.ListByComponent(componentID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toMovementList(list, page), nil
}

// ListAll historial completo para reportes, más recientes primero.
func (uc *LedgerUseCase) ListAll(page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	list, err := uc.movementRepo.ListAll(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toMovementList(list, page), nil
}

func toMovementList(list []*entity.Movement, page dto.PageRequest) *dto.MovementListResponse {
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}
