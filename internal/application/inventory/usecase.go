package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/lims-api/internal/domain"
	"github.com/jhoicas/lims-api/internal/domain/entity"
	"github.com/jhoicas/lims-api/internal/domain/repository"
)

// RecordMovementUseCase registra movimientos de inventario de forma transaccional
// (inward, outward) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// Es la única vía por la que cambia Component.Quantity.
type RecordMovementUseCase struct {
	txRunner      TxRunner
	componentRepo repository.ComponentRepository
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(txRunner TxRunner, componentRepo repository.ComponentRepository) *RecordMovementUseCase {
	return &RecordMovementUseCase{txRunner: txRunner, componentRepo: componentRepo}
}

// MovementInput entrada para registrar un movimiento.
type MovementInput struct {
	ComponentID string
	Type        string
	Quantity    int64
	UserID      string
	Username    string
	Reason      string
	Project     string
}

// RecordMovement valida la entrada, inicia una transacción, bloquea la fila del
// componente, verifica la precondición de salida (stock suficiente) y persiste
// el movimiento junto con la nueva cantidad. Commit si todo ok, Rollback si algo
// falla: ningún lector observa el ledger y la cantidad a medio actualizar.
//
// Errores: ErrInvalidInput (cantidad <= 0, tipo desconocido, motivo vacío),
// ErrNotFound (componente inexistente), InsufficientStockError (salida mayor al
// stock disponible; no se toca ningún estado).
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	if !entity.IsValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(input.Reason) == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:          uuid.New().String(),
		ComponentID: input.ComponentID,
		Type:        input.Type,
		Quantity:    input.Quantity,
		UserID:      input.UserID,
		Username:    input.Username,
		Reason:      strings.TrimSpace(input.Reason),
		Project:     input.Project,
		CreatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		componentRepo repository.ComponentRepository,
	) error {
		// Bloquea la fila del componente para serializar el check-then-act:
		// dos salidas concurrentes sobre el mismo componente nunca se intercalan.
		component, err := componentRepo.GetForUpdate(input.ComponentID)
		if err != nil {
			return err
		}
		if component == nil {
			return domain.ErrNotFound
		}

		switch input.Type {
		case entity.MovementTypeOutward:
			if component.Quantity < input.Quantity {
				return &domain.InsufficientStockError{
					Available: component.Quantity,
					Requested: input.Quantity,
				}
			}
			component.Quantity -= input.Quantity
		case entity.MovementTypeInward:
			component.Quantity += input.Quantity
		}

		if err := componentRepo.UpdateStock(component.ID, component.Quantity, now); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}
