package inventory

import (
	"context"

	"github.com/jhoicas/lims-api/internal/application/dto"
	"github.com/jhoicas/lims-api/internal/domain/entity"
)

// RecordMovementFromRequest adapta el request HTTP al caso de uso
// RecordMovement(ctx, MovementInput). Usar desde handlers que ya tienen
// userID y username del token.
func (uc *RecordMovementUseCase) RecordMovementFromRequest(
	ctx context.Context,
	userID, username string,
	in dto.RecordMovementRequest,
) (*dto.MovementResponse, error) {
	mov, err := uc.RecordMovement(ctx, MovementInput{
		ComponentID: in.ComponentID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		UserID:      userID,
		Username:    username,
		Reason:      in.Reason,
		Project:     in.Project,
	})
	if err != nil {
		return nil, err
	}
	return ToMovementResponse(mov), nil
}

// ToMovementResponse mapea la entidad al DTO de salida.
func ToMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:          m.ID,
		ComponentID: m.ComponentID,
		Type:        m.Type,
		Quantity:    m.Quantity,
		UserID:      m.UserID,
		Username:    m.Username,
		Reason:      m.Reason,
		Project:     m.Project,
		CreatedAt:   m.CreatedAt,
	}
}
