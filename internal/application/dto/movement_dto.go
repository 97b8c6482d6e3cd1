package dto

import "time"

// RecordMovementRequest body para POST /api/inventory/movements.
type RecordMovementRequest struct {
	ComponentID string `json:"component_id" validate:"required"`
	Type        string `json:"type" validate:"required"` // inward | outward
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
	Reason      string `json:"reason" validate:"required"`
	Project     string `json:"project,omitempty"`
}

// MovementResponse salida de un movimiento del ledger.
type MovementResponse struct {
	ID          string    `json:"id"`
	ComponentID string    `json:"component_id"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	Reason      string    `json:"reason"`
	Project     string    `json:"project,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
