package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lims-api/internal/application/alerts"
	"github.com/jhoicas/lims-api/internal/application/dto"
	"github.com/jhoicas/lims-api/internal/domain"
)

// NotificationHandler maneja las notificaciones derivadas del catálogo (protegido).
type NotificationHandler struct {
	uc *alerts.AlertsUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *alerts.AlertsUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Listar notificaciones
// @Description  Recalcula las señales de stock bajo y stock antiguo a partir del estado actual del catálogo.
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.DeriveNotifications(time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.NotificationResponse{
			ID:            n.ID,
			Kind:          n.Kind,
			ComponentID:   n.ComponentID,
			ComponentName: n.ComponentName,
			Message:       n.Message,
			Timestamp:     n.Timestamp,
			Read:          n.Read,
		})
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Marcar notificación leída/no leída
// @Tags         notifications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        kind          path  string  true  "low_stock | old_stock"
// @Param        component_id  path  string  true  "ID del componente"
// @Param        body          body  dto.MarkNotificationReadRequest  true  "read"
// @Success      204   "sin contenido"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/notifications/{kind}/{component_id}/read [patch]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	kind := c.Params("kind")
	componentID := c.Params("component_id")
	var in dto.MarkNotificationReadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.MarkRead(kind, componentID, in.Read); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kind debe ser low_stock u old_stock"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "componente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
