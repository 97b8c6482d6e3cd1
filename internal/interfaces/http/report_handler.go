package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lims-api/internal/application/dto"
	"github.com/jhoicas/lims-api/internal/application/reports"
)

// ReportHandler maneja el dashboard y la exportación PDF (protegido).
type ReportHandler struct {
	dashboard *reports.DashboardUseCase
	pdf       *reports.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(dashboard *reports.DashboardUseCase, pdf *reports.PDFUseCase) *ReportHandler {
	return &ReportHandler{dashboard: dashboard, pdf: pdf}
}

// Dashboard godoc
// @Summary      Métricas del dashboard de inventario
// @Description  Totales del catálogo, conteos de alerta, valor total y series mensuales del ledger.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardMetricsDTO
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboard.GetMetrics(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// InventoryPDF godoc
// @Summary      Exportar inventario a PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/inventory.pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	data, err := h.pdf.GenerateInventoryReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("inventario-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
