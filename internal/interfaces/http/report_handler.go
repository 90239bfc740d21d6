package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-meias/internal/application/catalog"
)

// ReportHandler relatórios en PDF (protegido).
type ReportHandler struct {
	uc *catalog.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *catalog.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockPDF godoc
// @Summary      Relatório de estoque en PDF
// @Description  Generado a partir del catálogo en memoria, sin llamar al backend.
// @Tags         relatorios
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/relatorios/estoque.pdf [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.Download(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
