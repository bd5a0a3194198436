package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/tu-usuario/cantina-api/internal/application/analytics"
	"github.com/tu-usuario/cantina-api/internal/application/dto"
)

// DashboardHandler maneja el endpoint del panel principal.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los contadores del panel y la lista de stock bajo.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_products, total_movements, low_stock).
// No requiere parámetros.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
