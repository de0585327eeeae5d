package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Gloweldev/ArximiaBackend/internal/application/analytics"
	"github.com/Gloweldev/ArximiaBackend/internal/application/dto"
)

// DashboardHandler maneja las peticiones HTTP del dashboard (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// KPIs godoc
// @Summary      KPIs del club
// @Description  Ventas, gastos y utilidad del mes en curso contra el mes
//
//	anterior, más el inventario en estado crítico o bajo.
//
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        club_id  query  string  true  "club"
// @Success      200  {object}  dto.DashboardKPIsResponse
// @Router       /api/dashboard/kpis [get]
func (h *DashboardHandler) KPIs(c *fiber.Ctx) error {
	clubID := c.Query("club_id")
	if clubID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "club_id requerido"})
	}
	kpis, err := h.uc.KPIs(c.Context(), clubID, GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(kpis)
}
