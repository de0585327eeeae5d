package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Gloweldev/ArximiaBackend/internal/application/dto"
	"github.com/Gloweldev/ArximiaBackend/internal/application/expenses"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
)

// ExpenseHandler maneja las peticiones HTTP de gastos (protegido).
type ExpenseHandler struct {
	uc *expenses.UseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *expenses.UseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar gasto
// @Description  Para category "purchase" aplica primero el movimiento de compra
//
//	sobre el inventario y luego registra el gasto.
//
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterExpenseRequest  true  "club_id, category, amount"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	expense, err := h.uc.Register(c.Context(), GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toExpenseResponse(expense))
}

// List gastos de un club con rango opcional (?from, ?to).
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	clubID := c.Query("club_id")
	if clubID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "club_id requerido"})
	}
	from := parseTimeQuery(c.Query("from"))
	to := parseTimeQuery(c.Query("to"))
	list, err := h.uc.ListByClub(c.Context(), clubID, from, to)
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toExpenseResponse(e))
	}
	return c.JSON(out)
}

// KPIs totales del mes en curso contra el anterior.
func (h *ExpenseHandler) KPIs(c *fiber.Ctx) error {
	clubID := c.Query("club_id")
	if clubID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "club_id requerido"})
	}
	kpis, err := h.uc.MonthlyKPIs(c.Context(), clubID, time.Now())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(kpis)
}

func toExpenseResponse(e *entity.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          e.ID,
		ClubID:      e.ClubID,
		ProductID:   e.ProductID,
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
		UserID:      e.UserID,
		Date:        e.Date,
	}
}
