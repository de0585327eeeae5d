package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Gloweldev/ArximiaBackend/internal/application/dto"
	"github.com/Gloweldev/ArximiaBackend/internal/application/sales"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
)

// SaleHandler maneja las peticiones HTTP de ventas (protegido).
type SaleHandler struct {
	uc *sales.UseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.UseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar venta
// @Description  Descuenta stock línea a línea a través del motor de movimientos.
//
//	Si una línea no tiene stock suficiente la venta no se persiste y la
//	respuesta identifica el producto culpable.
//
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSaleRequest  true  "club_id, item_groups, total"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente en una línea"
// @Router       /api/sales [post]
func (h *SaleHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.uc.Register(c.Context(), GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSaleResponse(sale))
}

// List ventas de un club con rango opcional (?from, ?to) y paginación.
func (h *SaleHandler) List(c *fiber.Ctx) error {
	clubID := c.Query("club_id")
	if clubID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "club_id requerido"})
	}
	from := parseTimeQuery(c.Query("from"))
	to := parseTimeQuery(c.Query("to"))
	list, err := h.uc.ListByClub(c.Context(), clubID, from, to, c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s))
	}
	return c.JSON(out)
}

// GetByID obtiene una venta puntual.
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	if sale == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(toSaleResponse(sale))
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	groups := make([]dto.SaleGroupResponse, 0, len(s.ItemGroups))
	for _, g := range s.ItemGroups {
		items := make([]dto.SaleItemResponse, 0, len(g.Items))
		for _, it := range g.Items {
			items = append(items, dto.SaleItemResponse{
				ProductID:       it.ProductID,
				Type:            it.Type,
				Quantity:        it.Quantity,
				UnitPrice:       it.UnitPrice,
				Portions:        it.Portions,
				PricePerPortion: it.PricePerPortion,
				CustomPrice:     it.CustomPrice,
			})
		}
		groups = append(groups, dto.SaleGroupResponse{Name: g.Name, Items: items})
	}
	return dto.SaleResponse{
		ID:         s.ID,
		ClubID:     s.ClubID,
		EmployeeID: s.EmployeeID,
		ClientID:   s.ClientID,
		ItemGroups: groups,
		Total:      s.Total,
		Status:     s.Status,
		CreatedAt:  s.CreatedAt,
	}
}
