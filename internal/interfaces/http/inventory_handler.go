package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/Gloweldev/ArximiaBackend/internal/application/dto"
	"github.com/Gloweldev/ArximiaBackend/internal/application/expenses"
	"github.com/Gloweldev/ArximiaBackend/internal/application/inventory"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP de inventario y movimientos
// (protegido). El registro de compra con purchase_price genera además un
// gasto derivado del movimiento.
type InventoryHandler struct {
	engine    *inventory.RegisterMovementUseCase
	query     *inventory.QueryUseCase
	expenseUC  *expenses.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(engine *inventory.RegisterMovementUseCase, query *inventory.QueryUseCase, expenseUC *expenses.UseCase) *InventoryHandler {
	return &InventoryHandler{engine: engine, query: query, expenseUC: expenseUC}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  Aplica un movimiento (venta, uso, compra, ajuste) sobre el stock
//
//	del par (producto, club). Para compras con purchase_price se registra
//	además el gasto quantity × purchase_price.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, club_id, type, unit, quantity"
// @Success      201   {object}  dto.InventoryRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/inventory/movement [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rec, err := h.engine.Apply(c.Context(), inventory.MovementInput{
		ProductID:   in.ProductID,
		ClubID:      in.ClubID,
		Type:        in.Type,
		Unit:        in.Unit,
		Quantity:    in.Quantity,
		Description: in.Description,
		UserID:      userID,
	})
	if err != nil {
		return mapDomainError(c, err)
	}

	if in.Type == entity.MovementCompra && in.PurchasePrice != nil && in.PurchasePrice.IsPositive() {
		// El movimiento ya quedó firme; el gasto es un registro contable aparte.
		if _, err := h.expenseUC.RecordPurchaseFromMovement(c.Context(), in.ClubID, in.ProductID, userID, in.Description, in.Quantity, *in.PurchasePrice); err != nil {
			log.Warn().Err(err).
				Str("product_id", in.ProductID).
				Str("club_id", in.ClubID).
				Msg("gasto de compra no registrado")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(toInventoryRecordResponse(rec, false))
}

// GetRecord godoc
// @Summary      Obtener (o inicializar) el registro de inventario
// @Description  Devuelve el registro del par (producto, club); si no existe lo
//
//	crea con saldos en cero y lo marca con created:true.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "producto"
// @Param        clubId     path  string  true  "club"
// @Success      200  {object}  dto.InventoryRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{productId}/club/{clubId} [get]
func (h *InventoryHandler) GetRecord(c *fiber.Ctx) error {
	rec, created, err := h.query.GetOrCreate(c.Context(), c.Params("productId"), c.Params("clubId"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(toInventoryRecordResponse(rec, created))
}

// ListByClub godoc
// @Summary      Inventario de un club
// @Description  Lista el stock del club con estado critical/low/normal por eje,
//
//	calculado contra el inventario ideal de la cuenta.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        clubId  path  string  true  "club"
// @Success      200  {array}  dto.StockItemResponse
// @Router       /api/inventory/club/{clubId} [get]
func (h *InventoryHandler) ListByClub(c *fiber.Ctx) error {
	items, err := h.query.ListByClub(c.Context(), c.Params("clubId"), GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, it := range items {
		resp := dto.StockItemResponse{
			Record:         toInventoryRecordResponse(it.Record, false),
			SealedStatus:   string(it.SealedStatus),
			PortionsStatus: string(it.PortionsStatus),
		}
		if it.Product != nil {
			p := toProductResponse(it.Product)
			resp.Product = &p
		}
		out = append(out, resp)
	}
	return c.JSON(out)
}

// MovementHistory historial de movimientos de un producto, descendente,
// con rango opcional (?from, ?to) y paginación (?limit, ?offset).
func (h *InventoryHandler) MovementHistory(c *fiber.Ctx) error {
	from := parseTimeQuery(c.Query("from"))
	to := parseTimeQuery(c.Query("to"))
	movs, err := h.query.MovementHistory(c.Context(), c.Params("productId"), from, to, c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			ClubID:      m.ClubID,
			Type:        m.Type,
			Unit:        m.Unit,
			Quantity:    m.Quantity,
			Description: m.Description,
			UserID:      m.UserID,
			Date:        m.Date,
		})
	}
	return c.JSON(out)
}

// Rebuild godoc
// @Summary      Reconstruir saldos desde el log
// @Description  Repone los saldos cacheados del par (producto, club) replegando
//
//	su log completo de movimientos. Operación de reparación.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RebuildRequest  true  "product_id, club_id"
// @Success      200   {object}  dto.InventoryRecordResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/rebuild [post]
func (h *InventoryHandler) Rebuild(c *fiber.Ctx) error {
	var in dto.RebuildRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rec, err := h.engine.RebuildFromLog(c.Context(), in.ProductID, in.ClubID)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(toInventoryRecordResponse(rec, false))
}

func toInventoryRecordResponse(rec *entity.InventoryRecord, created bool) dto.InventoryRecordResponse {
	return dto.InventoryRecordResponse{
		ID:        rec.ID,
		ProductID: rec.ProductID,
		ClubID:    rec.ClubID,
		Sealed:    rec.Sealed,
		Preparation: dto.PreparationDTO{
			Units:           rec.Preparation.Units,
			PortionsPerUnit: rec.Preparation.PortionsPerUnit,
			CurrentPortions: rec.Preparation.CurrentPortions,
			PortionPrice:    rec.Preparation.PortionPrice,
			PortionSize:     rec.Preparation.PortionSize,
		},
		UpdatedAt: rec.UpdatedAt,
		Created:   created,
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		ClubID:        p.ClubID,
		Type:          p.Type,
		Name:          p.Name,
		Brand:         p.Brand,
		Category:      p.Category,
		Flavor:        p.Flavor,
		ImageURL:      p.ImageURL,
		Portions:      p.Portions,
		PortionSize:   p.PortionSize,
		PortionPrice:  p.PortionPrice,
		SalePrice:     p.SalePrice,
		PurchasePrice: p.PurchasePrice,
		Archived:      p.Archived,
		CreatedAt:     p.CreatedAt,
	}
}

// parseTimeQuery acepta RFC3339 o fecha simple (2006-01-02). Devuelve nil si
// el parámetro está vacío o malformado.
func parseTimeQuery(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	return nil
}
