package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Gloweldev/ArximiaBackend/internal/application/dto"
	"github.com/Gloweldev/ArximiaBackend/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP del catálogo (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Description  Da de alta un producto del catálogo con su registro de inventario en cero.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "club_id, type, name, category y precios"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// List productos de un club. ?include_archived=true incluye archivados.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	clubID := c.Query("club_id")
	if clubID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "club_id requerido"})
	}
	list, err := h.uc.ListByClub(clubID, c.QueryBool("include_archived"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(list)
}

// Search godoc
// @Summary      Buscar productos por nombre
// @Description  Búsqueda por prefijo, insensible a mayúsculas y acentos.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        club_id  query  string  true  "club"
// @Param        q        query  string  true  "prefijo de búsqueda"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	clubID := c.Query("club_id")
	query := c.Query("q")
	if clubID == "" || query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "club_id y q requeridos"})
	}
	list, err := h.uc.Search(clubID, query)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(list)
}

// GetByID obtiene un producto.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(product)
}

// Update edita un producto.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(product)
}

// Archive marca el borrado suave del producto.
func (h *ProductHandler) Archive(c *fiber.Ctx) error {
	if err := h.uc.SetArchived(c.Params("id"), true); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "producto archivado"})
}

// Restore reactiva un producto archivado.
func (h *ProductHandler) Restore(c *fiber.Ctx) error {
	if err := h.uc.SetArchived(c.Params("id"), false); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "producto restaurado"})
}
