package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Gloweldev/ArximiaBackend/internal/application/dto"
	"github.com/Gloweldev/ArximiaBackend/internal/application/usecase"
)

// ClubHandler maneja las peticiones HTTP de clubs (protegido).
type ClubHandler struct {
	uc *usecase.ClubUseCase
}

// NewClubHandler construye el handler.
func NewClubHandler(uc *usecase.ClubUseCase) *ClubHandler {
	return &ClubHandler{uc: uc}
}

// Create godoc
// @Summary      Crear club
// @Description  Crea un club si la suscripción del dueño lo permite.
// @Tags         clubs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClubRequest  true  "name y datos del club"
// @Success      201   {object}  dto.ClubResponse
// @Failure      409   {object}  dto.ErrorResponse  "límite del plan alcanzado"
// @Router       /api/clubs [post]
func (h *ClubHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClubRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	club, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(club)
}

// List clubs del dueño autenticado.
func (h *ClubHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListByOwner(GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(list)
}

// GetByID obtiene un club del dueño.
func (h *ClubHandler) GetByID(c *fiber.Ctx) error {
	club, err := h.uc.GetByID(c.Params("id"), GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(club)
}

// Update edita un club del dueño.
func (h *ClubHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClubRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	club, err := h.uc.Update(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(club)
}
