package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Gloweldev/ArximiaBackend/internal/application/dto"
	"github.com/Gloweldev/ArximiaBackend/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP de clientes (protegido).
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create da de alta un cliente del club.
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	client, err := h.uc.Create(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// List clientes de un club.
func (h *ClientHandler) List(c *fiber.Ctx) error {
	clubID := c.Query("club_id")
	if clubID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "club_id requerido"})
	}
	list, err := h.uc.ListByClub(clubID)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(list)
}

// Update edita un cliente del club.
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	clubID := c.Query("club_id")
	if clubID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "club_id requerido"})
	}
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	client, err := h.uc.Update(c.Params("id"), clubID, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(client)
}

// Delete elimina un cliente del club.
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	clubID := c.Query("club_id")
	if clubID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "club_id requerido"})
	}
	if err := h.uc.Delete(c.Params("id"), clubID); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "cliente eliminado"})
}
