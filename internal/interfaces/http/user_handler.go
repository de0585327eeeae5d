package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Gloweldev/ArximiaBackend/internal/application/dto"
	"github.com/Gloweldev/ArximiaBackend/internal/application/usecase"
)

// UserHandler maneja perfil, onboarding y suscripción de la cuenta (protegido).
type UserHandler struct {
	uc *usecase.AccountUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.AccountUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Profile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/me [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	user, err := h.uc.GetProfile(GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(user)
}

// CompleteOnboarding godoc
// @Summary      Completar onboarding
// @Description  Crea el club principal y fija la configuración inicial de la cuenta.
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OnboardingRequest  true  "club_name, display_name, monthly_goal, ideal_stock"
// @Success      200   {object}  dto.UserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/onboarding [post]
func (h *UserHandler) CompleteOnboarding(c *fiber.Ctx) error {
	var in dto.OnboardingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.CompleteOnboarding(GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(user)
}

// UpdateIdealStock cambia el umbral de stock ideal de la cuenta.
func (h *UserHandler) UpdateIdealStock(c *fiber.Ctx) error {
	var in dto.UpdateIdealStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.UpdateIdealStock(GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(user)
}

// ChangePlan godoc
// @Summary      Cambiar plan de suscripción
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePlanRequest  true  "plan, extra_clubs, extra_employees"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/subscription [put]
func (h *UserHandler) ChangePlan(c *fiber.Ctx) error {
	var in dto.ChangePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.ChangePlan(GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(user)
}
