package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Gloweldev/ArximiaBackend/internal/application/dto"
	"github.com/Gloweldev/ArximiaBackend/internal/application/usecase"
)

// EmployeeHandler maneja las peticiones HTTP de empleados (protegido, solo admin).
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// CheckLimit godoc
// @Summary      Verificar límite de empleados
// @Description  Informa si el plan del dueño admite otro empleado.
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EmployeeLimitResponse
// @Router       /api/employees/check-limit [get]
func (h *EmployeeHandler) CheckLimit(c *fiber.Ctx) error {
	resp, err := h.uc.CheckLimit(GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// Create da de alta un empleado si la suscripción lo permite.
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	emp, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(emp)
}

// List empleados del dueño.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListByOwner(GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(list)
}

// Update edita un empleado (incluye activar/desactivar).
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	emp, err := h.uc.Update(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(emp)
}

// Delete elimina un empleado.
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), GetUserID(c)); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "empleado eliminado"})
}
