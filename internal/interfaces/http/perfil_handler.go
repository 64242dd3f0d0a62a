package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jcastro/personas-api/internal/application/dto"
	"github.com/jcastro/personas-api/internal/application/usecase"
)

// PerfilHandler expone los perfiles 1:1 (cliente, proveedor, empleado) de una
// persona. Attach responde 201; un segundo attach de la misma clase, 400.
type PerfilHandler struct {
	uc *usecase.PerfilUseCase
}

// NewPerfilHandler construye el handler de perfiles.
func NewPerfilHandler(uc *usecase.PerfilUseCase) *PerfilHandler {
	return &PerfilHandler{uc: uc}
}

// AttachCliente POST /persona/:id/cliente
func (h *PerfilHandler) AttachCliente(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.AttachCliente(c.Context(), c.Params("id"), in)
	if err != nil {
		return personaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateCliente PUT /persona/:id/cliente
func (h *PerfilHandler) UpdateCliente(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.UpdateCliente(c.Context(), c.Params("id"), in)
	if err != nil {
		return personaError(c, err)
	}
	return c.JSON(out)
}

// AttachProveedor POST /persona/:id/proveedor
func (h *PerfilHandler) AttachProveedor(c *fiber.Ctx) error {
	var in dto.ProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.AttachProveedor(c.Context(), c.Params("id"), in)
	if err != nil {
		return personaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateProveedor PUT /persona/:id/proveedor
func (h *PerfilHandler) UpdateProveedor(c *fiber.Ctx) error {
	var in dto.ProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.UpdateProveedor(c.Context(), c.Params("id"), in)
	if err != nil {
		return personaError(c, err)
	}
	return c.JSON(out)
}

// AttachEmpleado POST /persona/:id/empleado
func (h *PerfilHandler) AttachEmpleado(c *fiber.Ctx) error {
	var in dto.EmpleadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.AttachEmpleado(c.Context(), c.Params("id"), in)
	if err != nil {
		return personaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateEmpleado PUT /persona/:id/empleado
func (h *PerfilHandler) UpdateEmpleado(c *fiber.Ctx) error {
	var in dto.EmpleadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.UpdateEmpleado(c.Context(), c.Params("id"), in)
	if err != nil {
		return personaError(c, err)
	}
	return c.JSON(out)
}
