package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jcastro/personas-api/internal/application/dto"
	"github.com/jcastro/personas-api/internal/application/usecase"
	"github.com/jcastro/personas-api/internal/domain"
)

// PersonaHandler expone el registro de personas sobre HTTP.
type PersonaHandler struct {
	uc *usecase.PersonaUseCase
}

// NewPersonaHandler construye el handler del registro.
func NewPersonaHandler(uc *usecase.PersonaUseCase) *PersonaHandler {
	return &PersonaHandler{uc: uc}
}

// Create POST /persona/create — crea la persona con identificaciones y
// contactos en una sola transacción. Los conflictos de unicidad responden 400.
func (h *PersonaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePersonaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return personaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /persona/?skip=0&limit=10&tipo=natural
func (h *PersonaHandler) List(c *fiber.Ctx) error {
	skip, limit := pageParams(c)
	out, err := h.uc.List(skip, limit, c.Query("tipo"))
	if err != nil {
		return personaError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /persona/:id
func (h *PersonaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return personaError(c, err)
	}
	return c.JSON(out)
}

// GetByIdentificacion GET /persona/identificacion/:numero — busca por número
// de identificación activo.
func (h *PersonaHandler) GetByIdentificacion(c *fiber.Ctx) error {
	out, err := h.uc.GetByIdentificacion(c.Params("numero"))
	if err != nil {
		return personaError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /persona/:id — parche parcial sobre la persona y, opcionalmente,
// sus identificaciones.
func (h *PersonaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePersonaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return personaError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /persona/:id — baja lógica con desactivación en cascada.
func (h *PersonaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return personaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// personaError traduce los errores de dominio del registro a respuestas HTTP.
func personaError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "persona no encontrada"})
	case errors.Is(err, domain.ErrIdentificacionExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IDENTIFICACION_EXISTS", Message: "el número de identificación ya está registrado"})
	case errors.Is(err, domain.ErrContactoExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CONTACTO_EXISTS", Message: "el contacto ya está registrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: "datos inválidos para el tipo de persona"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el registro ya existe"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
