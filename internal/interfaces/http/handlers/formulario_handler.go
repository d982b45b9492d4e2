package handlers

import (
	"formularios-backend/internal/application/usecases"
	"formularios-backend/internal/interfaces/http/dto"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type FormularioHandler struct {
	formularioUseCase usecases.FormularioUseCase
}

func NewFormularioHandler(formularioUseCase usecases.FormularioUseCase) *FormularioHandler {
	return &FormularioHandler{formularioUseCase}
}

func (h *FormularioHandler) CriarFormulario(c *fiber.Ctx) error {
	var req dto.CriarFormularioRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(c, err)
	}

	formulario := req.ToEntity()
	if err := h.formularioUseCase.CriarFormulario(&formulario); err != nil {
		return tratarErro(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToFormularioResponse(formulario))
}

func (h *FormularioHandler) ListarFormularios(c *fiber.Ctx) error {
	formularios, err := h.formularioUseCase.ListarFormularios()
	if err != nil {
		return tratarErro(c, err)
	}
	return c.JSON(dto.ToFormularioSimplesResponses(formularios))
}

func (h *FormularioHandler) ObterFormulario(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err)
	}

	formulario, err := h.formularioUseCase.ObterFormulario(id)
	if err != nil {
		return tratarErro(c, err)
	}
	return c.JSON(dto.ToFormularioResponse(formulario))
}

func (h *FormularioHandler) AtualizarFormulario(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err)
	}

	var req dto.AtualizarFormularioRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}

	updates, err := req.Updates()
	if err != nil {
		return badRequest(c, err)
	}

	formulario, err := h.formularioUseCase.AtualizarFormulario(id, updates)
	if err != nil {
		return tratarErro(c, err)
	}
	return c.JSON(dto.ToFormularioResponse(formulario))
}

func (h *FormularioHandler) DeletarFormulario(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err)
	}

	if err := h.formularioUseCase.DeletarFormulario(id); err != nil {
		return tratarErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
