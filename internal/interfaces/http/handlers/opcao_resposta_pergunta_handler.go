package handlers

import (
	"formularios-backend/internal/application/usecases"
	"formularios-backend/internal/interfaces/http/dto"

	"github.com/gofiber/fiber/v2"
)

type OpcaoRespostaPerguntaHandler struct {
	vinculoUseCase usecases.OpcaoRespostaPerguntaUseCase
}

func NewOpcaoRespostaPerguntaHandler(vinculoUseCase usecases.OpcaoRespostaPerguntaUseCase) *OpcaoRespostaPerguntaHandler {
	return &OpcaoRespostaPerguntaHandler{vinculoUseCase}
}

func (h *OpcaoRespostaPerguntaHandler) CriarVinculo(c *fiber.Ctx) error {
	var req dto.CriarOpcaoRespostaPerguntaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(c, err)
	}

	vinculo := req.ToEntity()
	if err := h.vinculoUseCase.CriarVinculo(&vinculo); err != nil {
		return tratarErro(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToOpcaoRespostaPerguntaResponse(vinculo))
}

func (h *OpcaoRespostaPerguntaHandler) ListarVinculosDaPergunta(c *fiber.Ctx) error {
	perguntaID, err := parseID(c, "pergunta_id")
	if err != nil {
		return badRequest(c, err)
	}

	vinculos, err := h.vinculoUseCase.ListarVinculosDaPergunta(perguntaID)
	if err != nil {
		return tratarErro(c, err)
	}
	return c.JSON(dto.ToOpcaoRespostaPerguntaResponses(vinculos))
}

func (h *OpcaoRespostaPerguntaHandler) DeletarVinculo(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err)
	}

	if err := h.vinculoUseCase.DeletarVinculo(id); err != nil {
		return tratarErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
