package handlers

import (
	"formularios-backend/internal/application/usecases"
	"formularios-backend/internal/interfaces/http/dto"

	"github.com/gofiber/fiber/v2"
)

type OpcaoRespostaHandler struct {
	opcaoUseCase usecases.OpcaoRespostaUseCase
}

func NewOpcaoRespostaHandler(opcaoUseCase usecases.OpcaoRespostaUseCase) *OpcaoRespostaHandler {
	return &OpcaoRespostaHandler{opcaoUseCase}
}

func (h *OpcaoRespostaHandler) CriarOpcaoResposta(c *fiber.Ctx) error {
	var req dto.CriarOpcaoRespostaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(c, err)
	}

	opcao := req.ToEntity()
	if err := h.opcaoUseCase.CriarOpcaoResposta(&opcao); err != nil {
		return tratarErro(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToOpcaoRespostaResponse(opcao))
}

func (h *OpcaoRespostaHandler) ListarOpcoesDaPergunta(c *fiber.Ctx) error {
	perguntaID, err := parseID(c, "pergunta_id")
	if err != nil {
		return badRequest(c, err)
	}

	opcoes, err := h.opcaoUseCase.ListarOpcoesDaPergunta(perguntaID)
	if err != nil {
		return tratarErro(c, err)
	}
	return c.JSON(dto.ToOpcaoRespostaResponses(opcoes))
}

func (h *OpcaoRespostaHandler) ObterOpcaoResposta(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err)
	}

	opcao, err := h.opcaoUseCase.ObterOpcaoResposta(id)
	if err != nil {
		return tratarErro(c, err)
	}
	return c.JSON(dto.ToOpcaoRespostaResponse(opcao))
}

func (h *OpcaoRespostaHandler) AtualizarOpcaoResposta(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err)
	}

	var req dto.AtualizarOpcaoRespostaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}

	updates, err := req.Updates()
	if err != nil {
		return badRequest(c, err)
	}

	opcao, err := h.opcaoUseCase.AtualizarOpcaoResposta(id, updates)
	if err != nil {
		return tratarErro(c, err)
	}
	return c.JSON(dto.ToOpcaoRespostaResponse(opcao))
}

func (h *OpcaoRespostaHandler) DeletarOpcaoResposta(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err)
	}

	if err := h.opcaoUseCase.DeletarOpcaoResposta(id); err != nil {
		return tratarErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
