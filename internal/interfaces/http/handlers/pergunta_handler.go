package handlers

import (
	"formularios-backend/internal/application/usecases"
	"formularios-backend/internal/interfaces/http/dto"

	"github.com/gofiber/fiber/v2"
)

type PerguntaHandler struct {
	perguntaUseCase usecases.PerguntaUseCase
}

func NewPerguntaHandler(perguntaUseCase usecases.PerguntaUseCase) *PerguntaHandler {
	return &PerguntaHandler{perguntaUseCase}
}

func (h *PerguntaHandler) CriarPergunta(c *fiber.Ctx) error {
	var req dto.CriarPerguntaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(c, err)
	}

	pergunta := req.ToEntity()
	if !pergunta.TipoPergunta.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "tipo_pergunta inválido: " + req.TipoPergunta,
		})
	}

	if err := h.perguntaUseCase.CriarPergunta(&pergunta); err != nil {
		return tratarErro(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToPerguntaResponse(pergunta))
}

// ListarPerguntas é o modo simples: itens sem opções e sem contagem.
func (h *PerguntaHandler) ListarPerguntas(c *fiber.Ctx) error {
	filtro, err := parseFiltroPergunta(c, true)
	if err != nil {
		return badRequest(c, err)
	}

	page, size, err := parsePaginacao(c)
	if err != nil {
		return badRequest(c, err)
	}

	orderBy := parseOrdenacao(c, "id")

	perguntas, err := h.perguntaUseCase.ListarPerguntas(filtro, orderBy, page, size)
	if err != nil {
		return tratarErro(c, err)
	}
	return c.JSON(dto.ToPerguntaSimplesResponses(perguntas))
}

// ListarPerguntasPaginado devolve itens mais os metadados de navegação
// (total, pages, has_next, has_prev), ao custo de uma query de contagem.
func (h *PerguntaHandler) ListarPerguntasPaginado(c *fiber.Ctx) error {
	filtro, err := parseFiltroPergunta(c, true)
	if err != nil {
		return badRequest(c, err)
	}

	page, size, err := parsePaginacao(c)
	if err != nil {
		return badRequest(c, err)
	}

	orderBy := parseOrdenacao(c, "id")

	pagina, err := h.perguntaUseCase.ListarPerguntasPaginado(filtro, orderBy, page, size)
	if err != nil {
		return tratarErro(c, err)
	}

	return c.JSON(dto.PerguntasPaginadasResponse{
		Items:   dto.ToPerguntaSimplesResponses(pagina.Items),
		Total:   pagina.Total,
		Page:    pagina.Page,
		Size:    pagina.Size,
		Pages:   pagina.Pages,
		HasNext: pagina.HasNext,
		HasPrev: pagina.HasPrev,
	})
}

// ListarPerguntasDoFormulario lista as perguntas de um formulário com o
// shape completo. A ordenação default aqui é por ordem de exibição.
func (h *PerguntaHandler) ListarPerguntasDoFormulario(c *fiber.Ctx) error {
	formularioID, err := parseID(c, "formulario_id")
	if err != nil {
		return badRequest(c, err)
	}

	filtro, err := parseFiltroPergunta(c, false)
	if err != nil {
		return badRequest(c, err)
	}

	page, size, err := parsePaginacao(c)
	if err != nil {
		return badRequest(c, err)
	}

	orderBy := parseOrdenacao(c, "ordem")

	perguntas, err := h.perguntaUseCase.ListarPerguntasDoFormulario(formularioID, filtro, orderBy, page, size)
	if err != nil {
		return tratarErro(c, err)
	}
	return c.JSON(dto.ToPerguntaResponses(perguntas))
}

func (h *PerguntaHandler) ObterPergunta(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err)
	}

	pergunta, err := h.perguntaUseCase.ObterPergunta(id)
	if err != nil {
		return tratarErro(c, err)
	}
	return c.JSON(dto.ToPerguntaResponse(pergunta))
}

func (h *PerguntaHandler) AtualizarPergunta(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err)
	}

	var req dto.AtualizarPerguntaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "corpo da requisição inválido"})
	}

	updates, err := req.Updates()
	if err != nil {
		return badRequest(c, err)
	}

	pergunta, err := h.perguntaUseCase.AtualizarPergunta(id, updates)
	if err != nil {
		return tratarErro(c, err)
	}
	return c.JSON(dto.ToPerguntaResponse(pergunta))
}

func (h *PerguntaHandler) DeletarPergunta(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err)
	}

	if err := h.perguntaUseCase.DeletarPergunta(id); err != nil {
		return tratarErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
