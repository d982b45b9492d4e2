package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"formularios-backend/internal/application/usecases"
	"formularios-backend/internal/domain/entities"
	"formularios-backend/internal/domain/repositories"

	"github.com/gofiber/fiber/v2"
)

// Campos ordenáveis da listagem de perguntas. Campo fora do whitelist é
// ignorado sem erro: a query sai sem ORDER BY.
var camposOrdenacaoPergunta = map[string]string{
	"id":     "id",
	"titulo": "titulo",
	"ordem":  "ordem",
}

func parseID(c *fiber.Ctx, nome string) (uint, error) {
	id, err := strconv.Atoi(c.Params(nome))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("parâmetro %s inválido", nome)
	}
	return uint(id), nil
}

// parsePaginacao valida page e size na borda: valores fora dos limites
// são rejeitados, não ajustados.
func parsePaginacao(c *fiber.Ctx) (int, int, error) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return 0, 0, errors.New("parâmetro page deve ser um inteiro maior ou igual a 1")
	}

	size, err := strconv.Atoi(c.Query("size", "10"))
	if err != nil || size < 1 || size > 100 {
		return 0, 0, errors.New("parâmetro size deve ser um inteiro entre 1 e 100")
	}

	return page, size, nil
}

func parseOrdenacao(c *fiber.Ctx, padrao string) string {
	orderBy := c.Query("order_by", padrao)

	direction := strings.ToLower(c.Query("order_direction", "asc"))
	if direction != "desc" {
		direction = "asc"
	}

	if coluna, ok := camposOrdenacaoPergunta[orderBy]; ok {
		return coluna + " " + direction
	}
	return ""
}

// parseFiltroPergunta lê os filtros de igualdade da query string. O tipo
// de pergunta é validado aqui, antes de chegar à camada de consulta.
func parseFiltroPergunta(c *fiber.Ctx, comFormulario bool) (repositories.PerguntaFiltro, error) {
	var filtro repositories.PerguntaFiltro

	if comFormulario {
		if raw := c.Query("formulario_id"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil || id < 1 {
				return filtro, errors.New("parâmetro formulario_id inválido")
			}
			formularioID := uint(id)
			filtro.FormularioID = &formularioID
		}
	}

	if raw := c.Query("tipo_pergunta"); raw != "" {
		tipo := entities.TipoPergunta(raw)
		if !tipo.IsValid() {
			return filtro, fmt.Errorf("tipo_pergunta inválido: %s", raw)
		}
		filtro.TipoPergunta = &tipo
	}

	if raw := c.Query("obrigatoria"); raw != "" {
		valor, err := strconv.ParseBool(raw)
		if err != nil {
			return filtro, errors.New("parâmetro obrigatoria inválido")
		}
		filtro.Obrigatoria = &valor
	}

	if raw := c.Query("sub_pergunta"); raw != "" {
		valor, err := strconv.ParseBool(raw)
		if err != nil {
			return filtro, errors.New("parâmetro sub_pergunta inválido")
		}
		filtro.SubPergunta = &valor
	}

	return filtro, nil
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// tratarErro mapeia erros de negócio para o status HTTP correspondente.
func tratarErro(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecases.ErrFormularioNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Formulário não encontrado"})
	case errors.Is(err, usecases.ErrPerguntaNaoEncontrada):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pergunta não encontrada"})
	case errors.Is(err, usecases.ErrOpcaoRespostaNaoEncontrada):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Opção de resposta não encontrada"})
	case errors.Is(err, usecases.ErrVinculoNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vínculo não encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
