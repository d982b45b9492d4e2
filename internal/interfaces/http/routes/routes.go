package routes

import (
	"formularios-backend/internal/application/usecases"
	"formularios-backend/internal/domain/repositories"
	"formularios-backend/internal/interfaces/http/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	app.Use(etag.New())

	// Info da API
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "API de Formulários Dinâmicos",
			"version": "1.0.0",
		})
	})

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
		})
	})

	// Repositories
	formularioRepo := repositories.NewFormularioRepository(db)
	perguntaRepo := repositories.NewPerguntaRepository(db)
	opcaoRepo := repositories.NewOpcaoRespostaRepository(db)
	vinculoRepo := repositories.NewOpcaoRespostaPerguntaRepository(db)

	// Use Cases
	formularioUseCase := usecases.NewFormularioUseCase(formularioRepo)
	perguntaUseCase := usecases.NewPerguntaUseCase(perguntaRepo, formularioRepo)
	opcaoUseCase := usecases.NewOpcaoRespostaUseCase(opcaoRepo, perguntaRepo)
	vinculoUseCase := usecases.NewOpcaoRespostaPerguntaUseCase(vinculoRepo, opcaoRepo, perguntaRepo)

	// Handlers
	formularioHandler := handlers.NewFormularioHandler(formularioUseCase)
	perguntaHandler := handlers.NewPerguntaHandler(perguntaUseCase)
	opcaoHandler := handlers.NewOpcaoRespostaHandler(opcaoUseCase)
	vinculoHandler := handlers.NewOpcaoRespostaPerguntaHandler(vinculoUseCase)

	// Formulários
	formularios := app.Group("/formularios")
	formularios.Post("/", formularioHandler.CriarFormulario)
	formularios.Get("/", formularioHandler.ListarFormularios)
	formularios.Get("/:id", formularioHandler.ObterFormulario)
	formularios.Put("/:id", formularioHandler.AtualizarFormulario)
	formularios.Delete("/:id", formularioHandler.DeletarFormulario)

	// Perguntas. As rotas fixas vêm antes de /:id.
	perguntas := app.Group("/perguntas")
	perguntas.Post("/", perguntaHandler.CriarPergunta)
	perguntas.Get("/", perguntaHandler.ListarPerguntas)
	perguntas.Get("/paginated", perguntaHandler.ListarPerguntasPaginado)
	perguntas.Get("/formulario/:formulario_id", perguntaHandler.ListarPerguntasDoFormulario)
	perguntas.Get("/:id", perguntaHandler.ObterPergunta)
	perguntas.Put("/:id", perguntaHandler.AtualizarPergunta)
	perguntas.Delete("/:id", perguntaHandler.DeletarPergunta)

	// Opções de resposta
	opcoes := app.Group("/opcoes-respostas")
	opcoes.Post("/", opcaoHandler.CriarOpcaoResposta)
	opcoes.Get("/pergunta/:pergunta_id", opcaoHandler.ListarOpcoesDaPergunta)
	opcoes.Get("/:id", opcaoHandler.ObterOpcaoResposta)
	opcoes.Put("/:id", opcaoHandler.AtualizarOpcaoResposta)
	opcoes.Delete("/:id", opcaoHandler.DeletarOpcaoResposta)

	// Vínculos opção-pergunta (reuso de opções entre perguntas)
	vinculos := app.Group("/opcoes-resposta-pergunta")
	vinculos.Post("/", vinculoHandler.CriarVinculo)
	vinculos.Get("/pergunta/:pergunta_id", vinculoHandler.ListarVinculosDaPergunta)
	vinculos.Delete("/:id", vinculoHandler.DeletarVinculo)
}
