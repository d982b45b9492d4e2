package usecases

import (
	"errors"

	"formularios-backend/internal/domain/entities"
	"formularios-backend/internal/domain/repositories"

	"gorm.io/gorm"
)

// PaginaPerguntas é o resultado do modo de listagem detalhado, com a
// contagem total e os metadados de navegação.
type PaginaPerguntas struct {
	Items   []entities.Pergunta
	Total   int64
	Page    int
	Size    int
	Pages   int
	HasNext bool
	HasPrev bool
}

type PerguntaUseCase interface {
	CriarPergunta(pergunta *entities.Pergunta) error
	ListarPerguntas(filtro repositories.PerguntaFiltro, orderBy string, page, size int) ([]entities.Pergunta, error)
	ListarPerguntasPaginado(filtro repositories.PerguntaFiltro, orderBy string, page, size int) (PaginaPerguntas, error)
	ListarPerguntasDoFormulario(formularioID uint, filtro repositories.PerguntaFiltro, orderBy string, page, size int) ([]entities.Pergunta, error)
	ObterPergunta(id uint) (entities.Pergunta, error)
	AtualizarPergunta(id uint, updates map[string]interface{}) (entities.Pergunta, error)
	DeletarPergunta(id uint) error
}

type perguntaUseCase struct {
	perguntaRepo   repositories.PerguntaRepository
	formularioRepo repositories.FormularioRepository
}

func NewPerguntaUseCase(perguntaRepo repositories.PerguntaRepository, formularioRepo repositories.FormularioRepository) PerguntaUseCase {
	return &perguntaUseCase{perguntaRepo, formularioRepo}
}

// CriarPergunta falha com ErrFormularioNaoEncontrado antes de tocar na
// tabela de perguntas quando o formulário pai não existe, em vez de
// deixar a violação de foreign key subir como erro genérico.
func (uc *perguntaUseCase) CriarPergunta(pergunta *entities.Pergunta) error {
	existe, err := uc.formularioRepo.Exists(pergunta.IDFormulario)
	if err != nil {
		return err
	}
	if !existe {
		return ErrFormularioNaoEncontrado
	}
	return uc.perguntaRepo.Create(pergunta)
}

// ListarPerguntas é o modo simples: sem a query de contagem.
func (uc *perguntaUseCase) ListarPerguntas(filtro repositories.PerguntaFiltro, orderBy string, page, size int) ([]entities.Pergunta, error) {
	return uc.perguntaRepo.Find(filtro, orderBy, page, size, false)
}

func (uc *perguntaUseCase) ListarPerguntasPaginado(filtro repositories.PerguntaFiltro, orderBy string, page, size int) (PaginaPerguntas, error) {
	total, err := uc.perguntaRepo.Count(filtro)
	if err != nil {
		return PaginaPerguntas{}, err
	}

	perguntas, err := uc.perguntaRepo.Find(filtro, orderBy, page, size, false)
	if err != nil {
		return PaginaPerguntas{}, err
	}

	pages := int((total + int64(size) - 1) / int64(size))

	return PaginaPerguntas{
		Items:   perguntas,
		Total:   total,
		Page:    page,
		Size:    size,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}, nil
}

func (uc *perguntaUseCase) ListarPerguntasDoFormulario(formularioID uint, filtro repositories.PerguntaFiltro, orderBy string, page, size int) ([]entities.Pergunta, error) {
	existe, err := uc.formularioRepo.Exists(formularioID)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, ErrFormularioNaoEncontrado
	}

	filtro.FormularioID = &formularioID
	return uc.perguntaRepo.Find(filtro, orderBy, page, size, true)
}

func (uc *perguntaUseCase) ObterPergunta(id uint) (entities.Pergunta, error) {
	pergunta, err := uc.perguntaRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Pergunta{}, ErrPerguntaNaoEncontrada
	}
	return pergunta, err
}

func (uc *perguntaUseCase) AtualizarPergunta(id uint, updates map[string]interface{}) (entities.Pergunta, error) {
	pergunta, err := uc.perguntaRepo.Update(id, updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Pergunta{}, ErrPerguntaNaoEncontrada
	}
	return pergunta, err
}

func (uc *perguntaUseCase) DeletarPergunta(id uint) error {
	err := uc.perguntaRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPerguntaNaoEncontrada
	}
	return err
}
