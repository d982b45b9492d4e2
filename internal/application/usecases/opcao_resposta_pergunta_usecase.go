package usecases

import (
	"errors"

	"formularios-backend/internal/domain/entities"
	"formularios-backend/internal/domain/repositories"

	"gorm.io/gorm"
)

type OpcaoRespostaPerguntaUseCase interface {
	CriarVinculo(vinculo *entities.OpcaoRespostaPergunta) error
	ListarVinculosDaPergunta(perguntaID uint) ([]entities.OpcaoRespostaPergunta, error)
	DeletarVinculo(id uint) error
}

type opcaoRespostaPerguntaUseCase struct {
	vinculoRepo  repositories.OpcaoRespostaPerguntaRepository
	opcaoRepo    repositories.OpcaoRespostaRepository
	perguntaRepo repositories.PerguntaRepository
}

func NewOpcaoRespostaPerguntaUseCase(
	vinculoRepo repositories.OpcaoRespostaPerguntaRepository,
	opcaoRepo repositories.OpcaoRespostaRepository,
	perguntaRepo repositories.PerguntaRepository,
) OpcaoRespostaPerguntaUseCase {
	return &opcaoRespostaPerguntaUseCase{vinculoRepo, opcaoRepo, perguntaRepo}
}

// CriarVinculo verifica os dois lados da associação. Pares duplicados
// são aceitos: o modelo não declara unicidade sobre (opção, pergunta).
func (uc *opcaoRespostaPerguntaUseCase) CriarVinculo(vinculo *entities.OpcaoRespostaPergunta) error {
	existe, err := uc.opcaoRepo.Exists(vinculo.IDOpcaoResposta)
	if err != nil {
		return err
	}
	if !existe {
		return ErrOpcaoRespostaNaoEncontrada
	}

	existe, err = uc.perguntaRepo.Exists(vinculo.IDPergunta)
	if err != nil {
		return err
	}
	if !existe {
		return ErrPerguntaNaoEncontrada
	}

	return uc.vinculoRepo.Create(vinculo)
}

func (uc *opcaoRespostaPerguntaUseCase) ListarVinculosDaPergunta(perguntaID uint) ([]entities.OpcaoRespostaPergunta, error) {
	existe, err := uc.perguntaRepo.Exists(perguntaID)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, ErrPerguntaNaoEncontrada
	}
	return uc.vinculoRepo.FindByPergunta(perguntaID)
}

func (uc *opcaoRespostaPerguntaUseCase) DeletarVinculo(id uint) error {
	err := uc.vinculoRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrVinculoNaoEncontrado
	}
	return err
}
