package usecases

import (
	"errors"

	"formularios-backend/internal/domain/entities"
	"formularios-backend/internal/domain/repositories"

	"gorm.io/gorm"
)

type OpcaoRespostaUseCase interface {
	CriarOpcaoResposta(opcao *entities.OpcaoResposta) error
	ListarOpcoesDaPergunta(perguntaID uint) ([]entities.OpcaoResposta, error)
	ObterOpcaoResposta(id uint) (entities.OpcaoResposta, error)
	AtualizarOpcaoResposta(id uint, updates map[string]interface{}) (entities.OpcaoResposta, error)
	DeletarOpcaoResposta(id uint) error
}

type opcaoRespostaUseCase struct {
	opcaoRepo    repositories.OpcaoRespostaRepository
	perguntaRepo repositories.PerguntaRepository
}

func NewOpcaoRespostaUseCase(opcaoRepo repositories.OpcaoRespostaRepository, perguntaRepo repositories.PerguntaRepository) OpcaoRespostaUseCase {
	return &opcaoRespostaUseCase{opcaoRepo, perguntaRepo}
}

func (uc *opcaoRespostaUseCase) CriarOpcaoResposta(opcao *entities.OpcaoResposta) error {
	existe, err := uc.perguntaRepo.Exists(opcao.IDPergunta)
	if err != nil {
		return err
	}
	if !existe {
		return ErrPerguntaNaoEncontrada
	}
	return uc.opcaoRepo.Create(opcao)
}

// ListarOpcoesDaPergunta exige que a pergunta exista: uma lista vazia de
// uma pergunta inexistente seria indistinguível de "sem opções".
func (uc *opcaoRespostaUseCase) ListarOpcoesDaPergunta(perguntaID uint) ([]entities.OpcaoResposta, error) {
	existe, err := uc.perguntaRepo.Exists(perguntaID)
	if err != nil {
		return nil, err
	}
	if !existe {
		return nil, ErrPerguntaNaoEncontrada
	}
	return uc.opcaoRepo.FindByPergunta(perguntaID)
}

func (uc *opcaoRespostaUseCase) ObterOpcaoResposta(id uint) (entities.OpcaoResposta, error) {
	opcao, err := uc.opcaoRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.OpcaoResposta{}, ErrOpcaoRespostaNaoEncontrada
	}
	return opcao, err
}

func (uc *opcaoRespostaUseCase) AtualizarOpcaoResposta(id uint, updates map[string]interface{}) (entities.OpcaoResposta, error) {
	opcao, err := uc.opcaoRepo.Update(id, updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.OpcaoResposta{}, ErrOpcaoRespostaNaoEncontrada
	}
	return opcao, err
}

func (uc *opcaoRespostaUseCase) DeletarOpcaoResposta(id uint) error {
	err := uc.opcaoRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOpcaoRespostaNaoEncontrada
	}
	return err
}
