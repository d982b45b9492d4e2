package usecases

import (
	"errors"

	"formularios-backend/internal/domain/entities"
	"formularios-backend/internal/domain/repositories"

	"gorm.io/gorm"
)

type FormularioUseCase interface {
	CriarFormulario(formulario *entities.Formulario) error
	ListarFormularios() ([]entities.Formulario, error)
	ObterFormulario(id uint) (entities.Formulario, error)
	AtualizarFormulario(id uint, updates map[string]interface{}) (entities.Formulario, error)
	DeletarFormulario(id uint) error
}

type formularioUseCase struct {
	formularioRepo repositories.FormularioRepository
}

func NewFormularioUseCase(formularioRepo repositories.FormularioRepository) FormularioUseCase {
	return &formularioUseCase{formularioRepo}
}

func (uc *formularioUseCase) CriarFormulario(formulario *entities.Formulario) error {
	return uc.formularioRepo.Create(formulario)
}

func (uc *formularioUseCase) ListarFormularios() ([]entities.Formulario, error) {
	return uc.formularioRepo.FindAll()
}

func (uc *formularioUseCase) ObterFormulario(id uint) (entities.Formulario, error) {
	formulario, err := uc.formularioRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Formulario{}, ErrFormularioNaoEncontrado
	}
	return formulario, err
}

func (uc *formularioUseCase) AtualizarFormulario(id uint, updates map[string]interface{}) (entities.Formulario, error) {
	formulario, err := uc.formularioRepo.Update(id, updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Formulario{}, ErrFormularioNaoEncontrado
	}
	return formulario, err
}

func (uc *formularioUseCase) DeletarFormulario(id uint) error {
	err := uc.formularioRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrFormularioNaoEncontrado
	}
	return err
}
