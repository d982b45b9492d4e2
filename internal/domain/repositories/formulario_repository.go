package repositories

import (
	"formularios-backend/internal/domain/entities"

	"gorm.io/gorm"
)

type FormularioRepository interface {
	Create(formulario *entities.Formulario) error
	FindAll() ([]entities.Formulario, error)
	FindByID(id uint) (entities.Formulario, error)
	Exists(id uint) (bool, error)
	Update(id uint, updates map[string]interface{}) (entities.Formulario, error)
	Delete(id uint) error
}

type formularioRepository struct {
	db *gorm.DB
}

func NewFormularioRepository(db *gorm.DB) FormularioRepository {
	return &formularioRepository{db}
}

func (r *formularioRepository) Create(formulario *entities.Formulario) error {
	return r.db.Create(formulario).Error
}

// FindAll retorna os formulários sem as perguntas aninhadas (shape simples).
func (r *formularioRepository) FindAll() ([]entities.Formulario, error) {
	var formularios []entities.Formulario
	if err := r.db.Find(&formularios).Error; err != nil {
		return nil, err
	}
	return formularios, nil
}

// FindByID retorna o formulário completo, com perguntas e suas opções.
func (r *formularioRepository) FindByID(id uint) (entities.Formulario, error) {
	var formulario entities.Formulario
	err := r.db.Preload("Perguntas.OpcoesRespostas").First(&formulario, id).Error
	if err != nil {
		return entities.Formulario{}, err
	}
	return formulario, nil
}

func (r *formularioRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&entities.Formulario{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *formularioRepository) Update(id uint, updates map[string]interface{}) (entities.Formulario, error) {
	var formulario entities.Formulario
	if err := r.db.First(&formulario, id).Error; err != nil {
		return entities.Formulario{}, err
	}

	if len(updates) > 0 {
		if err := r.db.Model(&formulario).Updates(updates).Error; err != nil {
			return entities.Formulario{}, err
		}
	}

	return r.FindByID(id)
}

func (r *formularioRepository) Delete(id uint) error {
	var formulario entities.Formulario
	if err := r.db.First(&formulario, id).Error; err != nil {
		return err
	}
	// O cascade para perguntas, opções e vínculos fica por conta das
	// foreign keys ON DELETE CASCADE criadas na migração.
	return r.db.Delete(&formulario).Error
}
