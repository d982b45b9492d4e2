package repositories

import (
	"formularios-backend/internal/domain/entities"

	"gorm.io/gorm"
)

type OpcaoRespostaRepository interface {
	Create(opcao *entities.OpcaoResposta) error
	FindByPergunta(perguntaID uint) ([]entities.OpcaoResposta, error)
	FindByID(id uint) (entities.OpcaoResposta, error)
	Exists(id uint) (bool, error)
	Update(id uint, updates map[string]interface{}) (entities.OpcaoResposta, error)
	Delete(id uint) error
}

type opcaoRespostaRepository struct {
	db *gorm.DB
}

func NewOpcaoRespostaRepository(db *gorm.DB) OpcaoRespostaRepository {
	return &opcaoRespostaRepository{db}
}

func (r *opcaoRespostaRepository) Create(opcao *entities.OpcaoResposta) error {
	return r.db.Create(opcao).Error
}

func (r *opcaoRespostaRepository) FindByPergunta(perguntaID uint) ([]entities.OpcaoResposta, error) {
	var opcoes []entities.OpcaoResposta
	err := r.db.Where("id_pergunta = ?", perguntaID).Find(&opcoes).Error
	if err != nil {
		return nil, err
	}
	return opcoes, nil
}

func (r *opcaoRespostaRepository) FindByID(id uint) (entities.OpcaoResposta, error) {
	var opcao entities.OpcaoResposta
	if err := r.db.First(&opcao, id).Error; err != nil {
		return entities.OpcaoResposta{}, err
	}
	return opcao, nil
}

func (r *opcaoRespostaRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&entities.OpcaoResposta{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *opcaoRespostaRepository) Update(id uint, updates map[string]interface{}) (entities.OpcaoResposta, error) {
	var opcao entities.OpcaoResposta
	if err := r.db.First(&opcao, id).Error; err != nil {
		return entities.OpcaoResposta{}, err
	}

	if len(updates) > 0 {
		if err := r.db.Model(&opcao).Updates(updates).Error; err != nil {
			return entities.OpcaoResposta{}, err
		}
	}

	return r.FindByID(id)
}

func (r *opcaoRespostaRepository) Delete(id uint) error {
	var opcao entities.OpcaoResposta
	if err := r.db.First(&opcao, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&opcao).Error
}
