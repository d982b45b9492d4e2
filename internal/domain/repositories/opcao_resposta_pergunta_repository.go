package repositories

import (
	"formularios-backend/internal/domain/entities"

	"gorm.io/gorm"
)

type OpcaoRespostaPerguntaRepository interface {
	Create(vinculo *entities.OpcaoRespostaPergunta) error
	FindByPergunta(perguntaID uint) ([]entities.OpcaoRespostaPergunta, error)
	Delete(id uint) error
}

type opcaoRespostaPerguntaRepository struct {
	db *gorm.DB
}

func NewOpcaoRespostaPerguntaRepository(db *gorm.DB) OpcaoRespostaPerguntaRepository {
	return &opcaoRespostaPerguntaRepository{db}
}

func (r *opcaoRespostaPerguntaRepository) Create(vinculo *entities.OpcaoRespostaPergunta) error {
	return r.db.Create(vinculo).Error
}

func (r *opcaoRespostaPerguntaRepository) FindByPergunta(perguntaID uint) ([]entities.OpcaoRespostaPergunta, error) {
	var vinculos []entities.OpcaoRespostaPergunta
	err := r.db.Where("id_pergunta = ?", perguntaID).Find(&vinculos).Error
	if err != nil {
		return nil, err
	}
	return vinculos, nil
}

func (r *opcaoRespostaPerguntaRepository) Delete(id uint) error {
	var vinculo entities.OpcaoRespostaPergunta
	if err := r.db.First(&vinculo, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&vinculo).Error
}
