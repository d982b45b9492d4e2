package repositories

import (
	"formularios-backend/internal/domain/entities"

	"gorm.io/gorm"
)

// PerguntaFiltro agrupa os filtros de igualdade da listagem de
// perguntas. Campo nulo significa "sem restrição"; os filtros presentes
// são combinados com AND.
type PerguntaFiltro struct {
	FormularioID *uint
	TipoPergunta *entities.TipoPergunta
	Obrigatoria  *bool
	SubPergunta  *bool
}

type PerguntaRepository interface {
	Create(pergunta *entities.Pergunta) error
	Find(filtro PerguntaFiltro, orderBy string, page, size int, comOpcoes bool) ([]entities.Pergunta, error)
	Count(filtro PerguntaFiltro) (int64, error)
	FindByID(id uint) (entities.Pergunta, error)
	Exists(id uint) (bool, error)
	Update(id uint, updates map[string]interface{}) (entities.Pergunta, error)
	Delete(id uint) error
}

type perguntaRepository struct {
	db *gorm.DB
}

func NewPerguntaRepository(db *gorm.DB) PerguntaRepository {
	return &perguntaRepository{db}
}

func (r *perguntaRepository) Create(pergunta *entities.Pergunta) error {
	return r.db.Create(pergunta).Error
}

func aplicarFiltroPergunta(query *gorm.DB, filtro PerguntaFiltro) *gorm.DB {
	if filtro.FormularioID != nil {
		query = query.Where("id_formulario = ?", *filtro.FormularioID)
	}
	if filtro.TipoPergunta != nil {
		query = query.Where("tipo_pergunta = ?", *filtro.TipoPergunta)
	}
	if filtro.Obrigatoria != nil {
		query = query.Where("obrigatoria = ?", *filtro.Obrigatoria)
	}
	if filtro.SubPergunta != nil {
		query = query.Where("sub_pergunta = ?", *filtro.SubPergunta)
	}
	return query
}

// Find aplica filtros, ordenação e paginação. orderBy vazio mantém a
// ordem natural do banco; o whitelist de campos ordenáveis fica no
// handler.
func (r *perguntaRepository) Find(filtro PerguntaFiltro, orderBy string, page, size int, comOpcoes bool) ([]entities.Pergunta, error) {
	var perguntas []entities.Pergunta

	query := aplicarFiltroPergunta(r.db.Model(&entities.Pergunta{}), filtro)

	if comOpcoes {
		query = query.Preload("OpcoesRespostas")
	}

	if orderBy != "" {
		query = query.Order(orderBy)
	}

	offset := (page - 1) * size

	result := query.Offset(offset).
		Limit(size).
		Find(&perguntas)

	if result.Error != nil {
		return nil, result.Error
	}

	return perguntas, nil
}

// Count retorna o total de perguntas que casam com o filtro, antes da
// paginação. Só é chamado no modo de listagem detalhado.
func (r *perguntaRepository) Count(filtro PerguntaFiltro) (int64, error) {
	var total int64
	query := aplicarFiltroPergunta(r.db.Model(&entities.Pergunta{}), filtro)
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// FindByID retorna a pergunta completa, com as opções de resposta.
func (r *perguntaRepository) FindByID(id uint) (entities.Pergunta, error) {
	var pergunta entities.Pergunta
	err := r.db.Preload("OpcoesRespostas").First(&pergunta, id).Error
	if err != nil {
		return entities.Pergunta{}, err
	}
	return pergunta, nil
}

func (r *perguntaRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&entities.Pergunta{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *perguntaRepository) Update(id uint, updates map[string]interface{}) (entities.Pergunta, error) {
	var pergunta entities.Pergunta
	if err := r.db.First(&pergunta, id).Error; err != nil {
		return entities.Pergunta{}, err
	}

	if len(updates) > 0 {
		if err := r.db.Model(&pergunta).Updates(updates).Error; err != nil {
			return entities.Pergunta{}, err
		}
	}

	return r.FindByID(id)
}

func (r *perguntaRepository) Delete(id uint) error {
	var pergunta entities.Pergunta
	if err := r.db.First(&pergunta, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&pergunta).Error
}
