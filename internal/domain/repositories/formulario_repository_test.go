package repositories

import (
	"errors"
	"testing"

	"formularios-backend/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFormularioRepositoryCreateEFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormularioRepository(db)

	descricao := "pesquisa de satisfação"
	ordem := 3
	formulario := entities.Formulario{
		Titulo:    "Satisfação",
		Descricao: &descricao,
		Ordem:     &ordem,
	}
	require.NoError(t, repo.Create(&formulario))
	assert.NotZero(t, formulario.ID)

	salvo, err := repo.FindByID(formulario.ID)
	require.NoError(t, err)
	assert.Equal(t, "Satisfação", salvo.Titulo)
	require.NotNil(t, salvo.Descricao)
	assert.Equal(t, descricao, *salvo.Descricao)
	require.NotNil(t, salvo.Ordem)
	assert.Equal(t, ordem, *salvo.Ordem)
	assert.Empty(t, salvo.Perguntas)
}

func TestFormularioRepositoryFindByIDInexistente(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormularioRepository(db)

	_, err := repo.FindByID(42)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestFormularioRepositoryFindByIDComPerguntasEOpcoes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormularioRepository(db)

	formulario := criarFormularioTeste(t, db, "Cadastro")
	pergunta := criarPerguntaTeste(t, db, formulario.ID, "Aceita os termos?", entities.TipoSimNao)
	criarOpcaoTeste(t, db, pergunta.ID, "Sim")
	criarOpcaoTeste(t, db, pergunta.ID, "Não")

	salvo, err := repo.FindByID(formulario.ID)
	require.NoError(t, err)
	require.Len(t, salvo.Perguntas, 1)
	assert.Len(t, salvo.Perguntas[0].OpcoesRespostas, 2)
}

func TestFormularioRepositoryUpdateParcial(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormularioRepository(db)

	descricao := "original"
	formulario := entities.Formulario{Titulo: "Antes", Descricao: &descricao}
	require.NoError(t, repo.Create(&formulario))

	atualizado, err := repo.Update(formulario.ID, map[string]interface{}{"titulo": "Depois"})
	require.NoError(t, err)
	assert.Equal(t, "Depois", atualizado.Titulo)
	require.NotNil(t, atualizado.Descricao)
	assert.Equal(t, "original", *atualizado.Descricao, "campo fora do patch não pode mudar")
}

func TestFormularioRepositoryUpdateVazioMantemRegistro(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormularioRepository(db)

	formulario := criarFormularioTeste(t, db, "Inalterado")

	atualizado, err := repo.Update(formulario.ID, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "Inalterado", atualizado.Titulo)
}

func TestFormularioRepositoryDeleteCascata(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormularioRepository(db)

	formulario := criarFormularioTeste(t, db, "Descartável")
	var perguntaIDs []uint
	var opcaoIDs []uint
	for i := 0; i < 3; i++ {
		pergunta := criarPerguntaTeste(t, db, formulario.ID, "P", entities.TipoTextoLivre)
		perguntaIDs = append(perguntaIDs, pergunta.ID)
		for j := 0; j < 2; j++ {
			opcao := criarOpcaoTeste(t, db, pergunta.ID, "O")
			opcaoIDs = append(opcaoIDs, opcao.ID)
			vinculo := entities.OpcaoRespostaPergunta{IDOpcaoResposta: opcao.ID, IDPergunta: pergunta.ID}
			require.NoError(t, db.Create(&vinculo).Error)
		}
	}

	require.NoError(t, repo.Delete(formulario.ID))

	var total int64
	require.NoError(t, db.Model(&entities.Pergunta{}).Where("id IN ?", perguntaIDs).Count(&total).Error)
	assert.Zero(t, total, "perguntas deveriam cascatear")

	require.NoError(t, db.Model(&entities.OpcaoResposta{}).Where("id IN ?", opcaoIDs).Count(&total).Error)
	assert.Zero(t, total, "opções deveriam cascatear")

	require.NoError(t, db.Model(&entities.OpcaoRespostaPergunta{}).Count(&total).Error)
	assert.Zero(t, total, "vínculos deveriam cascatear")
}

func TestFormularioRepositoryDeleteInexistente(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormularioRepository(db)

	err := repo.Delete(99)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestFormularioRepositoryExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormularioRepository(db)

	formulario := criarFormularioTeste(t, db, "Existente")

	existe, err := repo.Exists(formulario.ID)
	require.NoError(t, err)
	assert.True(t, existe)

	existe, err = repo.Exists(formulario.ID + 100)
	require.NoError(t, err)
	assert.False(t, existe)
}
