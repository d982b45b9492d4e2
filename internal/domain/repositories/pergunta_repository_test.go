package repositories

import (
	"fmt"
	"testing"

	"formularios-backend/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func semearPerguntas(t *testing.T, db *gorm.DB, formularioID uint, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		ordem := n - i + 1
		pergunta := entities.Pergunta{
			IDFormulario: formularioID,
			Titulo:       fmt.Sprintf("Pergunta %02d", i),
			Ordem:        &ordem,
			TipoPergunta: entities.TipoTextoLivre,
		}
		require.NoError(t, db.Create(&pergunta).Error)
	}
}

func TestPerguntaRepositoryPaginacao(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPerguntaRepository(db)

	formulario := criarFormularioTeste(t, db, "F")
	semearPerguntas(t, db, formulario.ID, 25)

	total, err := repo.Count(PerguntaFiltro{})
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)

	esperados := []int{10, 10, 5}
	for page := 1; page <= 3; page++ {
		perguntas, err := repo.Find(PerguntaFiltro{}, "id asc", page, 10, false)
		require.NoError(t, err)
		assert.Len(t, perguntas, esperados[page-1], "page=%d", page)
	}

	// Página além do total: vazia, sem erro.
	perguntas, err := repo.Find(PerguntaFiltro{}, "id asc", 4, 10, false)
	require.NoError(t, err)
	assert.Empty(t, perguntas)
}

func TestPerguntaRepositoryFiltros(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPerguntaRepository(db)

	f1 := criarFormularioTeste(t, db, "F1")
	f2 := criarFormularioTeste(t, db, "F2")

	obrigatoria := entities.Pergunta{
		IDFormulario: f1.ID,
		Titulo:       "Obrigatória",
		Obrigatoria:  true,
		TipoPergunta: entities.TipoTextoLivre,
	}
	require.NoError(t, db.Create(&obrigatoria).Error)

	sub := entities.Pergunta{
		IDFormulario: f1.ID,
		Titulo:       "Condicional",
		SubPergunta:  true,
		TipoPergunta: entities.TipoSimNao,
	}
	require.NoError(t, db.Create(&sub).Error)

	outra := entities.Pergunta{
		IDFormulario: f2.ID,
		Titulo:       "De outro formulário",
		TipoPergunta: entities.TipoTextoLivre,
	}
	require.NoError(t, db.Create(&outra).Error)

	t.Run("por formulário", func(t *testing.T) {
		perguntas, err := repo.Find(PerguntaFiltro{FormularioID: &f1.ID}, "", 1, 10, false)
		require.NoError(t, err)
		assert.Len(t, perguntas, 2)
	})

	t.Run("por tipo", func(t *testing.T) {
		tipo := entities.TipoTextoLivre
		perguntas, err := repo.Find(PerguntaFiltro{TipoPergunta: &tipo}, "", 1, 10, false)
		require.NoError(t, err)
		require.Len(t, perguntas, 2)
		for _, p := range perguntas {
			assert.Equal(t, entities.TipoTextoLivre, p.TipoPergunta)
		}
	})

	t.Run("por obrigatoriedade", func(t *testing.T) {
		sim := true
		perguntas, err := repo.Find(PerguntaFiltro{Obrigatoria: &sim}, "", 1, 10, false)
		require.NoError(t, err)
		require.Len(t, perguntas, 1)
		assert.Equal(t, "Obrigatória", perguntas[0].Titulo)
	})

	t.Run("filtros combinados com AND", func(t *testing.T) {
		tipo := entities.TipoSimNao
		simSub := true
		filtro := PerguntaFiltro{
			FormularioID: &f1.ID,
			TipoPergunta: &tipo,
			SubPergunta:  &simSub,
		}
		perguntas, err := repo.Find(filtro, "", 1, 10, false)
		require.NoError(t, err)
		require.Len(t, perguntas, 1)
		assert.Equal(t, "Condicional", perguntas[0].Titulo)

		total, err := repo.Count(filtro)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
	})
}

func TestPerguntaRepositoryOrdenacao(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPerguntaRepository(db)

	formulario := criarFormularioTeste(t, db, "F")
	semearPerguntas(t, db, formulario.ID, 3)

	t.Run("por titulo desc", func(t *testing.T) {
		perguntas, err := repo.Find(PerguntaFiltro{}, "titulo desc", 1, 10, false)
		require.NoError(t, err)
		require.Len(t, perguntas, 3)
		assert.Equal(t, "Pergunta 03", perguntas[0].Titulo)
		assert.Equal(t, "Pergunta 01", perguntas[2].Titulo)
	})

	t.Run("por ordem asc", func(t *testing.T) {
		// Ordem de exibição foi semeada invertida em relação ao id.
		perguntas, err := repo.Find(PerguntaFiltro{}, "ordem asc", 1, 10, false)
		require.NoError(t, err)
		require.Len(t, perguntas, 3)
		assert.Equal(t, "Pergunta 03", perguntas[0].Titulo)
	})

	t.Run("sem ordenação não falha", func(t *testing.T) {
		perguntas, err := repo.Find(PerguntaFiltro{}, "", 1, 10, false)
		require.NoError(t, err)
		assert.Len(t, perguntas, 3)
	})
}

func TestPerguntaRepositoryFindComOpcoes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPerguntaRepository(db)

	formulario := criarFormularioTeste(t, db, "F")
	pergunta := criarPerguntaTeste(t, db, formulario.ID, "Escolha", entities.TipoUnicaEscolha)
	criarOpcaoTeste(t, db, pergunta.ID, "A")
	criarOpcaoTeste(t, db, pergunta.ID, "B")

	comOpcoes, err := repo.Find(PerguntaFiltro{}, "", 1, 10, true)
	require.NoError(t, err)
	require.Len(t, comOpcoes, 1)
	assert.Len(t, comOpcoes[0].OpcoesRespostas, 2)

	semOpcoes, err := repo.Find(PerguntaFiltro{}, "", 1, 10, false)
	require.NoError(t, err)
	require.Len(t, semOpcoes, 1)
	assert.Empty(t, semOpcoes[0].OpcoesRespostas)
}

func TestPerguntaRepositoryUpdateParcial(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPerguntaRepository(db)

	formulario := criarFormularioTeste(t, db, "F")
	codigo := "Q1"
	ordem := 7
	pergunta := entities.Pergunta{
		IDFormulario: formulario.ID,
		Titulo:       "Antes",
		Codigo:       &codigo,
		Ordem:        &ordem,
		Obrigatoria:  true,
		TipoPergunta: entities.TipoInteiro,
	}
	require.NoError(t, db.Create(&pergunta).Error)

	atualizada, err := repo.Update(pergunta.ID, map[string]interface{}{"titulo": "Depois"})
	require.NoError(t, err)

	assert.Equal(t, "Depois", atualizada.Titulo)
	require.NotNil(t, atualizada.Codigo)
	assert.Equal(t, "Q1", *atualizada.Codigo)
	require.NotNil(t, atualizada.Ordem)
	assert.Equal(t, 7, *atualizada.Ordem)
	assert.True(t, atualizada.Obrigatoria)
	assert.Equal(t, entities.TipoInteiro, atualizada.TipoPergunta)
}

func TestPerguntaRepositoryUpdateLimpaCampoOpcional(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPerguntaRepository(db)

	formulario := criarFormularioTeste(t, db, "F")
	codigo := "Q1"
	pergunta := entities.Pergunta{
		IDFormulario: formulario.ID,
		Titulo:       "P",
		Codigo:       &codigo,
		TipoPergunta: entities.TipoTextoLivre,
	}
	require.NoError(t, db.Create(&pergunta).Error)

	var codigoNulo *string
	atualizada, err := repo.Update(pergunta.ID, map[string]interface{}{"codigo": codigoNulo})
	require.NoError(t, err)
	assert.Nil(t, atualizada.Codigo)
}

func TestPerguntaRepositoryDeleteCascateiaOpcoes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPerguntaRepository(db)

	formulario := criarFormularioTeste(t, db, "F")
	pergunta := criarPerguntaTeste(t, db, formulario.ID, "P", entities.TipoMultiplaEscolha)
	opcao := criarOpcaoTeste(t, db, pergunta.ID, "O")
	vinculo := entities.OpcaoRespostaPergunta{IDOpcaoResposta: opcao.ID, IDPergunta: pergunta.ID}
	require.NoError(t, db.Create(&vinculo).Error)

	require.NoError(t, repo.Delete(pergunta.ID))

	var total int64
	require.NoError(t, db.Model(&entities.OpcaoResposta{}).Count(&total).Error)
	assert.Zero(t, total)
	require.NoError(t, db.Model(&entities.OpcaoRespostaPergunta{}).Count(&total).Error)
	assert.Zero(t, total)
}
