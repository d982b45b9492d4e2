package repositories

import (
	"testing"

	"formularios-backend/internal/domain/entities"
	"formularios-backend/internal/infrastructure/database/migrations"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB abre um sqlite em memória com foreign keys ligadas, para
// que o ON DELETE CASCADE das migrações valha também nos testes.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.Migrate(db))
	require.NoError(t, migrations.AddIndexes(db))

	return db
}

func criarFormularioTeste(t *testing.T, db *gorm.DB, titulo string) entities.Formulario {
	t.Helper()
	formulario := entities.Formulario{Titulo: titulo}
	require.NoError(t, db.Create(&formulario).Error)
	return formulario
}

func criarPerguntaTeste(t *testing.T, db *gorm.DB, formularioID uint, titulo string, tipo entities.TipoPergunta) entities.Pergunta {
	t.Helper()
	pergunta := entities.Pergunta{
		IDFormulario: formularioID,
		Titulo:       titulo,
		TipoPergunta: tipo,
	}
	require.NoError(t, db.Create(&pergunta).Error)
	return pergunta
}

func criarOpcaoTeste(t *testing.T, db *gorm.DB, perguntaID uint, resposta string) entities.OpcaoResposta {
	t.Helper()
	opcao := entities.OpcaoResposta{
		IDPergunta: perguntaID,
		Resposta:   resposta,
	}
	require.NoError(t, db.Create(&opcao).Error)
	return opcao
}
