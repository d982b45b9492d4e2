package migrations

import (
	"formularios-backend/internal/domain/entities"

	"gorm.io/gorm"
)

// Migrate cria as tabelas do modelo. As foreign keys saem com ON DELETE
// CASCADE, que é onde mora o cascade de formulário → pergunta → opção
// → vínculo.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Formulario{},
		&entities.Pergunta{},
		&entities.OpcaoResposta{},
		&entities.OpcaoRespostaPergunta{},
	)
}
