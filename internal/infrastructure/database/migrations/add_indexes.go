package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes cria os índices dos caminhos de consulta mais quentes: os
// filtros da listagem de perguntas e as buscas por pergunta nas opções
// e nos vínculos.
func AddIndexes(db *gorm.DB) error {
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_pergunta_id_formulario ON pergunta (id_formulario)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_pergunta_tipo_pergunta ON pergunta (tipo_pergunta)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_pergunta_ordem ON pergunta (ordem)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_opcoes_respostas_id_pergunta ON opcoes_respostas (id_pergunta)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_orp_id_pergunta ON opcoes_resposta_pergunta (id_pergunta)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_orp_id_opcao_resposta ON opcoes_resposta_pergunta (id_opcao_resposta)").Error; err != nil {
		return err
	}

	return nil
}
