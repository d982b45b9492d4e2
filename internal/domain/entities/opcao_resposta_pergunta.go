package entities

// OpcaoRespostaPergunta associa uma opção existente a uma pergunta além
// da pergunta "dona" da opção, permitindo reuso de opções. Pares
// duplicados são permitidos: não há constraint de unicidade.
type OpcaoRespostaPergunta struct {
	ID              uint `json:"id" gorm:"primaryKey;column:id"`
	IDOpcaoResposta uint `json:"id_opcao_resposta" gorm:"column:id_opcao_resposta;not null;index"`
	IDPergunta      uint `json:"id_pergunta" gorm:"column:id_pergunta;not null;index"`
}

func (OpcaoRespostaPergunta) TableName() string {
	return "opcoes_resposta_pergunta"
}
