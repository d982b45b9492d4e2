package entities

type OpcaoResposta struct {
	ID             uint    `json:"id" gorm:"primaryKey;column:id"`
	IDPergunta     uint    `json:"id_pergunta" gorm:"column:id_pergunta;not null;index"`
	Resposta       string  `json:"resposta" gorm:"column:resposta;not null"`
	Ordem          *int    `json:"ordem" gorm:"column:ordem"`
	RespostaAberta bool    `json:"resposta_aberta" gorm:"column:resposta_aberta;default:false"`

	Vinculos []OpcaoRespostaPergunta `json:"-" gorm:"foreignKey:IDOpcaoResposta;constraint:OnDelete:CASCADE"`
}

func (OpcaoResposta) TableName() string {
	return "opcoes_respostas"
}
