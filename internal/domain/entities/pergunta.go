package entities

type Pergunta struct {
	ID                 uint            `json:"id" gorm:"primaryKey;column:id"`
	IDFormulario       uint            `json:"id_formulario" gorm:"column:id_formulario;not null;index"`
	Titulo             string          `json:"titulo" gorm:"column:titulo;not null"`
	Codigo             *string         `json:"codigo" gorm:"column:codigo"`
	OrientacaoResposta *string         `json:"orientacao_resposta" gorm:"column:orientacao_resposta"`
	Ordem              *int            `json:"ordem" gorm:"column:ordem"`
	Obrigatoria        bool            `json:"obrigatoria" gorm:"column:obrigatoria;default:false"`
	SubPergunta        bool            `json:"sub_pergunta" gorm:"column:sub_pergunta;default:false"`
	TipoPergunta       TipoPergunta    `json:"tipo_pergunta" gorm:"column:tipo_pergunta;type:varchar(64);not null"`
	OpcoesRespostas    []OpcaoResposta `json:"opcoes_respostas,omitempty" gorm:"foreignKey:IDPergunta;constraint:OnDelete:CASCADE"`

	// Vínculos de reuso de opções apontando para esta pergunta.
	Vinculos []OpcaoRespostaPergunta `json:"-" gorm:"foreignKey:IDPergunta;constraint:OnDelete:CASCADE"`
}

func (Pergunta) TableName() string {
	return "pergunta"
}
