package entities

type Formulario struct {
	ID        uint       `json:"id" gorm:"primaryKey;column:id"`
	Titulo    string     `json:"titulo" gorm:"column:titulo;not null"`
	Descricao *string    `json:"descricao" gorm:"column:descricao"`
	Ordem     *int       `json:"ordem" gorm:"column:ordem"`
	Perguntas []Pergunta `json:"perguntas,omitempty" gorm:"foreignKey:IDFormulario;constraint:OnDelete:CASCADE"`
}

func (Formulario) TableName() string {
	return "formulario"
}
