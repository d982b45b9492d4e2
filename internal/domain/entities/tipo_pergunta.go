package entities

// TipoPergunta define o tipo de resposta esperado por uma pergunta.
// Os valores literais fazem parte do contrato da API e são gravados
// como string no banco.
type TipoPergunta string

const (
	TipoSimNao          TipoPergunta = "Sim_Não"
	TipoMultiplaEscolha TipoPergunta = "multipla_escolha"
	TipoUnicaEscolha    TipoPergunta = "unica_escolha"
	TipoTextoLivre      TipoPergunta = "texto_livre"
	TipoInteiro         TipoPergunta = "Inteiro"
	TipoNumeroDecimal   TipoPergunta = "Numero com duas casa decimais"
)

// IsValid verifica se o valor pertence ao conjunto fechado de tipos.
func (t TipoPergunta) IsValid() bool {
	switch t {
	case TipoSimNao, TipoMultiplaEscolha, TipoUnicaEscolha,
		TipoTextoLivre, TipoInteiro, TipoNumeroDecimal:
		return true
	}
	return false
}
