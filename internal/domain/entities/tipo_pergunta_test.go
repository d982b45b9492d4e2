package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTipoPerguntaIsValid(t *testing.T) {
	validos := []TipoPergunta{
		TipoSimNao,
		TipoMultiplaEscolha,
		TipoUnicaEscolha,
		TipoTextoLivre,
		TipoInteiro,
		TipoNumeroDecimal,
	}
	for _, tipo := range validos {
		assert.True(t, tipo.IsValid(), "tipo %q deveria ser válido", tipo)
	}

	invalidos := []TipoPergunta{
		"",
		"sim_nao",
		"Sim_Nao",
		"TEXTO_LIVRE",
		"descricao",
		"inteiro",
	}
	for _, tipo := range invalidos {
		assert.False(t, tipo.IsValid(), "tipo %q não deveria ser válido", tipo)
	}
}

func TestTipoPerguntaValoresLiterais(t *testing.T) {
	// Os literais fazem parte do contrato da API.
	assert.Equal(t, TipoPergunta("Sim_Não"), TipoSimNao)
	assert.Equal(t, TipoPergunta("multipla_escolha"), TipoMultiplaEscolha)
	assert.Equal(t, TipoPergunta("unica_escolha"), TipoUnicaEscolha)
	assert.Equal(t, TipoPergunta("texto_livre"), TipoTextoLivre)
	assert.Equal(t, TipoPergunta("Inteiro"), TipoInteiro)
	assert.Equal(t, TipoPergunta("Numero com duas casa decimais"), TipoNumeroDecimal)
}
