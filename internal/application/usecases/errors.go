package usecases

import "errors"

// Erros de negócio devolvidos pelos casos de uso. Os handlers mapeiam
// cada um para 404 com a mensagem correspondente.
var (
	ErrFormularioNaoEncontrado    = errors.New("formulário não encontrado")
	ErrPerguntaNaoEncontrada      = errors.New("pergunta não encontrada")
	ErrOpcaoRespostaNaoEncontrada = errors.New("opção de resposta não encontrada")
	ErrVinculoNaoEncontrado       = errors.New("vínculo não encontrado")
)
