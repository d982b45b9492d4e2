package dto

import (
	"encoding/json"
	"errors"
	"fmt"

	"formularios-backend/internal/domain/entities"
)

type CriarPerguntaRequest struct {
	IDFormulario       uint    `json:"id_formulario" validate:"required"`
	Titulo             string  `json:"titulo" validate:"required"`
	Codigo             *string `json:"codigo"`
	OrientacaoResposta *string `json:"orientacao_resposta"`
	Ordem              *int    `json:"ordem"`
	Obrigatoria        bool    `json:"obrigatoria"`
	SubPergunta        bool    `json:"sub_pergunta"`
	TipoPergunta       string  `json:"tipo_pergunta" validate:"required"`
}

func (r *CriarPerguntaRequest) ToEntity() entities.Pergunta {
	return entities.Pergunta{
		IDFormulario:       r.IDFormulario,
		Titulo:             r.Titulo,
		Codigo:             r.Codigo,
		OrientacaoResposta: r.OrientacaoResposta,
		Ordem:              r.Ordem,
		Obrigatoria:        r.Obrigatoria,
		SubPergunta:        r.SubPergunta,
		TipoPergunta:       entities.TipoPergunta(r.TipoPergunta),
	}
}

// AtualizarPerguntaRequest segue a mesma mecânica de presença do patch
// de formulário. id_formulario não é atualizável: a pergunta não muda
// de formulário.
type AtualizarPerguntaRequest struct {
	Titulo             *string `json:"titulo"`
	Codigo             *string `json:"codigo"`
	OrientacaoResposta *string `json:"orientacao_resposta"`
	Ordem              *int    `json:"ordem"`
	Obrigatoria        *bool   `json:"obrigatoria"`
	SubPergunta        *bool   `json:"sub_pergunta"`
	TipoPergunta       *string `json:"tipo_pergunta"`

	presentes map[string]bool
}

func (r *AtualizarPerguntaRequest) UnmarshalJSON(data []byte) error {
	type alias AtualizarPerguntaRequest
	var valores alias
	if err := json.Unmarshal(data, &valores); err != nil {
		return err
	}
	var campos map[string]json.RawMessage
	if err := json.Unmarshal(data, &campos); err != nil {
		return err
	}
	*r = AtualizarPerguntaRequest(valores)
	r.presentes = make(map[string]bool, len(campos))
	for campo := range campos {
		r.presentes[campo] = true
	}
	return nil
}

func (r *AtualizarPerguntaRequest) informado(campo string) bool {
	return r.presentes[campo]
}

func (r *AtualizarPerguntaRequest) Updates() (map[string]interface{}, error) {
	updates := make(map[string]interface{})

	if r.informado("titulo") {
		if r.Titulo == nil || *r.Titulo == "" {
			return nil, errors.New("titulo não pode ser vazio")
		}
		updates["titulo"] = *r.Titulo
	}
	if r.informado("codigo") {
		updates["codigo"] = r.Codigo
	}
	if r.informado("orientacao_resposta") {
		updates["orientacao_resposta"] = r.OrientacaoResposta
	}
	if r.informado("ordem") {
		updates["ordem"] = r.Ordem
	}
	if r.informado("obrigatoria") {
		if r.Obrigatoria == nil {
			return nil, errors.New("obrigatoria não pode ser nula")
		}
		updates["obrigatoria"] = *r.Obrigatoria
	}
	if r.informado("sub_pergunta") {
		if r.SubPergunta == nil {
			return nil, errors.New("sub_pergunta não pode ser nula")
		}
		updates["sub_pergunta"] = *r.SubPergunta
	}
	if r.informado("tipo_pergunta") {
		if r.TipoPergunta == nil {
			return nil, errors.New("tipo_pergunta não pode ser nulo")
		}
		tipo := entities.TipoPergunta(*r.TipoPergunta)
		if !tipo.IsValid() {
			return nil, fmt.Errorf("tipo_pergunta inválido: %s", *r.TipoPergunta)
		}
		updates["tipo_pergunta"] = tipo
	}

	return updates, nil
}

// PerguntaSimplesResponse é o shape de listagem, sem as opções.
type PerguntaSimplesResponse struct {
	ID                 uint                  `json:"id"`
	IDFormulario       uint                  `json:"id_formulario"`
	Titulo             string                `json:"titulo"`
	Codigo             *string               `json:"codigo"`
	OrientacaoResposta *string               `json:"orientacao_resposta"`
	Ordem              *int                  `json:"ordem"`
	Obrigatoria        bool                  `json:"obrigatoria"`
	SubPergunta        bool                  `json:"sub_pergunta"`
	TipoPergunta       entities.TipoPergunta `json:"tipo_pergunta"`
}

// PerguntaResponse é o shape completo, com as opções de resposta.
type PerguntaResponse struct {
	PerguntaSimplesResponse
	OpcoesRespostas []OpcaoRespostaResponse `json:"opcoes_respostas"`
}

// PerguntasPaginadasResponse é a resposta do modo de listagem detalhado.
type PerguntasPaginadasResponse struct {
	Items   []PerguntaSimplesResponse `json:"items"`
	Total   int64                     `json:"total"`
	Page    int                       `json:"page"`
	Size    int                       `json:"size"`
	Pages   int                       `json:"pages"`
	HasNext bool                      `json:"has_next"`
	HasPrev bool                      `json:"has_prev"`
}

func ToPerguntaSimplesResponse(p entities.Pergunta) PerguntaSimplesResponse {
	return PerguntaSimplesResponse{
		ID:                 p.ID,
		IDFormulario:       p.IDFormulario,
		Titulo:             p.Titulo,
		Codigo:             p.Codigo,
		OrientacaoResposta: p.OrientacaoResposta,
		Ordem:              p.Ordem,
		Obrigatoria:        p.Obrigatoria,
		SubPergunta:        p.SubPergunta,
		TipoPergunta:       p.TipoPergunta,
	}
}

func ToPerguntaSimplesResponses(perguntas []entities.Pergunta) []PerguntaSimplesResponse {
	responses := make([]PerguntaSimplesResponse, 0, len(perguntas))
	for _, p := range perguntas {
		responses = append(responses, ToPerguntaSimplesResponse(p))
	}
	return responses
}

func ToPerguntaResponse(p entities.Pergunta) PerguntaResponse {
	opcoes := make([]OpcaoRespostaResponse, 0, len(p.OpcoesRespostas))
	for _, o := range p.OpcoesRespostas {
		opcoes = append(opcoes, ToOpcaoRespostaResponse(o))
	}
	return PerguntaResponse{
		PerguntaSimplesResponse: ToPerguntaSimplesResponse(p),
		OpcoesRespostas:         opcoes,
	}
}

func ToPerguntaResponses(perguntas []entities.Pergunta) []PerguntaResponse {
	responses := make([]PerguntaResponse, 0, len(perguntas))
	for _, p := range perguntas {
		responses = append(responses, ToPerguntaResponse(p))
	}
	return responses
}
