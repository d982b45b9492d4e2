package dto

import (
	"encoding/json"
	"errors"

	"formularios-backend/internal/domain/entities"
)

type CriarFormularioRequest struct {
	Titulo    string  `json:"titulo" validate:"required"`
	Descricao *string `json:"descricao"`
	Ordem     *int    `json:"ordem"`
}

func (r *CriarFormularioRequest) ToEntity() entities.Formulario {
	return entities.Formulario{
		Titulo:    r.Titulo,
		Descricao: r.Descricao,
		Ordem:     r.Ordem,
	}
}

// AtualizarFormularioRequest carrega, além dos valores, o conjunto de
// campos presentes no JSON: um campo omitido do patch nunca sobrescreve
// o valor anterior, enquanto null explícito limpa campos opcionais.
type AtualizarFormularioRequest struct {
	Titulo    *string `json:"titulo"`
	Descricao *string `json:"descricao"`
	Ordem     *int    `json:"ordem"`

	presentes map[string]bool
}

func (r *AtualizarFormularioRequest) UnmarshalJSON(data []byte) error {
	type alias AtualizarFormularioRequest
	var valores alias
	if err := json.Unmarshal(data, &valores); err != nil {
		return err
	}
	var campos map[string]json.RawMessage
	if err := json.Unmarshal(data, &campos); err != nil {
		return err
	}
	*r = AtualizarFormularioRequest(valores)
	r.presentes = make(map[string]bool, len(campos))
	for campo := range campos {
		r.presentes[campo] = true
	}
	return nil
}

func (r *AtualizarFormularioRequest) informado(campo string) bool {
	return r.presentes[campo]
}

// Updates monta o mapa coluna→valor aplicado pelo gateway. Campos
// ausentes ficam de fora; titulo é obrigatório e não aceita null.
func (r *AtualizarFormularioRequest) Updates() (map[string]interface{}, error) {
	updates := make(map[string]interface{})

	if r.informado("titulo") {
		if r.Titulo == nil || *r.Titulo == "" {
			return nil, errors.New("titulo não pode ser vazio")
		}
		updates["titulo"] = *r.Titulo
	}
	if r.informado("descricao") {
		updates["descricao"] = r.Descricao
	}
	if r.informado("ordem") {
		updates["ordem"] = r.Ordem
	}

	return updates, nil
}

// FormularioSimplesResponse é o shape de listagem, sem perguntas.
type FormularioSimplesResponse struct {
	ID        uint    `json:"id"`
	Titulo    string  `json:"titulo"`
	Descricao *string `json:"descricao"`
	Ordem     *int    `json:"ordem"`
}

// FormularioResponse é o shape completo, com perguntas e suas opções.
type FormularioResponse struct {
	ID        uint               `json:"id"`
	Titulo    string             `json:"titulo"`
	Descricao *string            `json:"descricao"`
	Ordem     *int               `json:"ordem"`
	Perguntas []PerguntaResponse `json:"perguntas"`
}

func ToFormularioSimplesResponse(f entities.Formulario) FormularioSimplesResponse {
	return FormularioSimplesResponse{
		ID:        f.ID,
		Titulo:    f.Titulo,
		Descricao: f.Descricao,
		Ordem:     f.Ordem,
	}
}

func ToFormularioSimplesResponses(formularios []entities.Formulario) []FormularioSimplesResponse {
	responses := make([]FormularioSimplesResponse, 0, len(formularios))
	for _, f := range formularios {
		responses = append(responses, ToFormularioSimplesResponse(f))
	}
	return responses
}

func ToFormularioResponse(f entities.Formulario) FormularioResponse {
	perguntas := make([]PerguntaResponse, 0, len(f.Perguntas))
	for _, p := range f.Perguntas {
		perguntas = append(perguntas, ToPerguntaResponse(p))
	}
	return FormularioResponse{
		ID:        f.ID,
		Titulo:    f.Titulo,
		Descricao: f.Descricao,
		Ordem:     f.Ordem,
		Perguntas: perguntas,
	}
}
