package dto

import (
	"encoding/json"
	"errors"

	"formularios-backend/internal/domain/entities"
)

type CriarOpcaoRespostaRequest struct {
	IDPergunta     uint   `json:"id_pergunta" validate:"required"`
	Resposta       string `json:"resposta" validate:"required"`
	Ordem          *int   `json:"ordem"`
	RespostaAberta bool   `json:"resposta_aberta"`
}

func (r *CriarOpcaoRespostaRequest) ToEntity() entities.OpcaoResposta {
	return entities.OpcaoResposta{
		IDPergunta:     r.IDPergunta,
		Resposta:       r.Resposta,
		Ordem:          r.Ordem,
		RespostaAberta: r.RespostaAberta,
	}
}

type AtualizarOpcaoRespostaRequest struct {
	Resposta       *string `json:"resposta"`
	Ordem          *int    `json:"ordem"`
	RespostaAberta *bool   `json:"resposta_aberta"`

	presentes map[string]bool
}

func (r *AtualizarOpcaoRespostaRequest) UnmarshalJSON(data []byte) error {
	type alias AtualizarOpcaoRespostaRequest
	var valores alias
	if err := json.Unmarshal(data, &valores); err != nil {
		return err
	}
	var campos map[string]json.RawMessage
	if err := json.Unmarshal(data, &campos); err != nil {
		return err
	}
	*r = AtualizarOpcaoRespostaRequest(valores)
	r.presentes = make(map[string]bool, len(campos))
	for campo := range campos {
		r.presentes[campo] = true
	}
	return nil
}

func (r *AtualizarOpcaoRespostaRequest) informado(campo string) bool {
	return r.presentes[campo]
}

func (r *AtualizarOpcaoRespostaRequest) Updates() (map[string]interface{}, error) {
	updates := make(map[string]interface{})

	if r.informado("resposta") {
		if r.Resposta == nil || *r.Resposta == "" {
			return nil, errors.New("resposta não pode ser vazia")
		}
		updates["resposta"] = *r.Resposta
	}
	if r.informado("ordem") {
		updates["ordem"] = r.Ordem
	}
	if r.informado("resposta_aberta") {
		if r.RespostaAberta == nil {
			return nil, errors.New("resposta_aberta não pode ser nula")
		}
		updates["resposta_aberta"] = *r.RespostaAberta
	}

	return updates, nil
}

type OpcaoRespostaResponse struct {
	ID             uint   `json:"id"`
	IDPergunta     uint   `json:"id_pergunta"`
	Resposta       string `json:"resposta"`
	Ordem          *int   `json:"ordem"`
	RespostaAberta bool   `json:"resposta_aberta"`
}

func ToOpcaoRespostaResponse(o entities.OpcaoResposta) OpcaoRespostaResponse {
	return OpcaoRespostaResponse{
		ID:             o.ID,
		IDPergunta:     o.IDPergunta,
		Resposta:       o.Resposta,
		Ordem:          o.Ordem,
		RespostaAberta: o.RespostaAberta,
	}
}

func ToOpcaoRespostaResponses(opcoes []entities.OpcaoResposta) []OpcaoRespostaResponse {
	responses := make([]OpcaoRespostaResponse, 0, len(opcoes))
	for _, o := range opcoes {
		responses = append(responses, ToOpcaoRespostaResponse(o))
	}
	return responses
}
