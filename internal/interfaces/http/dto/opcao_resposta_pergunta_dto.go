package dto

import "formularios-backend/internal/domain/entities"

type CriarOpcaoRespostaPerguntaRequest struct {
	IDOpcaoResposta uint `json:"id_opcao_resposta" validate:"required"`
	IDPergunta      uint `json:"id_pergunta" validate:"required"`
}

func (r *CriarOpcaoRespostaPerguntaRequest) ToEntity() entities.OpcaoRespostaPergunta {
	return entities.OpcaoRespostaPergunta{
		IDOpcaoResposta: r.IDOpcaoResposta,
		IDPergunta:      r.IDPergunta,
	}
}

type OpcaoRespostaPerguntaResponse struct {
	ID              uint `json:"id"`
	IDOpcaoResposta uint `json:"id_opcao_resposta"`
	IDPergunta      uint `json:"id_pergunta"`
}

func ToOpcaoRespostaPerguntaResponse(v entities.OpcaoRespostaPergunta) OpcaoRespostaPerguntaResponse {
	return OpcaoRespostaPerguntaResponse{
		ID:              v.ID,
		IDOpcaoResposta: v.IDOpcaoResposta,
		IDPergunta:      v.IDPergunta,
	}
}

func ToOpcaoRespostaPerguntaResponses(vinculos []entities.OpcaoRespostaPergunta) []OpcaoRespostaPerguntaResponse {
	responses := make([]OpcaoRespostaPerguntaResponse, 0, len(vinculos))
	for _, v := range vinculos {
		responses = append(responses, ToOpcaoRespostaPerguntaResponse(v))
	}
	return responses
}
