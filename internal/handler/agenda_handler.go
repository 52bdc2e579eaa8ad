package handler

import (
	"context"

	agendav1 "agenda-service/gen/agenda/v1"
	"agenda-service/internal/model"
	"agenda-service/internal/service"
)

const dataLayout = "2006-01-02"

func (h *Handler) AgendarConsulta(ctx context.Context, req *agendav1.AgendarConsultaRequest) (*agendav1.OperacaoResponse, error) {
	res, err := h.agenda.AgendarConsulta(ctx, service.AgendarRequest{
		Token:          req.Token,
		PacienteID:     req.PacienteId,
		MedicoID:       req.MedicoId,
		Data:           req.Data,
		Horario:        int(req.Horario),
		Especialidade:  req.Especialidade,
		TipoPagamento:  req.TipoPagamento,
		DadosPagamento: req.DadosPagamento,
	})
	if err != nil {
		return nil, rpcError(err)
	}
	return toOperacao(res), nil
}

func (h *Handler) ConsultarAgendamentos(ctx context.Context, req *agendav1.ConsultarAgendamentosRequest) (*agendav1.ConsultarAgendamentosResponse, error) {
	list, err := h.agenda.ConsultarAgendamentos(ctx, req.Token, req.Status)
	if err != nil {
		return nil, rpcError(err)
	}
	out := make([]*agendav1.Agendamento, len(list))
	for i := range list {
		out[i] = toProto(&list[i])
	}
	return &agendav1.ConsultarAgendamentosResponse{Agendamentos: out}, nil
}

func (h *Handler) CancelarAgendamento(ctx context.Context, req *agendav1.CancelarAgendamentoRequest) (*agendav1.OperacaoResponse, error) {
	res, err := h.agenda.CancelarAgendamento(ctx, req.Token, req.AgendamentoId)
	if err != nil {
		return nil, rpcError(err)
	}
	return toOperacao(res), nil
}

func (h *Handler) ConcluirAgendamento(ctx context.Context, req *agendav1.ConcluirAgendamentoRequest) (*agendav1.OperacaoResponse, error) {
	res, err := h.agenda.ConcluirAgendamento(ctx, req.Token, req.AgendamentoId)
	if err != nil {
		return nil, rpcError(err)
	}
	return toOperacao(res), nil
}

func toOperacao(r *service.Resultado) *agendav1.OperacaoResponse {
	return &agendav1.OperacaoResponse{
		Id:       r.ID,
		Status:   string(r.Status),
		Mensagem: r.Mensagem,
	}
}

func toProto(a *model.Agendamento) *agendav1.Agendamento {
	return &agendav1.Agendamento{
		Id:            a.ID,
		PacienteId:    a.PacienteID,
		MedicoId:      a.MedicoID,
		Data:          a.Data.Format(dataLayout),
		Horario:       int32(a.Horario),
		Especialidade: string(a.Especialidade),
		TipoPagamento: string(a.TipoPagamento),
		Status:        string(a.Status),
	}
}
