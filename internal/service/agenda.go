package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"agenda-service/internal/apperr"
	"agenda-service/internal/model"
)

const dataLayout = "2006-01-02"

type AgendarRequest struct {
	Token          int64
	PacienteID     int64
	MedicoID       int64
	Data           string // YYYY-MM-DD
	Horario        int
	Especialidade  string
	TipoPagamento  string
	DadosPagamento string
}

// AgendarConsulta runs the booking saga: validate input, authorize the
// requester, check the paciente and medico roles, insert the agendamento as
// PENDENTE, validate the payment and apply the resulting status. The insert is
// the conflict gate: the store's uniqueness constraints decide the winner when
// two bookings race for the same slot.
func (s *Agenda) AgendarConsulta(ctx context.Context, req AgendarRequest) (*Resultado, error) {
	if req.Token == 0 || req.PacienteID == 0 || req.MedicoID == 0 || req.Data == "" ||
		req.Horario == 0 || req.Especialidade == "" || req.TipoPagamento == "" || req.DadosPagamento == "" {
		return nil, apperr.Validation("Todos os campos são obrigatórios.")
	}

	if req.Horario < model.HorarioMin || req.Horario > model.HorarioMax {
		return nil, apperr.Validation("Horário inválido. A clínica funciona das 06:00 às 17:00.")
	}

	data, err := time.ParseInLocation(dataLayout, req.Data, time.Local)
	if err != nil {
		return nil, apperr.Validation("Data inválida. Use o formato YYYY-MM-DD.")
	}

	a := &model.Agendamento{
		PacienteID:    req.PacienteID,
		MedicoID:      req.MedicoID,
		Data:          data,
		Horario:       req.Horario,
		Especialidade: model.Especialidade(req.Especialidade),
		TipoPagamento: model.TipoPagamento(req.TipoPagamento),
	}

	if s.now().After(a.DataHora()) {
		return nil, apperr.Validation("Não é possível agendar consultas para datas passadas.")
	}

	if !a.Especialidade.Valid() {
		return nil, apperr.Validation(fmt.Sprintf("Especialidade inválida: %s", req.Especialidade))
	}
	if !a.TipoPagamento.Valid() {
		return nil, apperr.Validation(fmt.Sprintf("Tipo de Pagamento inválido: %s", req.TipoPagamento))
	}

	// the token is the requester's own id in the users service
	requesterRole, err := s.roles.Role(ctx, req.Token, req.Token)
	if err != nil {
		return nil, err
	}
	switch requesterRole {
	case model.RolePaciente:
		if req.Token != req.PacienteID {
			return nil, apperr.Authorization("Paciente só pode agendar consultas para si mesmo.")
		}
	case model.RoleRecepcionista:
		// may book on behalf of any paciente
	case model.RoleMedico, model.RoleAdministrador:
		return nil, apperr.Authorization("Apenas Pacientes e Recepcionistas podem criar agendamentos.")
	default:
		return nil, apperr.Authorization("Apenas Pacientes e Recepcionistas podem criar agendamentos.")
	}

	pacienteRole, err := s.roles.Role(ctx, req.Token, req.PacienteID)
	if err != nil {
		return nil, err
	}
	if pacienteRole != model.RolePaciente {
		return nil, apperr.Validation(fmt.Sprintf("O ID informado (%d) não pertence a um Paciente.", req.PacienteID))
	}

	medicoRole, err := s.roles.Role(ctx, req.Token, req.MedicoID)
	if err != nil {
		return nil, err
	}
	if medicoRole != model.RoleMedico {
		return nil, apperr.Validation(fmt.Sprintf("O ID informado (%d) não pertence a um Médico.", req.MedicoID))
	}

	id, err := s.store.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	a.ID = id

	status, err := s.validator.Validate(ctx, a.TipoPagamento, req.DadosPagamento)
	if err != nil {
		s.compensar(ctx, id)
		return nil, err
	}
	if !status.Valid() {
		s.compensar(ctx, id)
		return nil, apperr.Validation(fmt.Sprintf("Status inválido: %s", status))
	}

	if err := s.store.UpdateStatusFrom(ctx, id, model.StatusPendente, status); err != nil {
		s.compensar(ctx, id)
		return nil, err
	}
	a.Status = status

	mensagem := "Agendamento rejeitado."
	if status == model.StatusConfirmado {
		mensagem = "Agendamento confirmado."
	}
	s.notificar(ctx, a, status, mensagem)

	return &Resultado{ID: id, Status: status, Mensagem: mensagem}, nil
}

// compensar releases the slots held by a booking whose validation step did
// not finish: best-effort CAS PENDENTE -> CANCELADO, so no row is left in a
// non-terminal limbo and the constraint indexes free both slots.
func (s *Agenda) compensar(ctx context.Context, id int64) {
	if err := s.store.UpdateStatusFrom(ctx, id, model.StatusPendente, model.StatusCancelado); err != nil {
		s.log.Warn("compensation failed, agendamento left PENDENTE",
			zap.Int64("agendamento_id", id), zap.Error(err))
	}
}

// ConsultarAgendamentos lists agendamentos visible to the requester: own rows
// for pacientes and medicos, everything for recepcionistas e administradores.
func (s *Agenda) ConsultarAgendamentos(ctx context.Context, token int64, statusFilter string) ([]model.Agendamento, error) {
	if token == 0 {
		return nil, apperr.Validation("Token é obrigatório.")
	}

	status := model.Status(statusFilter)
	if statusFilter != "" && !status.Valid() {
		return nil, apperr.Validation(fmt.Sprintf("Status inválido: %s", statusFilter))
	}

	role, err := s.roles.Role(ctx, token, token)
	if err != nil {
		return nil, err
	}

	switch role {
	case model.RolePaciente:
		return s.store.ListByPaciente(ctx, token, status)
	case model.RoleMedico:
		return s.store.ListByMedico(ctx, token, status)
	case model.RoleRecepcionista, model.RoleAdministrador:
		return s.store.ListAll(ctx, status)
	default:
		return nil, apperr.Authorization("Permissão negada para consultar agendamentos.")
	}
}

// CancelarAgendamento transitions a CONFIRMADO agendamento to CANCELADO. Only
// the owning paciente or a recepcionista may cancel.
func (s *Agenda) CancelarAgendamento(ctx context.Context, token, agendamentoID int64) (*Resultado, error) {
	if token == 0 {
		return nil, apperr.Validation("Token é obrigatório.")
	}
	if agendamentoID == 0 {
		return nil, apperr.Validation("O id do agendamento é obrigatório.")
	}

	role, err := s.roles.Role(ctx, token, token)
	if err != nil {
		return nil, err
	}

	a, err := s.store.GetByID(ctx, agendamentoID)
	if err != nil {
		return nil, err
	}

	if a.Status != model.StatusConfirmado {
		return nil, apperr.State("Apenas agendamentos com status CONFIRMADO podem ser cancelados.")
	}

	switch role {
	case model.RolePaciente:
		if token != a.PacienteID {
			return nil, apperr.Authorization("Paciente só pode cancelar seus próprios agendamentos.")
		}
	case model.RoleRecepcionista:
		// unrestricted
	default:
		return nil, apperr.Authorization("Permissão negada para cancelar agendamentos.")
	}

	if err := s.store.UpdateStatusFrom(ctx, agendamentoID, model.StatusConfirmado, model.StatusCancelado); err != nil {
		return nil, err
	}

	mensagem := "Agendamento cancelado com sucesso."
	s.notificar(ctx, a, model.StatusCancelado, mensagem)

	return &Resultado{ID: agendamentoID, Status: model.StatusCancelado, Mensagem: mensagem}, nil
}

// ConcluirAgendamento transitions a CONFIRMADO agendamento to CONCLUIDO. Only
// the owning medico may conclude, and never before the scheduled time.
func (s *Agenda) ConcluirAgendamento(ctx context.Context, token, agendamentoID int64) (*Resultado, error) {
	if token == 0 {
		return nil, apperr.Validation("Token é obrigatório.")
	}
	if agendamentoID == 0 {
		return nil, apperr.Validation("O id do agendamento é obrigatório.")
	}

	role, err := s.roles.Role(ctx, token, token)
	if err != nil {
		return nil, err
	}
	if role != model.RoleMedico {
		return nil, apperr.Authorization("Apenas médicos podem concluir agendamentos.")
	}

	a, err := s.store.GetByID(ctx, agendamentoID)
	if err != nil {
		return nil, err
	}

	if a.Status != model.StatusConfirmado {
		return nil, apperr.State("Apenas agendamentos com status CONFIRMADO podem ser concluídos.")
	}

	if token != a.MedicoID {
		return nil, apperr.Authorization("Médico só pode concluir agendamentos sob sua responsabilidade.")
	}

	if s.now().Before(a.DataHora()) {
		return nil, apperr.State("Não é possível concluir um agendamento antes do horário marcado.")
	}

	if err := s.store.UpdateStatusFrom(ctx, agendamentoID, model.StatusConfirmado, model.StatusConcluido); err != nil {
		return nil, err
	}

	mensagem := "Agendamento concluído com sucesso."
	s.notificar(ctx, a, model.StatusConcluido, mensagem)

	return &Resultado{ID: agendamentoID, Status: model.StatusConcluido, Mensagem: mensagem}, nil
}
