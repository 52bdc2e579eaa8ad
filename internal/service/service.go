// Package service implements the appointment-booking orchestrator: it composes
// the role directory, the payment validator, the store and the notifier into
// the booking, listing, cancellation and completion workflows, and owns the
// authorization policy and the temporal rules.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"agenda-service/internal/model"
)

// AgendamentoStore is the persistence contract. Slot uniqueness (INV: one
// active agendamento per (medico, data, horario) and per (paciente, data,
// horario)) is enforced inside Create; UpdateStatusFrom has compare-and-set
// semantics on the current status.
type AgendamentoStore interface {
	Create(ctx context.Context, a *model.Agendamento) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Agendamento, error)
	ListAll(ctx context.Context, status model.Status) ([]model.Agendamento, error)
	ListByPaciente(ctx context.Context, pacienteID int64, status model.Status) ([]model.Agendamento, error)
	ListByMedico(ctx context.Context, medicoID int64, status model.Status) ([]model.Agendamento, error)
	UpdateStatusFrom(ctx context.Context, id int64, from, to model.Status) error
}

// RoleDirectory resolves the role of a user. The token is the requester's own
// credential; the directory fails when the token is not authenticated or the
// subject does not exist.
type RoleDirectory interface {
	Role(ctx context.Context, token, userID int64) (model.Role, error)
}

// PaymentValidator returns the status the agendamento should assume after
// payment validation (CONFIRMADO or REJEITADO for well-formed payloads).
type PaymentValidator interface {
	Validate(ctx context.Context, tipo model.TipoPagamento, dados string) (model.Status, error)
}

// Notifier delivers status-change events. Publish failures never affect the
// outcome of the operation that produced the event.
type Notifier interface {
	Publish(ctx context.Context, n model.Notificacao) error
}

type Agenda struct {
	store     AgendamentoStore
	roles     RoleDirectory
	validator PaymentValidator
	notifier  Notifier
	log       *zap.Logger
	now       func() time.Time
}

func New(store AgendamentoStore, roles RoleDirectory, validator PaymentValidator, notifier Notifier, log *zap.Logger) *Agenda {
	return &Agenda{
		store:     store,
		roles:     roles,
		validator: validator,
		notifier:  notifier,
		log:       log,
		now:       time.Now,
	}
}

// Resultado is the success payload of the mutating operations.
type Resultado struct {
	ID       int64
	Status   model.Status
	Mensagem string
}

// notificar publishes a status-change event to the paciente and the medico.
// Best effort: failures are logged and swallowed.
func (s *Agenda) notificar(ctx context.Context, a *model.Agendamento, novo model.Status, mensagem string) {
	for _, userID := range []int64{a.PacienteID, a.MedicoID} {
		n := model.NewNotificacao(userID, a.ID, novo, mensagem)
		if err := s.notifier.Publish(ctx, n); err != nil {
			s.log.Warn("notificacao not published",
				zap.Int64("user_id", userID),
				zap.Int64("agendamento_id", a.ID),
				zap.String("status", string(novo)),
				zap.Error(err))
		}
	}
}
