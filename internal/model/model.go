package model

import "time"

// Status of an agendamento. PENDENTE is the only non-terminal entry state;
// REJEITADO, CANCELADO and CONCLUIDO are terminal.
type Status string

const (
	StatusPendente   Status = "PENDENTE"
	StatusConfirmado Status = "CONFIRMADO"
	StatusRejeitado  Status = "REJEITADO"
	StatusCancelado  Status = "CANCELADO"
	StatusConcluido  Status = "CONCLUIDO"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPendente, StatusConfirmado, StatusRejeitado, StatusCancelado, StatusConcluido:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	switch s {
	case StatusRejeitado, StatusCancelado, StatusConcluido:
		return true
	}
	return false
}

type Especialidade string

const (
	EspCardiologia  Especialidade = "CARDIOLOGIA"
	EspPediatria    Especialidade = "PEDIATRIA"
	EspOrtopedia    Especialidade = "ORTOPEDIA"
	EspDermatologia Especialidade = "DERMATOLOGIA"
)

func (e Especialidade) Valid() bool {
	switch e {
	case EspCardiologia, EspPediatria, EspOrtopedia, EspDermatologia:
		return true
	}
	return false
}

type TipoPagamento string

const (
	PagConvenio   TipoPagamento = "CONVENIO"
	PagParticular TipoPagamento = "PARTICULAR"
)

func (t TipoPagamento) Valid() bool {
	return t == PagConvenio || t == PagParticular
}

// Role of a user as reported by the users service. Closed set: role checks
// switch exhaustively over these values and treat anything else as a broken
// directory response, never as an implicit grant.
type Role string

const (
	RolePaciente      Role = "PACIENTE"
	RoleMedico        Role = "MEDICO"
	RoleRecepcionista Role = "RECEPCIONISTA"
	RoleAdministrador Role = "ADMINISTRADOR"
)

func (r Role) Valid() bool {
	switch r {
	case RolePaciente, RoleMedico, RoleRecepcionista, RoleAdministrador:
		return true
	}
	return false
}

// Clinic hours: appointments start on the hour, 06:00 up to and including the
// 16:00 slot (the clinic closes at 17:00).
const (
	HorarioMin = 6
	HorarioMax = 16
)

type Agendamento struct {
	ID            int64
	PacienteID    int64
	MedicoID      int64
	Data          time.Time // calendar date, time part zero
	Horario       int
	Especialidade Especialidade
	TipoPagamento TipoPagamento
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DataHora combines the calendar date and the hour slot into the scheduled
// wall-clock instant.
func (a *Agendamento) DataHora() time.Time {
	return time.Date(a.Data.Year(), a.Data.Month(), a.Data.Day(), a.Horario, 0, 0, 0, time.Local)
}
