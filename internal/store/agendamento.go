package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"agenda-service/internal/apperr"
	"agenda-service/internal/model"
)

// Constraint names from db/migrations/001_init.sql. The partial unique
// indexes only cover rows whose status is not CANCELADO, so cancelling an
// agendamento frees both slots.
const (
	ukHorarioMedico   = "uk_horario_medico"
	ukHorarioPaciente = "uk_horario_paciente"
)

// Create inserts a new agendamento with status PENDENTE and returns the
// store-assigned id. Slot conflicts are detected by the database constraint,
// not by a read-then-write check, so two concurrent bookings for the same slot
// race on the index and exactly one wins.
func (s *Store) Create(ctx context.Context, a *model.Agendamento) (int64, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, apperr.Internal(err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx,
		`INSERT INTO agendamento (paciente_id, medico_id, data, horario, especialidade, tipo_pagamento, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 RETURNING id`,
		a.PacienteID, a.MedicoID, a.Data, a.Horario, a.Especialidade, a.TipoPagamento, model.StatusPendente,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case ukHorarioMedico:
				return 0, apperr.Conflict("Médico indisponível neste horário.")
			case ukHorarioPaciente:
				return 0, apperr.Conflict("Paciente já possui um agendamento neste horário.")
			}
		}
		return 0, apperr.Internal(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, apperr.Internal(err)
	}
	return id, nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (*model.Agendamento, error) {
	a := &model.Agendamento{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, paciente_id, medico_id, data, horario,
		        especialidade, tipo_pagamento, status, created_at, updated_at
		 FROM agendamento WHERE id = $1`, id,
	).Scan(&a.ID, &a.PacienteID, &a.MedicoID, &a.Data, &a.Horario,
		&a.Especialidade, &a.TipoPagamento, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Agendamento não encontrado.")
		}
		return nil, apperr.Internal(err)
	}
	return a, nil
}

// ListAll returns every agendamento, optionally filtered by status, ordered by
// (data, horario) with insertion order breaking ties.
func (s *Store) ListAll(ctx context.Context, status model.Status) ([]model.Agendamento, error) {
	return s.list(ctx, "", 0, status)
}

func (s *Store) ListByPaciente(ctx context.Context, pacienteID int64, status model.Status) ([]model.Agendamento, error) {
	return s.list(ctx, "paciente_id", pacienteID, status)
}

func (s *Store) ListByMedico(ctx context.Context, medicoID int64, status model.Status) ([]model.Agendamento, error) {
	return s.list(ctx, "medico_id", medicoID, status)
}

func (s *Store) list(ctx context.Context, ownerCol string, ownerID int64, status model.Status) ([]model.Agendamento, error) {
	q := `SELECT id, paciente_id, medico_id, data, horario,
	             especialidade, tipo_pagamento, status, created_at, updated_at
	      FROM agendamento`
	var args []any
	var where []string
	if ownerCol != "" {
		args = append(args, ownerID)
		where = append(where, fmt.Sprintf("%s = $%d", ownerCol, len(args)))
	}
	if status != "" {
		args = append(args, status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	for i, w := range where {
		if i == 0 {
			q += " WHERE " + w
		} else {
			q += " AND " + w
		}
	}
	q += " ORDER BY data, horario, id"

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	defer rows.Close()

	var out []model.Agendamento
	for rows.Next() {
		var a model.Agendamento
		if err := rows.Scan(&a.ID, &a.PacienteID, &a.MedicoID, &a.Data, &a.Horario,
			&a.Especialidade, &a.TipoPagamento, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, apperr.Internal(err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

// UpdateStatusFrom transitions id from the expected current status to the new
// one. Compare-and-set at the row level: if the row moved to another status
// between the caller's read and this write, no mutation happens and a state
// error is returned.
func (s *Store) UpdateStatusFrom(ctx context.Context, id int64, from, to model.Status) error {
	ct, err := s.pool.Exec(ctx,
		`UPDATE agendamento SET status = $1, updated_at = NOW()
		 WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		return apperr.Internal(err)
	}
	if ct.RowsAffected() > 0 {
		return nil
	}

	// 0 rows: missing id or the status changed concurrently.
	var current model.Status
	err = s.pool.QueryRow(ctx, `SELECT status FROM agendamento WHERE id = $1`, id).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Agendamento não encontrado.")
	}
	if err != nil {
		return apperr.Internal(err)
	}
	return apperr.State(fmt.Sprintf("Agendamento está com status %s e não pode ser alterado.", current))
}
