package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"agenda-service/internal/model"
)

func TestStatusValid(t *testing.T) {
	for _, s := range []model.Status{
		model.StatusPendente, model.StatusConfirmado, model.StatusRejeitado,
		model.StatusCancelado, model.StatusConcluido,
	} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []model.Status{"", "APROVADO", "pendente"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	if model.StatusPendente.Terminal() || model.StatusConfirmado.Terminal() {
		t.Error("PENDENTE and CONFIRMADO are not terminal")
	}
	for _, s := range []model.Status{model.StatusRejeitado, model.StatusCancelado, model.StatusConcluido} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
}

func TestDataHora(t *testing.T) {
	a := &model.Agendamento{
		Data:    time.Date(2026, 2, 10, 0, 0, 0, 0, time.Local),
		Horario: 9,
	}
	want := time.Date(2026, 2, 10, 9, 0, 0, 0, time.Local)
	if !a.DataHora().Equal(want) {
		t.Errorf("DataHora = %v, want %v", a.DataHora(), want)
	}
}

func TestNotificacaoJSON(t *testing.T) {
	n := model.NewNotificacao(7, 42, model.StatusConfirmado, "Agendamento confirmado.")

	body, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// keys are the contract consumed by the notification clients
	for _, k := range []string{"user_id", "agendamento_id", "novo_status", "mensagem", "origem", "timestamp"} {
		if _, ok := got[k]; !ok {
			t.Errorf("missing key %q in %s", k, body)
		}
	}
	if got["origem"] != model.OrigemAgendamento {
		t.Errorf("origem = %v", got["origem"])
	}
	ts, ok := got["timestamp"].(string)
	if !ok {
		t.Fatalf("timestamp missing or not a string: %v", got["timestamp"])
	}
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Errorf("timestamp not RFC3339: %v", ts)
	}
}
