package model

import "time"

// Notificacao is the event published when an agendamento changes status. It is
// never persisted here; ownership passes to the broker on publish. The JSON
// shape is the contract consumed by the notification clients.
type Notificacao struct {
	UserID        int64  `json:"user_id"`
	AgendamentoID int64  `json:"agendamento_id"`
	NovoStatus    Status `json:"novo_status"`
	Mensagem      string `json:"mensagem"`
	Origem        string `json:"origem"`
	Timestamp     string `json:"timestamp"`
}

const OrigemAgendamento = "AGENDAMENTO"

func NewNotificacao(userID, agendamentoID int64, novoStatus Status, mensagem string) Notificacao {
	return Notificacao{
		UserID:        userID,
		AgendamentoID: agendamentoID,
		NovoStatus:    novoStatus,
		Mensagem:      mensagem,
		Origem:        OrigemAgendamento,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
}
