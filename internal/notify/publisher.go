// Package notify publishes status-change events to the notifications exchange.
// Fan-out is one durable queue per recipient, bound to a shared direct
// exchange with the user id as routing key, so each user sees their own
// notifications in publish order.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/rabbitmq/amqp091-go"

	"agenda-service/internal/model"
)

const Exchange = "notifications"

type Publisher struct {
	ch *amqp091.Channel

	mu       sync.Mutex
	declared map[int64]bool
}

func NewPublisher(conn *amqp091.Connection) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if err := ch.ExchangeDeclare(Exchange, "direct", true, false, false, false, nil); err != nil {
		return nil, err
	}
	return &Publisher{ch: ch, declared: make(map[int64]bool)}, nil
}

func queueName(userID int64) string {
	return fmt.Sprintf("notifications.user.%d", userID)
}

// ensureQueue declares and binds the recipient queue so messages published
// before the consumer's first run are not dropped by the exchange.
func (p *Publisher) ensureQueue(userID int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.declared[userID] {
		return nil
	}
	q := queueName(userID)
	if _, err := p.ch.QueueDeclare(q, true, false, false, false, nil); err != nil {
		return err
	}
	if err := p.ch.QueueBind(q, strconv.FormatInt(userID, 10), Exchange, false, nil); err != nil {
		return err
	}
	p.declared[userID] = true
	return nil
}

func (p *Publisher) Publish(ctx context.Context, n model.Notificacao) error {
	if err := p.ensureQueue(n.UserID); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notificacao: %w", err)
	}

	err = p.ch.PublishWithContext(ctx,
		Exchange,
		strconv.FormatInt(n.UserID, 10),
		false, false,
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish notificacao: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.ch.Close()
}
