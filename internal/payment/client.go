// Package payment is the client for the payment validation server: a one-shot
// TCP exchange of JSON payloads, one request and one response per connection.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"agenda-service/internal/apperr"
	"agenda-service/internal/model"
)

const (
	defaultTimeout = 5 * time.Second
	bufferSize     = 4096
)

type Client struct {
	addr    string
	timeout time.Duration
}

func NewClient(addr string) *Client {
	return &Client{addr: addr, timeout: defaultTimeout}
}

type request struct {
	TipoPagamento  model.TipoPagamento `json:"tipo_pagamento"`
	DadosPagamento string              `json:"dados_pagamento"`
}

type response struct {
	Status model.Status `json:"status"`
	Erro   string       `json:"erro"`
}

// Validate sends the payment payload and returns the status decided by the
// validator. Every failure mode here — dial, write, read, malformed or error
// response — is a dependency fault, category 2.
func (c *Client) Validate(ctx context.Context, tipo model.TipoPagamento, dados string) (model.Status, error) {
	d := net.Dialer{Timeout: c.timeout}
	conn, err := d.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("validation server: %w", err))
	}
	defer conn.Close()

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return "", apperr.Internal(fmt.Errorf("validation server: %w", err))
	}

	body, err := json.Marshal(request{TipoPagamento: tipo, DadosPagamento: dados})
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("validation payload: %w", err))
	}
	if _, err := conn.Write(body); err != nil {
		return "", apperr.Internal(fmt.Errorf("validation server: %w", err))
	}

	buf := make([]byte, bufferSize)
	n, err := conn.Read(buf)
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("validation server: %w", err))
	}

	var resp response
	if err := json.Unmarshal(buf[:n], &resp); err != nil {
		return "", apperr.Internal(fmt.Errorf("validation response: %w", err))
	}
	if resp.Erro != "" {
		return "", apperr.Internal(fmt.Errorf("validation server: %s", resp.Erro))
	}
	return resp.Status, nil
}
