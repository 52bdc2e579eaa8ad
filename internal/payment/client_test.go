package payment_test

import (
	"context"
	"encoding/json"
	"net"
	"testing"

	"agenda-service/internal/apperr"
	"agenda-service/internal/model"
	"agenda-service/internal/payment"
)

// fakeValidator accepts one connection at a time and answers with a canned
// response, mimicking the validation server's one-shot protocol.
func fakeValidator(t *testing.T, respond func(req map[string]string) any) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { lis.Close() })

	go func() {
		for {
			conn, err := lis.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer conn.Close()
				buf := make([]byte, 4096)
				n, err := conn.Read(buf)
				if err != nil {
					return
				}
				var req map[string]string
				if err := json.Unmarshal(buf[:n], &req); err != nil {
					return
				}
				body, _ := json.Marshal(respond(req))
				conn.Write(body)
			}(conn)
		}
	}()
	return lis.Addr().String()
}

func TestValidateConfirmado(t *testing.T) {
	addr := fakeValidator(t, func(req map[string]string) any {
		if req["tipo_pagamento"] != "CONVENIO" {
			t.Errorf("tipo_pagamento = %q", req["tipo_pagamento"])
		}
		if req["dados_pagamento"] != "1234-5678" {
			t.Errorf("dados_pagamento = %q", req["dados_pagamento"])
		}
		return map[string]string{"status": "CONFIRMADO"}
	})

	c := payment.NewClient(addr)
	status, err := c.Validate(context.Background(), model.PagConvenio, "1234-5678")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if status != model.StatusConfirmado {
		t.Errorf("status = %s", status)
	}
}

func TestValidateRejeitado(t *testing.T) {
	addr := fakeValidator(t, func(map[string]string) any {
		return map[string]string{"status": "REJEITADO"}
	})

	c := payment.NewClient(addr)
	status, err := c.Validate(context.Background(), model.PagParticular, "x")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if status != model.StatusRejeitado {
		t.Errorf("status = %s", status)
	}
}

func TestValidateServerError(t *testing.T) {
	addr := fakeValidator(t, func(map[string]string) any {
		return map[string]string{"erro": "erro interno no servidor"}
	})

	c := payment.NewClient(addr)
	_, err := c.Validate(context.Background(), model.PagConvenio, "x")
	if err == nil {
		t.Fatal("expected error")
	}
	if apperr.KindOf(err) != apperr.KindInternal {
		t.Errorf("kind = %v, want internal", apperr.KindOf(err))
	}
}

func TestValidateUnreachable(t *testing.T) {
	// nothing listens here
	c := payment.NewClient("127.0.0.1:1")
	_, err := c.Validate(context.Background(), model.PagConvenio, "x")
	if err == nil {
		t.Fatal("expected error")
	}
	if apperr.CategoryOf(err) != apperr.CategoryServer {
		t.Errorf("unreachable validator must be a server fault")
	}
}
