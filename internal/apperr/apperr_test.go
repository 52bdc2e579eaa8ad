package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"agenda-service/internal/apperr"
)

func TestCategories(t *testing.T) {
	tests := []struct {
		name string
		err  *apperr.Error
		want int32
	}{
		{"validation", apperr.Validation("x"), 1},
		{"authorization", apperr.Authorization("x"), 1},
		{"conflict", apperr.Conflict("x"), 1},
		{"not found", apperr.NotFound("x"), 1},
		{"state", apperr.State("x"), 1},
		{"internal", apperr.Internal(errors.New("boom")), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Category(); got != tt.want {
				t.Errorf("category = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused at 10.0.0.3")
	err := apperr.Internal(cause)

	if err.Error() != "erro interno no servidor" {
		t.Errorf("message leaks: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable via errors.Is")
	}
}

func TestFromNormalizes(t *testing.T) {
	if got := apperr.From(errors.New("raw")).Kind; got != apperr.KindInternal {
		t.Errorf("unclassified error kind = %v, want internal", got)
	}

	orig := apperr.Conflict("slot taken")
	wrapped := fmt.Errorf("booking: %w", orig)
	if got := apperr.From(wrapped); got != orig {
		t.Errorf("From did not unwrap to the original error")
	}
	if apperr.CategoryOf(wrapped) != 1 {
		t.Errorf("wrapped conflict should stay category 1")
	}
}
