package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindAndStatus(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		kind   Kind
		status int
	}{
		{"validation", NewValidationError("name", "required"), KindInvalidInput, http.StatusBadRequest},
		{"not found", NewNotFoundError("owner", "o1"), KindNotFound, http.StatusNotFound},
		{"mapping", NewMappingError("pet", "pet_type", "unknown"), KindMapping, http.StatusInternalServerError},
		{"storage", Storage("put", "pet", errors.New("boom")), KindStorage, http.StatusServiceUnavailable},
		{"connection", NewConnectionError("postgres", errors.New("refused")), KindConnection, http.StatusServiceUnavailable},
		{"partial", &PartialWriteError{Entity: "pet", ID: "p1", Applied: []string{"pet/p1"}, Failed: "pet_by_owner/o1/p1", Err: errors.New("x")}, KindStorage, http.StatusServiceUnavailable},
		{"wrapped not found", fmt.Errorf("ctx: %w", NewNotFoundError("pet", "p1")), KindNotFound, http.StatusNotFound},
		{"plain", errors.New("???"), KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.kind {
				t.Fatalf("kind: expected %s, got %s", tc.kind, got)
			}
			if got := HTTPStatus(tc.err); got != tc.status {
				t.Fatalf("status: expected %d, got %d", tc.status, got)
			}
		})
	}
}

func TestStorage_PassesClassifiedThrough(t *testing.T) {
	nf := NewNotFoundError("vet", "v1")
	if got := Storage("get", "vet", nf); got != nf {
		t.Fatalf("expected same error, got %v", got)
	}
	if Storage("get", "vet", nil) != nil {
		t.Fatal("nil must stay nil")
	}
}

func TestStorage_Timeout(t *testing.T) {
	err := Storage("scan", "visit_by_pet", fmt.Errorf("query: %w", context.DeadlineExceeded))
	var se *StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %T", err)
	}
	if !se.Timeout || se.Table != "visit_by_pet" {
		t.Fatalf("unexpected %+v", se)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("cause must stay reachable")
	}
}
