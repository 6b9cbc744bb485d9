package usecase

import (
	"errors"
	"fmt"
	"testing"
)

func TestFailureMessage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "fetch with status", err: &FetchError{Family: "news", Stage: StageFallback, Status: 503, Attempts: 2}, want: "Error al cargar los datos: 503 Service Unavailable"},
		{name: "fetch transport", err: fmt.Errorf("list news: %w", &FetchError{Family: "news", Message: "dial tcp"}), want: "Error al cargar los datos"},
		{name: "normalization", err: &NormalizationError{Family: "standings", Reason: "leagues is not an array"}, want: "Los datos recibidos no tienen el formato esperado"},
		{name: "empty", err: &EmptyResultError{Family: "matches", What: "partidos"}, want: "No se encontraron partidos disponibles"},
		{name: "invalid", err: fmt.Errorf("%w: link is required", ErrInvalidInput), want: "Solicitud no válida"},
		{name: "other", err: errors.New("boom"), want: "Error desconocido"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FailureMessage(tc.err); got != tc.want {
				t.Fatalf("FailureMessage()=%q want %q", got, tc.want)
			}
		})
	}
}

func TestErrorTaxonomy_Sentinels(t *testing.T) {
	t.Parallel()

	if !errors.Is(&FetchError{}, ErrDependencyUnavailable) {
		t.Fatalf("fetch errors should match ErrDependencyUnavailable")
	}
	if !errors.Is(fmt.Errorf("wrap: %w", &EmptyResultError{}), ErrNotFound) {
		t.Fatalf("empty result should match ErrNotFound")
	}
	cause := errors.New("unexpected end of JSON")
	if !errors.Is(&NormalizationError{Err: cause}, cause) {
		t.Fatalf("normalization error should unwrap its cause")
	}
}
