package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// Stage of the fetch that produced a FetchError.
const (
	StagePrimary  = "primary"
	StageFallback = "fallback"
)

// FetchError is a network or status failure, possibly after the single
// fallback attempt. Status is 0 when no HTTP response was received.
type FetchError struct {
	Family   string
	Stage    string
	Status   int
	Message  string
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("fetch %s (%s, %d attempt(s)): status %d: %s", e.Family, e.Stage, e.Attempts, e.Status, e.Message)
	}
	return fmt.Sprintf("fetch %s (%s, %d attempt(s)): %s", e.Family, e.Stage, e.Attempts, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrDependencyUnavailable) match every fetch failure.
func (e *FetchError) Is(target error) bool {
	return target == ErrDependencyUnavailable
}

// NormalizationError is an upstream payload whose container shape was not
// recognised.
type NormalizationError struct {
	Family string
	Reason string
	Err    error
}

func (e *NormalizationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("normalize %s: %s: %v", e.Family, e.Reason, e.Err)
	}
	return fmt.Sprintf("normalize %s: %s", e.Family, e.Reason)
}

func (e *NormalizationError) Unwrap() error {
	return e.Err
}

// EmptyResultError is a successful response that produced no usable records.
type EmptyResultError struct {
	Family string
	What   string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("%s: no %s available", e.Family, e.What)
}

func (e *EmptyResultError) Is(target error) bool {
	return target == ErrNotFound
}

// FailureMessage collapses any card error into the short text shown in place
// of the card.
func FailureMessage(err error) string {
	if err == nil {
		return ""
	}

	var fetchErr *FetchError
	var normErr *NormalizationError
	var emptyErr *EmptyResultError
	switch {
	case errors.As(err, &emptyErr):
		return fmt.Sprintf("No se encontraron %s disponibles", emptyErr.What)
	case errors.As(err, &normErr):
		return "Los datos recibidos no tienen el formato esperado"
	case errors.As(err, &fetchErr):
		if fetchErr.Status > 0 {
			return fmt.Sprintf("Error al cargar los datos: %d %s", fetchErr.Status, http.StatusText(fetchErr.Status))
		}
		return "Error al cargar los datos"
	case errors.Is(err, ErrInvalidInput):
		return "Solicitud no válida"
	default:
		return "Error desconocido"
	}
}
