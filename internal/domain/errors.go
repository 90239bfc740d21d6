package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
)

// ValidationError error detectado en el cliente antes de cualquier llamada al backend.
// Message es el texto que se muestra al usuario tal cual.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is permite errors.Is(err, ErrInvalidInput) sobre cualquier ValidationError.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidationError construye un ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// RemoteError respuesta no exitosa del backend. Message es el campo "error" del cuerpo (puede ser vacío).
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend HTTP %d", e.Status)
}

// AuthError fallo de login: credenciales inválidas o falla de transporte.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }
func (e *AuthError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrUnauthorized).
func (e *AuthError) Is(target error) bool { return target == ErrUnauthorized }

// FetchError fallo al cargar el catálogo; el snapshot anterior se conserva.
type FetchError struct {
	Message string
	Err     error
}

func (e *FetchError) Error() string { return e.Message }
func (e *FetchError) Unwrap() error { return e.Err }

// SubmissionError el backend rechazó (o no recibió) una mutación.
// Op identifica la operación: "movement", "create_product", "update_product", "delete_product".
type SubmissionError struct {
	Op      string
	Message string
	Err     error
}

func (e *SubmissionError) Error() string { return e.Message }
func (e *SubmissionError) Unwrap() error { return e.Err }

// Rejected indica si el backend respondió con un rechazo (vs. falla de transporte/timeout).
func (e *SubmissionError) Rejected() bool {
	var remote *RemoteError
	return errors.As(e.Err, &remote)
}

// RemoteMessage devuelve el texto "error" enviado por el backend, o fallback si no hay.
func RemoteMessage(err error, fallback string) string {
	var remote *RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return remote.Message
	}
	return fallback
}
