// Package apperrors define los tipos de error que cruzan la frontera
// storage -> servicios -> API. Cada tipo responde a errors.Is contra su sentinel.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrStorage      = errors.New("storage error")
	ErrMapping      = errors.New("mapping error")
	ErrConnection   = errors.New("connection error")
)

type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindStorage      Kind = "storage"
	KindMapping      Kind = "mapping"
	KindConnection   Kind = "connection"
	KindInternal     Kind = "internal"
)

// ValidationError: input del caller rechazado antes de tocar el store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return "invalid input: " + e.Message
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// StorageError envuelve cualquier fallo del driver/backend durante una llamada.
type StorageError struct {
	Op      string
	Table   string
	Code    string // código de error del backend si lo hay
	Timeout bool
	Err     error
}

func (e *StorageError) Error() string {
	var b strings.Builder
	b.WriteString("storage ")
	b.WriteString(e.Op)
	if e.Table != "" {
		b.WriteString(" " + e.Table)
	}
	if e.Timeout {
		b.WriteString(": timeout")
	}
	if e.Code != "" {
		b.WriteString(" [" + e.Code + "]")
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *StorageError) Is(target error) bool { return target == ErrStorage }
func (e *StorageError) Unwrap() error        { return e.Err }

// MappingError: una fila no se pudo convertir en objeto de dominio.
type MappingError struct {
	Table  string
	Field  string
	Reason string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping %s.%s: %s", e.Table, e.Field, e.Reason)
}

func (e *MappingError) Is(target error) bool { return target == ErrMapping }

// ConnectionError solo aparece al abrir la sesión.
type ConnectionError struct {
	Backend string
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect %s: %v", e.Backend, e.Err)
}

func (e *ConnectionError) Is(target error) bool { return target == ErrConnection }
func (e *ConnectionError) Unwrap() error        { return e.Err }

// PartialWriteError indica que una escritura lógica de varias filas se cortó.
// Applied lista las filas ya escritas; no hay rollback. Reintentar la operación
// completa con el mismo ID es seguro porque cada escritura es un upsert.
type PartialWriteError struct {
	Entity  string
	ID      string
	Applied []string
	Failed  string
	Err     error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("partial write of %s %q: applied=[%s] failed=%s: %v",
		e.Entity, e.ID, strings.Join(e.Applied, ","), e.Failed, e.Err)
}

func (e *PartialWriteError) Is(target error) bool { return target == ErrStorage }
func (e *PartialWriteError) Unwrap() error        { return e.Err }

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func NewMappingError(table, field, reason string) error {
	return &MappingError{Table: table, Field: field, Reason: reason}
}

func NewConnectionError(backend string, err error) error {
	return &ConnectionError{Backend: backend, Err: err}
}

// Storage clasifica un fallo crudo del backend. Errores ya clasificados se devuelven tal cual.
func Storage(op, table string, err error) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != KindInternal {
		return err
	}
	return &StorageError{
		Op:      op,
		Table:   table,
		Timeout: errors.Is(err, context.DeadlineExceeded),
		Err:     err,
	}
}

// Classify es el wrap de la frontera de servicio: cualquier error sin tipo
// se reporta como StorageError.
func Classify(op string, err error) error {
	return Storage(op, "", err)
}

func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrMapping):
		return KindMapping
	case errors.Is(err, ErrConnection):
		return KindConnection
	case errors.Is(err, ErrStorage):
		return KindStorage
	default:
		return KindInternal
	}
}

func IsNotFound(err error) bool     { return errors.Is(err, ErrNotFound) }
func IsInvalidInput(err error) bool { return errors.Is(err, ErrInvalidInput) }

// HTTPStatus mapea cada kind a un status distinto del resto donde importa para el cliente.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindStorage, KindConnection:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
