package appointment

import (
	"errors"
	"fmt"
	"time"
)

// ===============================
// Error kinds
// ===============================
//
// Quatro tipos distintos para o chamador diferenciar
// "corrija a entrada" de "escolha outro horário".

// ValidationError: entrada malformada ou referência inválida
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Code
}

func ErrValidation(code, message string) error {
	return &ValidationError{Code: code, Message: message}
}

// ConflictError: intervalo já ocupado para o profissional
type ConflictError struct {
	ProfessionalID uint
	Start          time.Time
	End            time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"time_conflict: professional %d already booked between %s and %s",
		e.ProfessionalID,
		e.Start.Format("2006-01-02 15:04"),
		e.End.Format("15:04"),
	)
}

// InvalidTransitionError: mudança de status fora do ciclo de vida
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid_transition: %s -> %s", e.From, e.To)
}

// NotFoundError: entidade referenciada não existe
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s_not_found: id=%d", e.Entity, e.ID)
}

func ErrNotFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ===============================
// Checks
// ===============================

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

func IsInvalidTransition(err error) bool {
	var te *InvalidTransitionError
	return errors.As(err, &te)
}

func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}
