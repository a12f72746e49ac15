package appointment

import (
	"time"

	"github.com/barbertime/agenda-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(Status(ap.Status), StatusConfirmed); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(Status(ap.Status), StatusCompleted); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(Status(ap.Status), StatusCancelled); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Transition aplica a mudança pedida carimbando o timestamp correspondente
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	switch to {
	case StatusConfirmed:
		return Confirm(ap, now)
	case StatusCompleted:
		return Complete(ap, now)
	case StatusCancelled:
		return Cancel(ap, now)
	default:
		return &InvalidTransitionError{From: Status(ap.Status), To: to}
	}
}
