package appointment

import (
	"context"
	"time"

	"github.com/barbertime/agenda-api/internal/models"
)

type Repository interface {
	// -------- Client --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	// -------- Professional --------
	GetProfessional(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	// -------- Service --------
	// GetServices resolve ids preservando a ordem pedida
	GetServices(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	// -------- Appointment (create / conflict) --------
	// CreateAppointment trava o profissional, checa conflito e insere
	// na mesma transação; devolve *ConflictError quando o intervalo
	// [StartTime, EndTime) já está ocupado por reserva não cancelada.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability --------
	// GetWorkingHours devolve (nil, nil) quando o profissional não tem
	// linha para o dia da semana
	GetWorkingHours(
		ctx context.Context,
		professionalID uint,
		weekday int,
	) (*models.WorkingHours, error)

	// ListBookedIntervals devolve os intervalos não cancelados do
	// profissional no período, ordenados por início
	ListBookedIntervals(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]Interval, error)

	// -------- Listings --------
	// professionalID nil lista todos os profissionais
	ListAppointmentsForPeriod(
		ctx context.Context,
		professionalID *uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
