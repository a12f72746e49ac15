package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barbertime/agenda-api/internal/domain/appointment"
	"github.com/barbertime/agenda-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound("client", id)
		}
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *AppointmentGormRepository) GetProfessional(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var prof models.Professional
	if err := r.db.WithContext(ctx).First(&prof, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound("professional", id)
		}
		return nil, err
	}
	return &prof, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetServices(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	var found []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&found).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Service, len(found))
	for _, svc := range found {
		byID[svc.ID] = svc
	}

	// preserva a ordem pedida; id ausente vira NotFoundError
	out := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		svc, ok := byID[id]
		if !ok {
			return nil, domain.ErrNotFound("service", id)
		}
		out = append(out, svc)
	}

	return out, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// lock na linha do profissional serializa o check-then-insert
		// por profissional; duas criações concorrentes no mesmo horário
		// nunca passam as duas
		var prof models.Professional
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&prof, ap.ProfessionalID).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound("professional", ap.ProfessionalID)
			}
			return err
		}

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"professional_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
				ap.ProfessionalID,
				string(domain.StatusCancelled),
				ap.EndTime,
				ap.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return &domain.ConflictError{
				ProfessionalID: ap.ProfessionalID,
				Start:          ap.StartTime,
				End:            ap.EndTime,
			}
		}

		return tx.Create(ap).Error
	})
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&ap, appointmentID).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound("appointment", appointmentID)
		}
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit("Items", "Client", "Professional").
		Save(ap).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorkingHours(
	ctx context.Context,
	professionalID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	err := r.db.WithContext(ctx).
		Where("professional_id = ? AND weekday = ?", professionalID, weekday).
		First(&wh).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &wh, nil
}

func (r *AppointmentGormRepository) ListBookedIntervals(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]domain.Interval, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"professional_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
			professionalID,
			string(domain.StatusCancelled),
			end,
			start,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Interval, 0, len(apps))
	for _, ap := range apps {
		out = append(out, domain.Interval{
			Start: ap.StartTime,
			End:   ap.EndTime,
		})
	}

	return out, nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	professionalID *uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Preload("Items").
		Where("start_time >= ? AND start_time < ?", start, end)

	if professionalID != nil {
		q = q.Where("professional_id = ?", *professionalID)
	}

	var apps []models.Appointment
	if err := q.
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
