package appointment

import (
	"context"
	"sort"
	"time"

	domain "github.com/barbertime/agenda-api/internal/domain/appointment"
	"github.com/barbertime/agenda-api/internal/models"
)

// fakeRepo implementa domain.Repository em memória para os testes dos
// use cases; a semântica de conflito espelha a do repositório gorm
type fakeRepo struct {
	clients       map[uint]models.Client
	professionals map[uint]models.Professional
	services      map[uint]models.Service
	workingHours  map[uint]map[int]models.WorkingHours

	appointments map[uint]*models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients:       map[uint]models.Client{},
		professionals: map[uint]models.Professional{},
		services:      map[uint]models.Service{},
		workingHours:  map[uint]map[int]models.WorkingHours{},
		appointments:  map[uint]*models.Appointment{},
		nextID:        1,
	}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

func (r *fakeRepo) GetClient(_ context.Context, id uint) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrNotFound("client", id)
	}
	return &c, nil
}

func (r *fakeRepo) GetProfessional(_ context.Context, id uint) (*models.Professional, error) {
	p, ok := r.professionals[id]
	if !ok {
		return nil, domain.ErrNotFound("professional", id)
	}
	return &p, nil
}

func (r *fakeRepo) GetServices(_ context.Context, ids []uint) ([]models.Service, error) {
	out := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		svc, ok := r.services[id]
		if !ok {
			return nil, domain.ErrNotFound("service", id)
		}
		out = append(out, svc)
	}
	return out, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := r.professionals[ap.ProfessionalID]; !ok {
		return domain.ErrNotFound("professional", ap.ProfessionalID)
	}

	candidate := domain.Interval{Start: ap.StartTime, End: ap.EndTime}
	for _, existing := range r.appointments {
		if existing.ProfessionalID != ap.ProfessionalID {
			continue
		}
		if existing.Status == string(domain.StatusCancelled) {
			continue
		}
		if candidate.Overlaps(domain.Interval{Start: existing.StartTime, End: existing.EndTime}) {
			return &domain.ConflictError{
				ProfessionalID: ap.ProfessionalID,
				Start:          ap.StartTime,
				End:            ap.EndTime,
			}
		}
	}

	ap.ID = r.nextID
	r.nextID++
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound("appointment", id)
	}
	copied := *ap
	return &copied, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := r.appointments[ap.ID]; !ok {
		return domain.ErrNotFound("appointment", ap.ID)
	}
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) GetWorkingHours(_ context.Context, professionalID uint, weekday int) (*models.WorkingHours, error) {
	days, ok := r.workingHours[professionalID]
	if !ok {
		return nil, nil
	}
	wh, ok := days[weekday]
	if !ok {
		return nil, nil
	}
	return &wh, nil
}

func (r *fakeRepo) ListBookedIntervals(
	_ context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]domain.Interval, error) {

	window := domain.Interval{Start: start, End: end}

	var out []domain.Interval
	for _, ap := range r.appointments {
		if ap.ProfessionalID != professionalID {
			continue
		}
		if ap.Status == string(domain.StatusCancelled) {
			continue
		}
		iv := domain.Interval{Start: ap.StartTime, End: ap.EndTime}
		if window.Overlaps(iv) {
			out = append(out, iv)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})

	return out, nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(
	_ context.Context,
	professionalID *uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var out []models.Appointment
	for _, ap := range r.appointments {
		if professionalID != nil && ap.ProfessionalID != *professionalID {
			continue
		}
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}

		copied := *ap
		copied.Client = r.clients[ap.ClientID]
		copied.Professional = r.professionals[ap.ProfessionalID]
		out = append(out, copied)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})

	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
