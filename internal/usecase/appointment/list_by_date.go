package appointment

import (
	"context"
	"time"

	domain "github.com/barbertime/agenda-api/internal/domain/appointment"
	"github.com/barbertime/agenda-api/internal/dto"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

// professionalID nil lista a agenda de todos os profissionais do dia
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	professionalID *uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	end := start.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		professionalID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.FromAppointment(ap))
	}

	return out, nil
}
