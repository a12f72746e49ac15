package appointment

import (
	"context"
	"time"

	domain "github.com/barbertime/agenda-api/internal/domain/appointment"
	"github.com/barbertime/agenda-api/internal/dto"
)

type ListAppointmentsByMonth struct {
	repo domain.Repository
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	professionalID *uint,
	year int,
	month int,
	loc *time.Location,
) ([]dto.AppointmentListDTO, error) {

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

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
