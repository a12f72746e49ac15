package appointment

import (
	"context"
	"time"

	domain "github.com/barbertime/agenda-api/internal/domain/appointment"
	"github.com/barbertime/agenda-api/internal/dto"
)

// DashboardSummary alimenta a visão geral do dia: próximos clientes,
// agendamentos e faturamento
type DashboardSummary struct {
	repo  domain.Repository
	clock domain.Clock
}

func NewDashboardSummary(
	repo domain.Repository,
	clock domain.Clock,
) *DashboardSummary {
	return &DashboardSummary{
		repo:  repo,
		clock: clock,
	}
}

func (uc *DashboardSummary) Execute(
	ctx context.Context,
	date time.Time,
) (*dto.DashboardSummaryDTO, error) {

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	end := start.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, nil, start, end)
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummaryDTO{
		Date: start.Format("2006-01-02"),
	}

	now := uc.clock.Now()

	for _, ap := range appointments {
		status := domain.Status(ap.Status)

		if status == domain.StatusCancelled {
			continue
		}

		summary.Appointments++
		summary.Revenue += ap.TotalPrice

		if status == domain.StatusCompleted {
			summary.Completed++
			continue
		}

		// próximo atendimento ainda não iniciado
		if summary.NextAppointment == nil && !ap.StartTime.Before(now) {
			next := dto.FromAppointment(ap)
			summary.NextAppointment = &next
		}
	}

	return summary, nil
}
