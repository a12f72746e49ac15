package appointment

import (
	"context"

	"github.com/barbertime/agenda-api/internal/audit"
	"github.com/barbertime/agenda-api/internal/cache"
	domain "github.com/barbertime/agenda-api/internal/domain/appointment"
	"github.com/barbertime/agenda-api/internal/models"
)

// ChangeStatus cobre confirmar, concluir e cancelar; a tabela de
// transições do domínio decide o que é permitido
type ChangeStatus struct {
	repo  domain.Repository
	clock domain.Clock
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewChangeStatus(
	repo domain.Repository,
	clock domain.Clock,
	audit *audit.Dispatcher,
	cache *cache.Availability,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		clock: clock,
		audit: audit,
		cache: cache,
	}
}

var auditActions = map[domain.Status]string{
	domain.StatusConfirmed: "appointment_confirmed",
	domain.StatusCompleted: "appointment_completed",
	domain.StatusCancelled: "appointment_cancelled",
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	to domain.Status,
) (*models.Appointment, error) {

	if !domain.IsValid(to) {
		return nil, domain.ErrValidation("invalid_status", "Status desconhecido: "+string(to))
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if err := domain.Transition(ap, to, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// cancelamento libera o intervalo; a disponibilidade do dia muda
	if to == domain.StatusCancelled {
		uc.cache.Invalidate(ctx, ap.ProfessionalID, ap.StartTime.Format("2006-01-02"))
	}

	uc.audit.Dispatch(audit.Event{
		Action:    auditActions[to],
		Entity:    "appointment",
		EntityID:  &ap.ID,
		RequestID: audit.RequestIDFrom(ctx),
	})

	return ap, nil
}
