package appointment

import (
	"context"
	"time"

	"github.com/barbertime/agenda-api/internal/audit"
	"github.com/barbertime/agenda-api/internal/cache"
	domain "github.com/barbertime/agenda-api/internal/domain/appointment"
	"github.com/barbertime/agenda-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID       uint
	ProfessionalID uint
	ServiceIDs     []uint

	StartTime time.Time
	Notes     string

	// AllowPast libera lançamento retroativo explícito
	AllowPast bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	clock    domain.Clock
	audit    *audit.Dispatcher
	cache    *cache.Availability
	settings AgendaSettings
}

func NewCreateAppointment(
	repo domain.Repository,
	clock domain.Clock,
	audit *audit.Dispatcher,
	cache *cache.Availability,
	settings AgendaSettings,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		clock:    clock,
		audit:    audit,
		cache:    cache,
		settings: settings,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Entrada
	// --------------------------------------------------
	if len(in.ServiceIDs) == 0 {
		return nil, domain.ErrValidation("empty_services", "Selecione ao menos um serviço.")
	}
	if in.StartTime.IsZero() {
		return nil, domain.ErrValidation("invalid_start_time", "Horário inválido.")
	}

	if !in.AllowPast && in.StartTime.Before(uc.clock.Now()) {
		return nil, domain.ErrValidation("start_in_past", "Horário já passou.")
	}

	// --------------------------------------------------
	// Cliente
	// --------------------------------------------------
	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Profissional ativo
	// --------------------------------------------------
	prof, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if !prof.Active {
		return nil, domain.ErrValidation("professional_inactive", "Profissional não está atendendo.")
	}

	// --------------------------------------------------
	// Serviços (snapshot de preço/duração)
	// --------------------------------------------------
	services, err := uc.repo.GetServices(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	totalMin := 0
	totalPrice := 0.0
	items := make([]models.AppointmentItem, 0, len(services))

	for i, svc := range services {
		if !svc.Active {
			return nil, domain.ErrValidation("service_inactive", "Serviço indisponível: "+svc.Name)
		}
		if svc.DurationMin <= 0 || svc.Price < 0 {
			return nil, domain.ErrValidation("invalid_service", "Serviço mal cadastrado: "+svc.Name)
		}

		totalMin += svc.DurationMin
		totalPrice += svc.Price

		items = append(items, models.AppointmentItem{
			ServiceID:   svc.ID,
			Position:    i,
			Name:        svc.Name,
			Price:       svc.Price,
			DurationMin: svc.DurationMin,
		})
	}

	end := in.StartTime.Add(time.Duration(totalMin) * time.Minute)

	// --------------------------------------------------
	// Janela de atendimento do dia
	// --------------------------------------------------
	wh, err := uc.repo.GetWorkingHours(ctx, prof.ID, int(in.StartTime.Weekday()))
	if err != nil {
		return nil, err
	}

	win, open := domain.WindowForDay(wh, in.StartTime, uc.settings.Open, uc.settings.Close)
	if !open || !win.Fits(in.StartTime, end) {
		return nil, domain.ErrValidation("outside_working_hours", "Fora do horário de atendimento.")
	}

	// --------------------------------------------------
	// Criação serializada por profissional (conflito checado
	// dentro da transação do repositório)
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:         client.ID,
		ProfessionalID:   prof.ID,
		Items:            items,
		StartTime:        in.StartTime,
		EndTime:          end,
		TotalDurationMin: totalMin,
		TotalPrice:       totalPrice,
		Status:           string(domain.InitialStatus()),
		Notes:            in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, prof.ID, in.StartTime.Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		RequestID: audit.RequestIDFrom(ctx),
		Metadata: map[string]any{
			"professional_id": prof.ID,
			"start":           ap.StartTime,
			"end":             ap.EndTime,
			"total_price":     ap.TotalPrice,
		},
	})

	return ap, nil
}
