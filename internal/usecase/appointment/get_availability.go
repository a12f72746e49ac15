package appointment

import (
	"context"
	"time"

	"github.com/barbertime/agenda-api/internal/cache"
	domain "github.com/barbertime/agenda-api/internal/domain/appointment"
)

type GetAvailability struct {
	repo     domain.Repository
	cache    *cache.Availability
	settings AgendaSettings
}

func NewGetAvailability(
	repo domain.Repository,
	cache *cache.Availability,
	settings AgendaSettings,
) *GetAvailability {
	return &GetAvailability{
		repo:     repo,
		cache:    cache,
		settings: settings,
	}
}

// Execute devolve os inícios livres do dia, do mais cedo para o mais
// tarde. Leitura pura: pode ser repetida à vontade sem efeito colateral.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	if len(in.ServiceIDs) == 0 {
		return nil, domain.ErrValidation("empty_services", "Selecione ao menos um serviço.")
	}

	prof, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if !prof.Active {
		return nil, domain.ErrValidation("professional_inactive", "Profissional não está atendendo.")
	}

	services, err := uc.repo.GetServices(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	totalMin := 0
	for _, svc := range services {
		totalMin += svc.DurationMin
	}
	if totalMin <= 0 {
		return nil, domain.ErrValidation("invalid_service", "Duração total inválida.")
	}

	date := in.Date.Format("2006-01-02")
	if slots, ok := uc.cache.Get(ctx, prof.ID, date, totalMin); ok {
		return slots, nil
	}

	wh, err := uc.repo.GetWorkingHours(ctx, prof.ID, int(in.Date.Weekday()))
	if err != nil {
		return nil, err
	}

	win, open := domain.WindowForDay(wh, in.Date, uc.settings.Open, uc.settings.Close)
	if !open {
		return []domain.TimeSlot{}, nil
	}

	booked, err := uc.repo.ListBookedIntervals(ctx, prof.ID, win.Start, win.End)
	if err != nil {
		return nil, err
	}

	slots := domain.FreeSlots(
		win,
		time.Duration(totalMin)*time.Minute,
		time.Duration(uc.settings.StepMinutes)*time.Minute,
		booked,
	)

	uc.cache.Set(ctx, prof.ID, date, totalMin, slots)

	return slots, nil
}
