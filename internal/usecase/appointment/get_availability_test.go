package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/barbertime/agenda-api/internal/domain/appointment"
	"github.com/barbertime/agenda-api/internal/models"
)

func newAvailabilityUC(repo *fakeRepo) *GetAvailability {
	return NewGetAvailability(repo, nil, defaultSettings())
}

func TestGetAvailabilityOrderedAndWithinWindow(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)

	uc := newAvailabilityUC(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ProfessionalID: 1,
		ServiceIDs:     []uint{3}, // 30 min
		Date:           mustTime(t, "2026-03-09 00:00"),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("agenda vazia deveria ter horários livres")
	}

	if slots[0].Start != "08:00" {
		t.Errorf("primeiro horário = %s, want 08:00", slots[0].Start)
	}
	// último início em que 30 min ainda cabem antes das 20:00
	if last := slots[len(slots)-1]; last.Start != "19:30" {
		t.Errorf("último horário = %s, want 19:30", last.Start)
	}

	for i := 1; i < len(slots); i++ {
		if !slots[i-1].StartsAt.Before(slots[i].StartsAt) {
			t.Fatalf("horários fora de ordem: %s depois de %s", slots[i].Start, slots[i-1].Start)
		}
	}
}

func TestGetAvailabilitySkipsBookedIntervals(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)

	create := newCreateUC(repo, mustTime(t, "2026-03-09 07:00"))
	if _, err := create.Execute(context.Background(), CreateAppointmentInput{
		ClientID:       1,
		ProfessionalID: 1,
		ServiceIDs:     []uint{3, 4}, // 14:00–14:45
		StartTime:      mustTime(t, "2026-03-09 14:00"),
	}); err != nil {
		t.Fatalf("marcação inicial: %v", err)
	}

	uc := newAvailabilityUC(repo)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ProfessionalID: 1,
		ServiceIDs:     []uint{3},
		Date:           mustTime(t, "2026-03-09 00:00"),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	offered := make(map[string]bool, len(slots))
	for _, s := range slots {
		offered[s.Start] = true
	}

	for _, blocked := range []string{"13:45", "14:00", "14:15", "14:30"} {
		if offered[blocked] {
			t.Errorf("%s invade a marcação 14:00–14:45 e foi oferecido", blocked)
		}
	}
	if !offered["13:30"] {
		t.Error("13:30 termina às 14:00 e deveria ser oferecido")
	}
	if !offered["14:45"] {
		t.Error("14:45 começa no fim da marcação e deveria ser oferecido")
	}
}

func TestGetAvailabilityClosedDay(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)

	// domingo fechado para o profissional 1
	sunday := mustTime(t, "2026-03-08 00:00")
	repo.workingHours[1] = map[int]models.WorkingHours{
		int(time.Sunday): {ProfessionalID: 1, Weekday: int(time.Sunday), Active: false},
	}

	uc := newAvailabilityUC(repo)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ProfessionalID: 1,
		ServiceIDs:     []uint{3},
		Date:           sunday,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("dia fechado devolveu %d horários", len(slots))
	}
}

func TestGetAvailabilityRespectsCustomWindowAndLunch(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)

	day := mustTime(t, "2026-03-09 00:00") // segunda
	repo.workingHours[1] = map[int]models.WorkingHours{
		int(time.Monday): {
			ProfessionalID: 1,
			Weekday:        int(time.Monday),
			StartTime:      "09:00",
			EndTime:        "18:00",
			LunchStart:     "12:00",
			LunchEnd:       "13:00",
			Active:         true,
		},
	}

	uc := newAvailabilityUC(repo)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ProfessionalID: 1,
		ServiceIDs:     []uint{3},
		Date:           day,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	offered := make(map[string]bool, len(slots))
	for _, s := range slots {
		offered[s.Start] = true
	}

	if offered["08:00"] || offered["08:45"] {
		t.Error("horário antes da janela do profissional foi oferecido")
	}
	if !offered["09:00"] {
		t.Error("09:00 abre a janela e deveria ser oferecido")
	}
	for _, lunch := range []string{"11:45", "12:00", "12:30"} {
		if offered[lunch] {
			t.Errorf("%s cai no almoço e foi oferecido", lunch)
		}
	}
	if !offered["11:30"] || !offered["13:00"] {
		t.Error("bordas do almoço (11:30 e 13:00) deveriam ser oferecidas")
	}
	if offered["17:45"] {
		t.Error("17:45 não cabe antes das 18:00 e foi oferecido")
	}
}

func TestGetAvailabilityValidation(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	uc := newAvailabilityUC(repo)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ProfessionalID: 1,
		Date:           mustTime(t, "2026-03-09 00:00"),
	})
	if !domain.IsValidation(err) {
		t.Fatalf("sem serviços: err = %v, want ValidationError", err)
	}

	_, err = uc.Execute(context.Background(), domain.AvailabilityInput{
		ProfessionalID: 2, // inativo
		ServiceIDs:     []uint{3},
		Date:           mustTime(t, "2026-03-09 00:00"),
	})
	if !domain.IsValidation(err) {
		t.Fatalf("profissional inativo: err = %v, want ValidationError", err)
	}
}
