package appointment

import (
	"context"
	"testing"

	domain "github.com/barbertime/agenda-api/internal/domain/appointment"
)

func placeAt(t *testing.T, repo *fakeRepo, start string) uint {
	t.Helper()
	uc := newCreateUC(repo, mustTime(t, "2026-03-09 07:00"))
	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:       1,
		ProfessionalID: 1,
		ServiceIDs:     []uint{3, 4}, // 45 min
		StartTime:      mustTime(t, start),
	})
	if err != nil {
		t.Fatalf("placeAt %s: %v", start, err)
	}
	return ap.ID
}

func TestChangeStatusHappyPath(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	id := placeAt(t, repo, "2026-03-09 14:00")

	now := mustTime(t, "2026-03-09 13:00")
	uc := NewChangeStatus(repo, fixedClock{t: now}, nil, nil)

	ap, err := uc.Execute(context.Background(), id, domain.StatusConfirmed)
	if err != nil {
		t.Fatalf("confirmar: %v", err)
	}
	if ap.Status != string(domain.StatusConfirmed) {
		t.Errorf("status = %q, want confirmed", ap.Status)
	}
	if ap.ConfirmedAt == nil || !ap.ConfirmedAt.Equal(now) {
		t.Errorf("ConfirmedAt = %v, want %v", ap.ConfirmedAt, now)
	}

	later := mustTime(t, "2026-03-09 14:50")
	uc = NewChangeStatus(repo, fixedClock{t: later}, nil, nil)

	ap, err = uc.Execute(context.Background(), id, domain.StatusCompleted)
	if err != nil {
		t.Fatalf("concluir: %v", err)
	}
	if ap.CompletedAt == nil || !ap.CompletedAt.Equal(later) {
		t.Errorf("CompletedAt = %v, want %v", ap.CompletedAt, later)
	}

	// mudança persistida, não só no retorno
	stored, err := repo.GetAppointment(context.Background(), id)
	if err != nil {
		t.Fatalf("GetAppointment: %v", err)
	}
	if stored.Status != string(domain.StatusCompleted) {
		t.Errorf("status persistido = %q, want completed", stored.Status)
	}
}

func TestChangeStatusRejectsIllegalTransitions(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)

	now := mustTime(t, "2026-03-09 13:00")
	uc := NewChangeStatus(repo, fixedClock{t: now}, nil, nil)

	cases := []struct {
		name string
		prep []domain.Status
		to   domain.Status
	}{
		{name: "agendado direto para concluído", to: domain.StatusCompleted},
		{name: "concluído para cancelado", prep: []domain.Status{domain.StatusConfirmed, domain.StatusCompleted}, to: domain.StatusCancelled},
		{name: "cancelado para confirmado", prep: []domain.Status{domain.StatusCancelled}, to: domain.StatusConfirmed},
		{name: "confirmado de novo", prep: []domain.Status{domain.StatusConfirmed}, to: domain.StatusConfirmed},
	}

	starts := []string{"2026-03-09 09:00", "2026-03-09 10:00", "2026-03-09 11:00", "2026-03-09 12:00"}
	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id := placeAt(t, repo, starts[i])
			for _, s := range tc.prep {
				if _, err := uc.Execute(context.Background(), id, s); err != nil {
					t.Fatalf("preparação %s: %v", s, err)
				}
			}
			_, err := uc.Execute(context.Background(), id, tc.to)
			if !domain.IsInvalidTransition(err) {
				t.Fatalf("err = %v, want InvalidTransitionError", err)
			}
		})
	}
}

func TestChangeStatusUnknownStatusAndAppointment(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	id := placeAt(t, repo, "2026-03-09 14:00")

	uc := NewChangeStatus(repo, fixedClock{t: mustTime(t, "2026-03-09 13:00")}, nil, nil)

	if _, err := uc.Execute(context.Background(), id, domain.Status("paused")); !domain.IsValidation(err) {
		t.Fatalf("status desconhecido: err = %v, want ValidationError", err)
	}
	if _, err := uc.Execute(context.Background(), 999, domain.StatusConfirmed); !domain.IsNotFound(err) {
		t.Fatalf("agendamento inexistente: err = %v, want NotFoundError", err)
	}
}

func TestCancelFreesTheInterval(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	id := placeAt(t, repo, "2026-03-09 14:00")

	create := newCreateUC(repo, mustTime(t, "2026-03-09 07:00"))

	// ocupado: mesma janela conflita
	_, err := create.Execute(context.Background(), CreateAppointmentInput{
		ClientID:       1,
		ProfessionalID: 1,
		ServiceIDs:     []uint{3},
		StartTime:      mustTime(t, "2026-03-09 14:00"),
	})
	if !domain.IsConflict(err) {
		t.Fatalf("antes do cancelamento: err = %v, want ConflictError", err)
	}

	status := NewChangeStatus(repo, fixedClock{t: mustTime(t, "2026-03-09 13:00")}, nil, nil)
	ap, err := status.Execute(context.Background(), id, domain.StatusCancelled)
	if err != nil {
		t.Fatalf("cancelar: %v", err)
	}
	if ap.CancelledAt == nil {
		t.Error("CancelledAt não foi carimbado")
	}

	// intervalo liberado: a mesma janela volta a aceitar marcação
	if _, err := create.Execute(context.Background(), CreateAppointmentInput{
		ClientID:       1,
		ProfessionalID: 1,
		ServiceIDs:     []uint{3},
		StartTime:      mustTime(t, "2026-03-09 14:00"),
	}); err != nil {
		t.Fatalf("depois do cancelamento: %v", err)
	}

	// e a disponibilidade do dia oferece o horário de novo
	avail := newAvailabilityUC(repo)
	slots, err := avail.Execute(context.Background(), domain.AvailabilityInput{
		ProfessionalID: 1,
		ServiceIDs:     []uint{4}, // 15 min
		Date:           mustTime(t, "2026-03-09 00:00"),
	})
	if err != nil {
		t.Fatalf("disponibilidade: %v", err)
	}
	for _, s := range slots {
		if s.Start == "14:45" {
			return
		}
	}
	t.Error("14:45 deveria estar livre após o cancelamento")
}
