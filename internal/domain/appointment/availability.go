package appointment

import (
	"time"

	"github.com/barbertime/agenda-api/internal/models"
)

type AvailabilityInput struct {
	ProfessionalID uint
	ServiceIDs     []uint
	Date           time.Time
}

type TimeSlot struct {
	StartsAt time.Time `json:"starts_at"`
	Start    string    `json:"start"`
	End      string    `json:"end"`
}

// Interval é meio-aberto: [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps usa semântica meio-aberta; End == o.Start não conflita
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && i.End.After(o.Start)
}

// Window é a janela de atendimento de um dia, com pausa de almoço opcional
type Window struct {
	Start      time.Time
	End        time.Time
	LunchStart time.Time
	LunchEnd   time.Time
	HasLunch   bool
}

func parseHM(hm string, day time.Time) (time.Time, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	), true
}

// WindowForDay resolve a janela do dia: linha de WorkingHours do
// profissional quando existe e está ativa, senão a janela padrão da
// agenda. Retorna false quando o dia está fechado.
func WindowForDay(
	wh *models.WorkingHours,
	day time.Time,
	defaultStart string,
	defaultEnd string,
) (Window, bool) {

	startHM, endHM := defaultStart, defaultEnd
	lunchStartHM, lunchEndHM := "", ""

	if wh != nil {
		if !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
			return Window{}, false
		}
		startHM, endHM = wh.StartTime, wh.EndTime
		lunchStartHM, lunchEndHM = wh.LunchStart, wh.LunchEnd
	}

	start, ok1 := parseHM(startHM, day)
	end, ok2 := parseHM(endHM, day)
	if !ok1 || !ok2 || !start.Before(end) {
		return Window{}, false
	}

	win := Window{Start: start, End: end}

	if lunchStartHM != "" && lunchEndHM != "" {
		if ls, ok := parseHM(lunchStartHM, day); ok {
			if le, ok := parseHM(lunchEndHM, day); ok && ls.Before(le) {
				win.LunchStart = ls
				win.LunchEnd = le
				win.HasLunch = true
			}
		}
	}

	return win, true
}

// Fits valida se [start, end) cabe na janela, fora do almoço
func (w Window) Fits(start, end time.Time) bool {
	if start.Before(w.Start) || end.After(w.End) {
		return false
	}
	if w.HasLunch && start.Before(w.LunchEnd) && end.After(w.LunchStart) {
		return false
	}
	return true
}

// FreeSlots percorre a janela no passo configurado e devolve os inícios
// candidatos cujo intervalo não cruza nenhuma reserva ativa. Função pura
// do estado recebido; booked precisa vir ordenado por início.
func FreeSlots(
	win Window,
	duration time.Duration,
	step time.Duration,
	booked []Interval,
) []TimeSlot {

	if duration <= 0 || step <= 0 {
		return nil
	}

	slots := []TimeSlot{}
	bkIdx := 0

	for cur := win.Start; !cur.Add(duration).After(win.End); cur = cur.Add(step) {

		slot := Interval{Start: cur, End: cur.Add(duration)}

		if !win.Fits(slot.Start, slot.End) {
			continue
		}

		// avança reservas já encerradas
		for bkIdx < len(booked) && !booked[bkIdx].End.After(slot.Start) {
			bkIdx++
		}

		conflict := false
		for i := bkIdx; i < len(booked); i++ {
			if !booked[i].Start.Before(slot.End) {
				break
			}
			if slot.Overlaps(booked[i]) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, TimeSlot{
				StartsAt: slot.Start,
				Start:    slot.Start.Format("15:04"),
				End:      slot.End.Format("15:04"),
			})
		}
	}

	return slots
}
