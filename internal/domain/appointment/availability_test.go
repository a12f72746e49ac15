package appointment

import (
	"testing"
	"time"

	"github.com/barbertime/agenda-api/internal/models"
)

func mustTime(t *testing.T, hour, min int) time.Time {
	t.Helper()
	return time.Date(2025, 3, 10, hour, min, 0, 0, time.UTC)
}

func TestInterval_Overlaps_HalfOpen(t *testing.T) {
	a := Interval{Start: mustTime(t, 14, 0), End: mustTime(t, 14, 45)}

	// encosta na borda: não conflita
	after := Interval{Start: mustTime(t, 14, 45), End: mustTime(t, 15, 15)}
	if a.Overlaps(after) {
		t.Fatalf("adjacent intervals must not overlap")
	}

	before := Interval{Start: mustTime(t, 13, 30), End: mustTime(t, 14, 0)}
	if a.Overlaps(before) {
		t.Fatalf("interval ending at start must not overlap")
	}

	inside := Interval{Start: mustTime(t, 14, 30), End: mustTime(t, 15, 0)}
	if !a.Overlaps(inside) {
		t.Fatalf("expected overlap for 14:30-15:00 against 14:00-14:45")
	}

	covering := Interval{Start: mustTime(t, 13, 0), End: mustTime(t, 16, 0)}
	if !a.Overlaps(covering) {
		t.Fatalf("expected overlap for covering interval")
	}
}

func TestWindowForDay_DefaultWindow(t *testing.T) {
	day := mustTime(t, 0, 0)

	win, open := WindowForDay(nil, day, "08:00", "20:00")
	if !open {
		t.Fatalf("expected default window to be open")
	}
	if !win.Start.Equal(mustTime(t, 8, 0)) || !win.End.Equal(mustTime(t, 20, 0)) {
		t.Fatalf("expected 08:00-20:00, got %v-%v", win.Start, win.End)
	}
	if win.HasLunch {
		t.Fatalf("default window has no lunch break")
	}
}

func TestWindowForDay_InactiveRowClosesDay(t *testing.T) {
	day := mustTime(t, 0, 0)

	wh := &models.WorkingHours{Active: false, StartTime: "09:00", EndTime: "18:00"}
	if _, open := WindowForDay(wh, day, "08:00", "20:00"); open {
		t.Fatalf("inactive working hours row must close the day")
	}
}

func TestWindowForDay_LunchBreak(t *testing.T) {
	day := mustTime(t, 0, 0)

	wh := &models.WorkingHours{
		Active:     true,
		StartTime:  "09:00",
		EndTime:    "18:00",
		LunchStart: "12:00",
		LunchEnd:   "13:00",
	}

	win, open := WindowForDay(wh, day, "08:00", "20:00")
	if !open || !win.HasLunch {
		t.Fatalf("expected open window with lunch break")
	}

	if win.Fits(mustTime(t, 11, 45), mustTime(t, 12, 15)) {
		t.Fatalf("slot crossing into lunch must not fit")
	}
	if !win.Fits(mustTime(t, 11, 30), mustTime(t, 12, 0)) {
		t.Fatalf("slot ending at lunch start must fit")
	}
	if !win.Fits(mustTime(t, 13, 0), mustTime(t, 13, 30)) {
		t.Fatalf("slot starting at lunch end must fit")
	}
}

func TestFreeSlots_RespectsBookings(t *testing.T) {
	day := mustTime(t, 0, 0)
	win, _ := WindowForDay(nil, day, "14:00", "16:00")

	booked := []Interval{
		{Start: mustTime(t, 14, 0), End: mustTime(t, 14, 45)},
	}

	slots := FreeSlots(win, 30*time.Minute, 15*time.Minute, booked)

	starts := make(map[string]bool, len(slots))
	for _, s := range slots {
		starts[s.Start] = true
	}

	if starts["14:30"] {
		t.Fatalf("14:30 overlaps the 14:00-14:45 booking, must not be offered")
	}
	if !starts["14:45"] {
		t.Fatalf("14:45 touches the booking boundary, must be offered")
	}
	if !starts["15:30"] {
		t.Fatalf("15:30-16:00 fits the window, must be offered")
	}
	if starts["15:45"] {
		t.Fatalf("15:45-16:15 leaves the window, must not be offered")
	}
}

func TestFreeSlots_OrderedEarliestFirst(t *testing.T) {
	day := mustTime(t, 0, 0)
	win, _ := WindowForDay(nil, day, "08:00", "10:00")

	slots := FreeSlots(win, 30*time.Minute, 15*time.Minute, nil)
	if len(slots) == 0 {
		t.Fatalf("expected slots in an empty agenda")
	}

	for i := 1; i < len(slots); i++ {
		if !slots[i-1].StartsAt.Before(slots[i].StartsAt) {
			t.Fatalf("slots out of order at index %d", i)
		}
	}

	if slots[0].Start != "08:00" {
		t.Fatalf("expected first slot 08:00, got %s", slots[0].Start)
	}
}

func TestFreeSlots_Restartable(t *testing.T) {
	day := mustTime(t, 0, 0)
	win, _ := WindowForDay(nil, day, "08:00", "12:00")

	booked := []Interval{
		{Start: mustTime(t, 9, 0), End: mustTime(t, 9, 30)},
	}

	first := FreeSlots(win, 30*time.Minute, 15*time.Minute, booked)
	second := FreeSlots(win, 30*time.Minute, 15*time.Minute, booked)

	if len(first) != len(second) {
		t.Fatalf("expected identical results on repeat, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("slot %d differs between runs", i)
		}
	}
}
