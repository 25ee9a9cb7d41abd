package service

import (
	"testing"
	"time"
)

// Attend, attend, miss one, attend: streak runs 1, 2, then resets to 1 while
// the best stays at 2.
func TestNextStreak_MissResets(t *testing.T) {
	streak := nextStreak(0, false)
	if streak != 1 {
		t.Fatalf("first check-in: got %d, want 1", streak)
	}
	streak = nextStreak(streak, false)
	if streak != 2 {
		t.Fatalf("consecutive check-in: got %d, want 2", streak)
	}
	best := streak
	streak = nextStreak(streak, true)
	if streak != 1 {
		t.Fatalf("check-in after a miss: got %d, want 1", streak)
	}
	if best != 2 {
		t.Fatalf("best streak: got %d, want 2", best)
	}
}

func TestNextStreak_NegativePrevious(t *testing.T) {
	if got := nextStreak(-3, false); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestCelebrates(t *testing.T) {
	cases := []struct {
		streak int
		want   bool
	}{
		{1, false},
		{2, false},
		{3, true},
		{4, false},
		{5, true},
		{6, true},
		{7, false},
		{9, true},
		{10, true},
		{12, true},
		{15, true},
	}
	for _, c := range cases {
		if got := celebrates(c.streak); got != c.want {
			t.Fatalf("celebrates(%d) = %v, want %v", c.streak, got, c.want)
		}
	}
}

// A member checks into 3 of the group's 4 events and never RSVPs the one
// they skip. Availability comes from the event log, so the rate reads 75%,
// not the 100% a check-in-only counter would report.
func TestReconcileAvailability_CountsUntouchedEvents(t *testing.T) {
	attended := 3
	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 19, 0, 0, 0, time.UTC)
	}
	starts := []time.Time{day(3), day(10), day(17), day(24)}
	joined := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	available, rate := reconcileAvailability(attended, availableSinceJoin(starts, joined))
	if available != 4 {
		t.Fatalf("available: got %d, want 4", available)
	}
	if rate != 0.75 {
		t.Fatalf("rate: got %v, want 0.75", rate)
	}
}

func TestAvailableSinceJoin_ExcludesPreJoinEvents(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 19, 0, 0, 0, time.UTC)
	}
	starts := []time.Time{day(3), day(10), day(17)}
	joined := time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC)

	if got := availableSinceJoin(starts, joined); got != 1 {
		t.Fatalf("got %d available, want 1", got)
	}
}

func TestReconcileAvailability_ClampsToAttended(t *testing.T) {
	// check-in recorded before its event row lands in the log
	available, rate := reconcileAvailability(5, 4)
	if available != 5 {
		t.Fatalf("available: got %d, want 5", available)
	}
	if rate != 1 {
		t.Fatalf("rate: got %v, want 1", rate)
	}
}

func TestAttendanceRate(t *testing.T) {
	if got := attendanceRate(3, 4); got != 0.75 {
		t.Fatalf("got %v, want 0.75", got)
	}
	if got := attendanceRate(0, 0); got != 0 {
		t.Fatalf("zero available: got %v, want 0", got)
	}
	if got := attendanceRate(5, 5); got != 1 {
		t.Fatalf("full attendance: got %v, want 1", got)
	}
}
