package service

import (
	"math"
	"testing"

	"Crewly/dao"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAttendanceSignal(t *testing.T) {
	turnouts := []dao.EventTurnout{
		{EventID: 1, Responded: 10, CheckedIn: 8},
		{EventID: 2, Responded: 10, CheckedIn: 6},
		{EventID: 3, Responded: 0, CheckedIn: 0}, // no RSVPs, skipped
	}
	got := attendanceSignal(turnouts)
	want := (0.8 + 0.6) / 2 * attendanceMax
	if !almostEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAttendanceSignal_NoEvents(t *testing.T) {
	if got := attendanceSignal(nil); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
}

func TestAttendanceSignal_SampleCap(t *testing.T) {
	// eleven perfect events; only the first ten count, result stays at max
	turnouts := make([]dao.EventTurnout, 11)
	for i := range turnouts {
		turnouts[i] = dao.EventTurnout{EventID: int64(i + 1), Responded: 5, CheckedIn: 5}
	}
	if got := attendanceSignal(turnouts); !almostEqual(got, attendanceMax) {
		t.Fatalf("got %v, want %v", got, attendanceMax)
	}
}

// The dao hands over only events with at least one RSVP; fewer than the full
// sample still averages over exactly what came back.
func TestAttendanceSignal_PartialSample(t *testing.T) {
	turnouts := []dao.EventTurnout{
		{EventID: 1, Responded: 4, CheckedIn: 4},
		{EventID: 2, Responded: 4, CheckedIn: 2},
		{EventID: 3, Responded: 4, CheckedIn: 3},
		{EventID: 4, Responded: 4, CheckedIn: 1},
	}
	got := attendanceSignal(turnouts)
	want := (1.0 + 0.5 + 0.75 + 0.25) / 4 * attendanceMax
	if !almostEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRetentionSignal(t *testing.T) {
	if got := retentionSignal(0, 0); got != retentionMax {
		t.Fatalf("young group: got %v, want full %v", got, retentionMax)
	}
	if got := retentionSignal(20, 18); !almostEqual(got, 0.9*retentionMax) {
		t.Fatalf("got %v, want %v", got, 0.9*retentionMax)
	}
	if got := retentionSignal(10, 10); got != retentionMax {
		t.Fatalf("perfect retention: got %v, want %v", got, retentionMax)
	}
}

func TestFrequencySignal(t *testing.T) {
	if got := frequencySignal(12, 12); got != frequencyMax {
		t.Fatalf("on target: got %v, want %v", got, frequencyMax)
	}
	if got := frequencySignal(6, 12); !almostEqual(got, frequencyMax/2) {
		t.Fatalf("half target: got %v, want %v", got, frequencyMax/2)
	}
	if got := frequencySignal(30, 12); got != frequencyMax {
		t.Fatalf("over target should clamp: got %v", got)
	}
	if got := frequencySignal(5, 0); got != 0 {
		t.Fatalf("zero target: got %v, want 0", got)
	}
}

func TestGrowthSignal(t *testing.T) {
	if got := growthSignal(0, 5); got != 0 {
		t.Fatalf("no recent joins: got %v, want 0", got)
	}
	if got := growthSignal(4, 0); !almostEqual(got, growthMax*0.7) {
		t.Fatalf("no baseline: got %v, want %v", got, growthMax*0.7)
	}
	if got := growthSignal(5, 5); !almostEqual(got, growthMax/2) {
		t.Fatalf("flat growth: got %v, want %v", got, growthMax/2)
	}
	if got := growthSignal(10, 5); got != growthMax {
		t.Fatalf("doubling: got %v, want %v", got, growthMax)
	}
	if got := growthSignal(100, 5); got != growthMax {
		t.Fatalf("ratio should cap at 2x: got %v", got)
	}
}

func TestEngagementSignal(t *testing.T) {
	// 20 members: targets are 60 log entries, 10 photos, 10 ratings
	if got := engagementSignal(60, 10, 10, 20); !almostEqual(got, engagementMax) {
		t.Fatalf("all targets met: got %v, want %v", got, engagementMax)
	}
	if got := engagementSignal(30, 0, 0, 20); !almostEqual(got, 0.25*engagementMax) {
		t.Fatalf("half the log target only: got %v, want %v", got, 0.25*engagementMax)
	}
	if got := engagementSignal(1000, 1000, 1000, 20); !almostEqual(got, engagementMax) {
		t.Fatalf("each component should cap at 1: got %v", got)
	}
	if got := engagementSignal(50, 5, 5, 0); got != 0 {
		t.Fatalf("no members: got %v, want 0", got)
	}
}

// All five maxima sum to 100, so the composite stays in range.
func TestSignalMaximaSum(t *testing.T) {
	total := attendanceMax + retentionMax + frequencyMax + growthMax + engagementMax
	if total != 100 {
		t.Fatalf("signal maxima sum to %v, want 100", total)
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(-1, 10); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
	if got := clamp(11, 10); got != 10 {
		t.Fatalf("got %v, want 10", got)
	}
	if got := clamp(5, 10); got != 5 {
		t.Fatalf("got %v, want 5", got)
	}
}
