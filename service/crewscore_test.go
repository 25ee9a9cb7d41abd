package service

import (
	"testing"

	"Crewly/models"
	"Crewly/types"
)

func TestRatio(t *testing.T) {
	cases := []struct {
		have, want, out float64
	}{
		{0, 10, 0},
		{-5, 10, 0},
		{5, 10, 0.5},
		{10, 10, 1},
		{20, 10, 1},
		{5, 0, 0},
	}
	for _, c := range cases {
		if got := ratio(c.have, c.want); got != c.out {
			t.Fatalf("ratio(%v, %v) = %v, want %v", c.have, c.want, got, c.out)
		}
	}
}

func TestComputePillars_Bounded(t *testing.T) {
	// everything maxed out
	stats := &models.MemberStats{
		AttendanceRate: 1,
		EventsAttended: 500,
		SpiritTotal:    5000,
		MessagesSent:   1000,
		BestStreak:     50,
		GuestConverts:  20,
	}
	p := computePillars(stats, 2000)

	if p.Loyalty != 400 {
		t.Fatalf("loyalty: got %v, want 400", p.Loyalty)
	}
	if p.Spirit != 300 {
		t.Fatalf("spirit: got %v, want 300", p.Spirit)
	}
	if p.Adventure != 150 {
		t.Fatalf("adventure: got %v, want 150", p.Adventure)
	}
	if p.Legacy != 150 {
		t.Fatalf("legacy: got %v, want 150", p.Legacy)
	}
	if total := pillarsTotal(p); total != 1000 {
		t.Fatalf("total: got %v, want 1000", total)
	}
}

func TestComputePillars_ZeroStats(t *testing.T) {
	p := computePillars(&models.MemberStats{}, 0)
	if p.Loyalty != 0 || p.Spirit != 0 || p.Adventure != 0 || p.Legacy != 0 {
		t.Fatalf("fresh member should score zero, got %+v", p)
	}
}

// More activity never lowers a pillar.
func TestComputePillars_Monotonic(t *testing.T) {
	base := &models.MemberStats{
		AttendanceRate: 0.5,
		EventsAttended: 10,
		SpiritTotal:    200,
		MessagesSent:   40,
		BestStreak:     3,
		GuestConverts:  1,
	}
	more := *base
	more.EventsAttended++
	more.SpiritTotal += 50
	more.BestStreak++

	before := computePillars(base, 100)
	after := computePillars(&more, 100)

	if after.Loyalty < before.Loyalty {
		t.Fatalf("loyalty decreased: %v -> %v", before.Loyalty, after.Loyalty)
	}
	if after.Spirit < before.Spirit {
		t.Fatalf("spirit decreased: %v -> %v", before.Spirit, after.Spirit)
	}
	if after.Adventure < before.Adventure {
		t.Fatalf("adventure decreased: %v -> %v", before.Adventure, after.Adventure)
	}
}

func TestPillarsTotal_Capped(t *testing.T) {
	p := types.Pillars{Loyalty: 400, Spirit: 300, Adventure: 150, Legacy: 150}
	if got := pillarsTotal(p); got != 1000 {
		t.Fatalf("got %v, want 1000", got)
	}
	p = types.Pillars{Loyalty: 100, Spirit: 50, Adventure: 25, Legacy: 25}
	if got := pillarsTotal(p); got != 200 {
		t.Fatalf("got %v, want 200", got)
	}
}
