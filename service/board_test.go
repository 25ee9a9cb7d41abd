package service

import (
	"testing"
	"time"

	"Crewly/models"
)

func TestRankCandidates(t *testing.T) {
	cands := []boardCandidate{
		{memberID: 3, rate: 0.5, spiritMonth: 10},
		{memberID: 1, rate: 0.9, spiritMonth: 5},
		{memberID: 2, rate: 0.5, spiritMonth: 30},
		{memberID: 4, rate: 0.9, spiritMonth: 5},
	}
	rankCandidates(cands)

	wantOrder := []int64{1, 4, 2, 3}
	for i, want := range wantOrder {
		if cands[i].memberID != want {
			t.Fatalf("position %d: got member %d, want %d", i, cands[i].memberID, want)
		}
	}
}

func TestRankCandidates_Deterministic(t *testing.T) {
	// full ties resolve by member id
	cands := []boardCandidate{
		{memberID: 9, rate: 0.7, spiritMonth: 20},
		{memberID: 2, rate: 0.7, spiritMonth: 20},
		{memberID: 5, rate: 0.7, spiritMonth: 20},
	}
	rankCandidates(cands)
	if cands[0].memberID != 2 || cands[1].memberID != 5 || cands[2].memberID != 9 {
		t.Fatalf("tie-break by member id failed: %v %v %v",
			cands[0].memberID, cands[1].memberID, cands[2].memberID)
	}
}

func TestQualifiesForBoard(t *testing.T) {
	cases := []struct {
		name      string
		attended  int
		available int
		want      bool
	}{
		{"nothing available", 0, 0, false},
		{"available but never attended", 0, 5, false},
		{"attended at least once", 1, 5, true},
		{"perfect attendance", 5, 5, true},
	}
	for _, c := range cases {
		if got := qualifiesForBoard(c.attended, c.available); got != c.want {
			t.Fatalf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

// A hidden member never lists publicly but still sees their own row with its
// true rank.
func TestSplitBoard_HiddenMember(t *testing.T) {
	cands := []boardCandidate{
		{memberID: 1, rate: 0.9, hidden: true},
		{memberID: 2, rate: 0.8},
		{memberID: 3, rate: 0.7},
	}
	public, viewer := splitBoard(cands, 1, boardTopN)

	for _, rc := range public {
		if rc.cand.memberID == 1 {
			t.Fatal("hidden member appeared in the public rows")
		}
	}
	if len(public) != 2 {
		t.Fatalf("got %d public rows, want 2", len(public))
	}
	if public[0].rank != 2 || public[0].cand.memberID != 2 {
		t.Fatalf("first public row: rank %d member %d", public[0].rank, public[0].cand.memberID)
	}
	if viewer == nil || viewer.cand.memberID != 1 || viewer.rank != 1 {
		t.Fatalf("hidden viewer should keep their own ranked row, got %+v", viewer)
	}
}

func TestSplitBoard_TopNCutoff(t *testing.T) {
	cands := make([]boardCandidate, 12)
	for i := range cands {
		cands[i] = boardCandidate{memberID: int64(i + 1)}
	}
	public, viewer := splitBoard(cands, 12, 10)

	if len(public) != 10 {
		t.Fatalf("got %d public rows, want 10", len(public))
	}
	if viewer == nil || viewer.rank != 12 {
		t.Fatalf("below-the-fold viewer should still get rank 12, got %+v", viewer)
	}
}

func TestSplitBoard_ViewerNotRanked(t *testing.T) {
	cands := []boardCandidate{{memberID: 1}, {memberID: 2}}
	if _, viewer := splitBoard(cands, 99, 10); viewer != nil {
		t.Fatalf("non-qualifying viewer should have no row, got %+v", viewer)
	}
}

// A mid-month joiner is only scored against events after their join date.
func TestAvailableEvents_MidMonthJoiner(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 19, 0, 0, 0, time.UTC)
	}
	events := []models.Event{
		{Id: 1, StartAt: day(3)},
		{Id: 2, StartAt: day(10)},
		{Id: 3, StartAt: day(17)},
		{Id: 4, StartAt: day(24)},
	}

	joined := time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC)
	n, ids := availableEvents(events, joined)
	if n != 2 {
		t.Fatalf("got %d available events, want 2", n)
	}
	if _, ok := ids[3]; !ok {
		t.Fatal("event 3 should be available")
	}
	if _, ok := ids[1]; ok {
		t.Fatal("event 1 predates the join and should not count")
	}
}

func TestAvailableEvents_FullMonthMember(t *testing.T) {
	events := []models.Event{
		{Id: 1, StartAt: time.Date(2026, 8, 3, 19, 0, 0, 0, time.UTC)},
		{Id: 2, StartAt: time.Date(2026, 8, 10, 19, 0, 0, 0, time.UTC)},
	}
	joined := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if n, _ := availableEvents(events, joined); n != 2 {
		t.Fatalf("got %d, want 2", n)
	}
}
