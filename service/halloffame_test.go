package service

import (
	"testing"
	"time"
)

func TestPickRecord(t *testing.T) {
	earlier := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	cands := []fameCandidate{
		{memberID: 1, value: 10, achievedAt: later},
		{memberID: 2, value: 25, achievedAt: later},
		{memberID: 3, value: 25, achievedAt: earlier}, // same value, earlier wins
	}
	winner := pickRecord(cands)
	if winner == nil || winner.memberID != 3 {
		t.Fatalf("expected member 3, got %+v", winner)
	}
}

func TestPickRecord_TieByMemberID(t *testing.T) {
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	cands := []fameCandidate{
		{memberID: 7, value: 5, achievedAt: at},
		{memberID: 4, value: 5, achievedAt: at},
		{memberID: 9, value: 5, achievedAt: at},
	}
	winner := pickRecord(cands)
	if winner == nil || winner.memberID != 4 {
		t.Fatalf("full tie should pick the lowest member id, got %+v", winner)
	}
}

func TestPickRecord_SkipsZeroValues(t *testing.T) {
	at := time.Now()
	cands := []fameCandidate{
		{memberID: 1, value: 0, achievedAt: at},
		{memberID: 2, value: -3, achievedAt: at},
	}
	if winner := pickRecord(cands); winner != nil {
		t.Fatalf("no positive values should mean no record, got %+v", winner)
	}
}

func TestPickRecord_Empty(t *testing.T) {
	if winner := pickRecord(nil); winner != nil {
		t.Fatalf("got %+v, want nil", winner)
	}
}

// Shuffled input yields the same winner.
func TestPickRecord_OrderIndependent(t *testing.T) {
	earlier := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	a := []fameCandidate{
		{memberID: 2, value: 25, achievedAt: later},
		{memberID: 3, value: 25, achievedAt: earlier},
		{memberID: 1, value: 10, achievedAt: later},
	}
	b := []fameCandidate{
		{memberID: 3, value: 25, achievedAt: earlier},
		{memberID: 1, value: 10, achievedAt: later},
		{memberID: 2, value: 25, achievedAt: later},
	}
	wa, wb := pickRecord(a), pickRecord(b)
	if wa == nil || wb == nil || wa.memberID != wb.memberID {
		t.Fatalf("winner depends on input order: %+v vs %+v", wa, wb)
	}
}
