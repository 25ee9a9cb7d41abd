package config

import "testing"

func TestScoringDefaults(t *testing.T) {
	s := &Scoring{}
	s.applyDefaults()

	if s.GlobalWeeklyCap != 100 {
		t.Fatalf("global cap: got %d, want 100", s.GlobalWeeklyCap)
	}
	if s.CadenceTarget != 12 {
		t.Fatalf("cadence target: got %d, want 12", s.CadenceTarget)
	}
	if s.DefaultTierTheme != "nautical" {
		t.Fatalf("tier theme: got %q, want nautical", s.DefaultTierTheme)
	}
	if s.HealthDropAlert != 15 {
		t.Fatalf("drop alert: got %d, want 15", s.HealthDropAlert)
	}
	if s.FameMinEvents != 5 {
		t.Fatalf("fame min events: got %d, want 5", s.FameMinEvents)
	}
}

func TestScoringDefaults_KeepExplicit(t *testing.T) {
	s := &Scoring{GlobalWeeklyCap: 150, CadenceTarget: 8}
	s.applyDefaults()

	if s.GlobalWeeklyCap != 150 || s.CadenceTarget != 8 {
		t.Fatalf("explicit values overwritten: %+v", s)
	}
}

func TestMySQLDsn(t *testing.T) {
	m := &MySQL{Host: "db", Port: 3306, Username: "u", Password: "p", Database: "crewly"}
	want := "u:p@tcp(db:3306)/crewly?charset=utf8mb4&parseTime=True&loc=UTC"
	if got := m.Dsn(); got != want {
		t.Fatalf("dsn: got %q, want %q", got, want)
	}
}
