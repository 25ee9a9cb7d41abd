package service

import (
	"testing"

	"Crewly/models"
)

func TestCriteriaMet(t *testing.T) {
	in := badgeInput{
		EventsAttended: 12,
		AttendanceRate: 0.8,
		MessagesSent:   150,
		ReactionsGiven: 40,
		GuestConverts:  2,
		BestStreak:     6,
		TenureDays:     400,
		Founding:       true,
		ActionCounts:   map[models.SpiritAction]int{models.ActionPhotoUpload: 25},
	}

	cases := []struct {
		name string
		c    models.BadgeCriteria
		want bool
	}{
		{"events met", models.BadgeCriteria{Type: models.CriteriaEventsAttended, Threshold: 10}, true},
		{"events short", models.BadgeCriteria{Type: models.CriteriaEventsAttended, Threshold: 13}, false},
		{"rate met", models.BadgeCriteria{Type: models.CriteriaAttendanceRate, Rate: 0.75, MinEvents: 10}, true},
		{"rate too low", models.BadgeCriteria{Type: models.CriteriaAttendanceRate, Rate: 0.9, MinEvents: 10}, false},
		{"rate sample too small", models.BadgeCriteria{Type: models.CriteriaAttendanceRate, Rate: 0.5, MinEvents: 20}, false},
		{"messages", models.BadgeCriteria{Type: models.CriteriaMessagesSent, Threshold: 100}, true},
		{"reactions", models.BadgeCriteria{Type: models.CriteriaReactionsGiven, Threshold: 50}, false},
		{"converts", models.BadgeCriteria{Type: models.CriteriaGuestConverts, Threshold: 2}, true},
		{"streak met", models.BadgeCriteria{Type: models.CriteriaStreak, Threshold: 5}, true},
		{"streak short", models.BadgeCriteria{Type: models.CriteriaStreak, Threshold: 7}, false},
		{"tenure", models.BadgeCriteria{Type: models.CriteriaTenureDays, Threshold: 365}, true},
		{"founding", models.BadgeCriteria{Type: models.CriteriaFoundingMember}, true},
		{"spirit log met", models.BadgeCriteria{Type: models.CriteriaSpiritLog, Action: models.ActionPhotoUpload, Count: 20}, true},
		{"spirit log short", models.BadgeCriteria{Type: models.CriteriaSpiritLog, Action: models.ActionPhotoUpload, Count: 30}, false},
		{"spirit log unseen action", models.BadgeCriteria{Type: models.CriteriaSpiritLog, Action: models.ActionWelcomeDM, Count: 1}, false},
		{"unknown type", models.BadgeCriteria{Type: "mystery"}, false},
	}
	for _, c := range cases {
		if got := criteriaMet(&c.c, in); got != c.want {
			t.Fatalf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

// Streaks evaluate against the best streak ever held; a current reset to zero
// cannot block or revoke the badge.
func TestCriteriaMet_StreakUsesBest(t *testing.T) {
	in := badgeInput{BestStreak: 8}
	c := models.BadgeCriteria{Type: models.CriteriaStreak, Threshold: 5}
	if !criteriaMet(&c, in) {
		t.Fatal("best streak of 8 should satisfy a threshold of 5")
	}
}

func TestCriteriaProgress(t *testing.T) {
	in := badgeInput{
		EventsAttended: 5,
		AttendanceRate: 0.5,
		MessagesSent:   50,
		BestStreak:     3,
		ActionCounts:   map[models.SpiritAction]int{},
	}

	c := models.BadgeCriteria{Type: models.CriteriaEventsAttended, Threshold: 10}
	if got := criteriaProgress(&c, in); got != 0.5 {
		t.Fatalf("events progress: got %v, want 0.5", got)
	}

	c = models.BadgeCriteria{Type: models.CriteriaMessagesSent, Threshold: 50}
	if got := criteriaProgress(&c, in); got != 1 {
		t.Fatalf("met criteria should report 1, got %v", got)
	}

	c = models.BadgeCriteria{Type: models.CriteriaAttendanceRate, Rate: 1.0, MinEvents: 10}
	if got := criteriaProgress(&c, in); got != 0.25 {
		t.Fatalf("rate progress should multiply sample and rate fractions, got %v", got)
	}

	c = models.BadgeCriteria{Type: models.CriteriaFoundingMember}
	if got := criteriaProgress(&c, in); got != 0 {
		t.Fatalf("non-founder progress: got %v, want 0", got)
	}

	c = models.BadgeCriteria{Type: models.CriteriaSpiritLog, Action: models.ActionPhotoUpload, Count: 10}
	if got := criteriaProgress(&c, in); got != 0 {
		t.Fatalf("no logged actions: got %v, want 0", got)
	}
}

func TestCriteriaProgress_Bounded(t *testing.T) {
	in := badgeInput{EventsAttended: 500}
	c := models.BadgeCriteria{Type: models.CriteriaEventsAttended, Threshold: 10}
	if got := criteriaProgress(&c, in); got != 1 {
		t.Fatalf("progress should saturate at 1, got %v", got)
	}
}

func TestDecodeCriteria(t *testing.T) {
	b := models.Badge{Criteria: []byte(`{"type":"streak","threshold":5}`)}
	c, err := b.DecodeCriteria()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.Type != models.CriteriaStreak || c.Threshold != 5 {
		t.Fatalf("decoded %+v", c)
	}
}
