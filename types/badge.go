package types

import "time"

// NewBadge is one freshly unlocked badge returned by a check pass.
type NewBadge struct {
	BadgeID     int64  `json:"badge_id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

// BadgeView is a catalog entry plus the member's award state.
type BadgeView struct {
	BadgeID     int64      `json:"badge_id"`
	Slug        string     `json:"slug"`
	Name        string     `json:"name"`
	Emoji       string     `json:"emoji"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Earned      bool       `json:"earned"`
	AwardedAt   *time.Time `json:"awarded_at,omitempty"`
}

// Milestone is the closest unearned badge, by progress ratio.
type Milestone struct {
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	Emoji    string  `json:"emoji"`
	Progress float64 `json:"progress"` // 0..1
}
