package types

import "time"

const (
	RecordMostEvents       = "most_events"
	RecordHighestRate      = "highest_rate"
	RecordBestMonth        = "best_month"
	RecordLongestStreak    = "longest_streak"
	RecordMostConverts     = "most_converts"
	RecordFoundingChampion = "founding_champion"
)

// HallOfFameRecord is one record holder. Ties resolve by earliest
// achievement, then lowest member id.
type HallOfFameRecord struct {
	Kind       string     `json:"kind"`
	MemberID   int64      `json:"member_id"`
	Nickname   string     `json:"nickname"`
	Avatar     string     `json:"avatar,omitempty"`
	Value      float64    `json:"value"`
	Detail     string     `json:"detail,omitempty"` // e.g. the record month
	AchievedAt *time.Time `json:"achieved_at,omitempty"`
}
