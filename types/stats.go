package types

import "time"

// StreakInfo is the member's current/best streak pair.
type StreakInfo struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

// UpcomingEvent is the next group event, shown on the dashboard.
type UpcomingEvent struct {
	EventID int64     `json:"event_id"`
	Title   string    `json:"title"`
	StartAt time.Time `json:"start_at"`
}

// MemberDashboard is the "My Stats" composition: everything sourced from
// the scoring components, nothing computed here.
type MemberDashboard struct {
	MemberID      int64          `json:"member_id"`
	GroupID       int64          `json:"group_id"`
	Score         CrewScore      `json:"score"`
	Streak        StreakInfo     `json:"streak"`
	Board         ViewerEntry    `json:"board"`
	Badges        []BadgeView    `json:"badges"`
	NextMilestone *Milestone     `json:"next_milestone,omitempty"`
	MonthPoints   MonthBreakdown `json:"month_points"`
	NextEvent     *UpcomingEvent `json:"next_event,omitempty"`
}
