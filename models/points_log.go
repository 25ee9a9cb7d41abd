package models

import "time"

// SpiritAction enumerates the point-earning actions.
type SpiritAction string

const (
	ActionEventAttendance SpiritAction = "event_attendance"
	ActionEventHost       SpiritAction = "event_host"
	ActionPhotoUpload     SpiritAction = "photo_upload"
	ActionMessageActivity SpiritAction = "message_activity"
	ActionReactionGiven   SpiritAction = "reaction_given"
	ActionWelcomeDM       SpiritAction = "welcome_dm"
	ActionGuestConvert    SpiritAction = "guest_convert"
	ActionRatingSubmitted SpiritAction = "rating_submitted"
	ActionGroupBoost      SpiritAction = "group_boost"
)

// ActionRule is the base value and weekly ceiling of one action.
// WeeklyCap 0 means the action is uncapped (the global cap still applies).
type ActionRule struct {
	Points    int
	WeeklyCap int
}

var ActionCatalog = map[SpiritAction]ActionRule{
	ActionEventAttendance: {Points: 20, WeeklyCap: 80},
	ActionEventHost:       {Points: 30, WeeklyCap: 60},
	ActionPhotoUpload:     {Points: 5, WeeklyCap: 20},
	ActionMessageActivity: {Points: 2, WeeklyCap: 20},
	ActionReactionGiven:   {Points: 1, WeeklyCap: 10},
	ActionWelcomeDM:       {Points: 5, WeeklyCap: 25},
	ActionGuestConvert:    {Points: 25, WeeklyCap: 0},
	ActionRatingSubmitted: {Points: 5, WeeklyCap: 15},
	ActionGroupBoost:      {Points: 10, WeeklyCap: 0},
}

// PointsLog is an immutable ledger row. The week_start column carries the
// ISO week (Monday 00:00 UTC) so cap sums are a single indexed scan.
type PointsLog struct {
	ID        int64        `gorm:"primaryKey;column:id" json:"id"`
	MemberID  int64        `gorm:"column:member_id;index:idx_member_group_week,priority:1;not null" json:"member_id"`
	GroupID   int64        `gorm:"column:group_id;index:idx_member_group_week,priority:2;not null" json:"group_id"`
	Action    SpiritAction `gorm:"column:action;size:32;not null" json:"action"`
	Points    int          `gorm:"column:points;not null" json:"points"`
	RefID     string       `gorm:"column:ref_id;size:64" json:"ref_id"`
	WeekStart time.Time    `gorm:"column:week_start;index:idx_member_group_week,priority:3;not null" json:"week_start"`
	CreatedAt time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PointsLog) TableName() string {
	return "points_log"
}
