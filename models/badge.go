package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type BadgeCriteriaType string

const (
	CriteriaEventsAttended BadgeCriteriaType = "events_attended"
	CriteriaAttendanceRate BadgeCriteriaType = "attendance_rate"
	CriteriaMessagesSent   BadgeCriteriaType = "messages_sent"
	CriteriaReactionsGiven BadgeCriteriaType = "reactions_given"
	CriteriaGuestConverts  BadgeCriteriaType = "guest_converts"
	CriteriaStreak         BadgeCriteriaType = "streak"
	CriteriaTenureDays     BadgeCriteriaType = "tenure_days"
	CriteriaFoundingMember BadgeCriteriaType = "founding_member"
	CriteriaSpiritLog      BadgeCriteriaType = "spirit_log"
)

// BadgeCriteria is the unlock condition, a tagged variant: Type selects
// which payload fields apply.
//   - events_attended / messages_sent / reactions_given / guest_converts /
//     streak / tenure_days: Threshold
//   - attendance_rate: Rate plus MinEvents sample floor
//   - founding_member: no payload (joined within 30 days of group creation)
//   - spirit_log: Action plus Count (times the action appears in the ledger)
type BadgeCriteria struct {
	Type      BadgeCriteriaType `json:"type"`
	Threshold int               `json:"threshold,omitempty"`
	Rate      float64           `json:"rate,omitempty"`
	MinEvents int               `json:"min_events,omitempty"`
	Action    SpiritAction      `json:"action,omitempty"`
	Count     int               `json:"count,omitempty"`
}

type Badge struct {
	ID          int64          `gorm:"primaryKey;column:id" json:"id"`
	Slug        string         `gorm:"column:slug;size:64;uniqueIndex" json:"slug"`
	Name        string         `gorm:"column:name;size:128" json:"name"`
	Emoji       string         `gorm:"column:emoji;size:16" json:"emoji"`
	Description string         `gorm:"column:description;size:255" json:"description"`
	Category    string         `gorm:"column:category;size:32" json:"category"`
	Criteria    datatypes.JSON `gorm:"column:criteria" json:"criteria"`
	CreatedAt   time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (Badge) TableName() string {
	return "badges"
}

func (b *Badge) DecodeCriteria() (*BadgeCriteria, error) {
	var c BadgeCriteria
	if err := json.Unmarshal(b.Criteria, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// BadgeAward records one unlock. The composite unique index is the hard
// at-most-once guarantee; concurrent award attempts collapse on it.
type BadgeAward struct {
	ID          int64      `gorm:"primaryKey;column:id" json:"id"`
	MemberID    int64      `gorm:"column:member_id;uniqueIndex:uidx_member_group_badge,priority:1;not null" json:"member_id"`
	GroupID     int64      `gorm:"column:group_id;uniqueIndex:uidx_member_group_badge,priority:2;not null" json:"group_id"`
	BadgeID     int64      `gorm:"column:badge_id;uniqueIndex:uidx_member_group_badge,priority:3;not null" json:"badge_id"`
	AwardedAt   time.Time  `gorm:"column:awarded_at" json:"awarded_at"`
	AnnouncedAt *time.Time `gorm:"column:announced_at" json:"announced_at"`
}

func (BadgeAward) TableName() string {
	return "badge_awards"
}
