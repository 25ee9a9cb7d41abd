package models

import "time"

// MemberStats is the maintained running aggregate, one row per member×group.
// Write side (ledger, streak tracker) mutates it incrementally; scoring
// components only read it.
type MemberStats struct {
	ID              int64      `gorm:"primaryKey;column:id" json:"id"`
	MemberID        int64      `gorm:"column:member_id;uniqueIndex:uidx_member_group,priority:1;not null" json:"member_id"`
	GroupID         int64      `gorm:"column:group_id;uniqueIndex:uidx_member_group,priority:2;not null" json:"group_id"`
	EventsAttended  int        `gorm:"column:events_attended;default:0" json:"events_attended"`
	EventsAvailable int        `gorm:"column:events_available;default:0" json:"events_available"`
	AttendanceRate  float64    `gorm:"column:attendance_rate;default:0" json:"attendance_rate"`
	MessagesSent    int        `gorm:"column:messages_sent;default:0" json:"messages_sent"`
	ReactionsGiven  int        `gorm:"column:reactions_given;default:0" json:"reactions_given"`
	GuestConverts   int        `gorm:"column:guest_converts;default:0" json:"guest_converts"`
	CurrentStreak   int        `gorm:"column:current_streak;default:0" json:"current_streak"`
	BestStreak      int        `gorm:"column:best_streak;default:0" json:"best_streak"`
	LastEventID     *int64     `gorm:"column:last_event_id" json:"last_event_id"`
	LastEventAt     *time.Time `gorm:"column:last_event_at" json:"last_event_at"`
	SpiritTotal     int        `gorm:"column:spirit_total;default:0" json:"spirit_total"`
	SpiritMonth     int        `gorm:"column:spirit_month;default:0" json:"spirit_month"`
	MonthAnchor     string     `gorm:"column:month_anchor;size:7" json:"month_anchor"` // YYYY-MM of SpiritMonth
	HiddenFromBoard bool       `gorm:"column:hidden_from_board;default:false" json:"hidden_from_board"`
	PrivateScore    bool       `gorm:"column:private_score;default:false" json:"private_score"`
	CreatedAt       time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (MemberStats) TableName() string {
	return "member_stats"
}
