package models

import "time"

type Event struct {
	Id        int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	GroupId   int64     `gorm:"column:group_id;index:idx_group_start,priority:1" json:"group_id"`
	Title     string    `gorm:"column:title;size:255" json:"title"`
	StartAt   time.Time `gorm:"column:start_at;index:idx_group_start,priority:2" json:"start_at"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Event) TableName() string {
	return "events"
}

const (
	RSVPGoing    = "going"
	RSVPMaybe    = "maybe"
	RSVPDeclined = "declined"
)

// EventRSVP is one member's reply to one event; CheckedInAt set means they
// actually showed up.
type EventRSVP struct {
	Id          int64      `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	EventId     int64      `gorm:"column:event_id;uniqueIndex:uidx_event_member,priority:1" json:"event_id"`
	GroupId     int64      `gorm:"column:group_id;index" json:"group_id"`
	MemberId    int64      `gorm:"column:member_id;uniqueIndex:uidx_event_member,priority:2" json:"member_id"`
	Status      string     `gorm:"column:status;size:16" json:"status"`
	CheckedInAt *time.Time `gorm:"column:checked_in_at" json:"checked_in_at"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
}

func (EventRSVP) TableName() string {
	return "event_rsvps"
}
