package dao

import (
	"Crewly/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type Event struct {
	Repo[models.Event]
}

func NewEvent(db *gorm.DB) *Event {
	return &Event{Repo: NewRepo[models.Event](db)}
}

// CountBetween counts group events starting strictly inside (after, before).
// The streak tracker uses it to detect a missed event.
func (e *Event) CountBetween(ctx context.Context, groupID int64, after, before time.Time) (int64, error) {
	var count int64
	err := e.Model(ctx).
		Where("group_id = ? AND start_at > ? AND start_at < ?", groupID, after, before).
		Count(&count).Error
	return count, err
}

func (e *Event) InRange(ctx context.Context, groupID int64, from, to time.Time) ([]models.Event, error) {
	var events []models.Event
	err := e.Db.WithContext(ctx).
		Where("group_id = ? AND start_at >= ? AND start_at < ?", groupID, from, to).
		Order("start_at").
		Find(&events).Error
	return events, err
}

func (e *Event) CountSince(ctx context.Context, groupID int64, since, now time.Time) (int64, error) {
	var count int64
	err := e.Model(ctx).
		Where("group_id = ? AND start_at >= ? AND start_at < ?", groupID, since, now).
		Count(&count).Error
	return count, err
}

// StartTimes lists every event start before the cutoff, oldest first. The
// post-event sweep uses it to recompute per-member availability.
func (e *Event) StartTimes(ctx context.Context, groupID int64, before time.Time) ([]time.Time, error) {
	var starts []time.Time
	err := e.Model(ctx).
		Where("group_id = ? AND start_at <= ?", groupID, before).
		Order("start_at").
		Pluck("start_at", &starts).Error
	return starts, err
}

func (e *Event) NextUpcoming(ctx context.Context, groupID int64, now time.Time) (*models.Event, error) {
	var ev models.Event
	err := e.Db.WithContext(ctx).
		Where("group_id = ? AND start_at > ?", groupID, now).
		Order("start_at").
		First(&ev).Error
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

type EventRSVP struct {
	Repo[models.EventRSVP]
}

func NewEventRSVP(db *gorm.DB) *EventRSVP {
	return &EventRSVP{Repo: NewRepo[models.EventRSVP](db)}
}

// GoingNoShows lists members who said "going" but never checked in.
func (r *EventRSVP) GoingNoShows(ctx context.Context, eventID int64) ([]int64, error) {
	var ids []int64
	err := r.Model(ctx).
		Where("event_id = ? AND status = ? AND checked_in_at IS NULL", eventID, models.RSVPGoing).
		Pluck("member_id", &ids).Error
	return ids, err
}

// CheckinsForEvents returns every check-in against the given events.
func (r *EventRSVP) CheckinsForEvents(ctx context.Context, eventIDs []int64) ([]models.EventRSVP, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}
	var rows []models.EventRSVP
	err := r.Db.WithContext(ctx).
		Where("event_id IN ? AND checked_in_at IS NOT NULL", eventIDs).
		Find(&rows).Error
	return rows, err
}

// EventTurnout is the RSVP'd / checked-in pair of one event.
type EventTurnout struct {
	EventID   int64
	Responded int64
	CheckedIn int64
}

// RecentTurnouts aggregates turnout for the latest past events that drew at
// least one "going" RSVP, newest first. Events nobody replied to never make
// the result, so the limit counts only events that carry signal.
func (r *EventRSVP) RecentTurnouts(ctx context.Context, groupID int64, before time.Time, limit int) ([]EventTurnout, error) {
	var rows []EventTurnout
	err := r.Db.WithContext(ctx).Raw(`
SELECT r.event_id AS event_id,
       COUNT(*) AS responded,
       SUM(CASE WHEN r.checked_in_at IS NOT NULL THEN 1 ELSE 0 END) AS checked_in
FROM event_rsvps r
JOIN events e ON e.id = r.event_id
WHERE r.group_id = ? AND r.status = ? AND e.start_at < ?
GROUP BY r.event_id, e.start_at
ORDER BY e.start_at DESC
LIMIT ?`, groupID, models.RSVPGoing, before, limit).
		Scan(&rows).Error
	return rows, err
}

// MonthlyCheckinRecord is one member's check-in count inside one calendar month.
type MonthlyCheckinRecord struct {
	MemberID int64
	Month    string
	Total    int
	LastAt   time.Time
}

// CheckinsByMemberMonth groups check-ins per member per calendar month over
// the window, for the single-month hall-of-fame record.
func (r *EventRSVP) CheckinsByMemberMonth(ctx context.Context, groupID int64, since time.Time) ([]MonthlyCheckinRecord, error) {
	var rows []MonthlyCheckinRecord
	err := r.Db.WithContext(ctx).Raw(`
SELECT r.member_id AS member_id,
       DATE_FORMAT(e.start_at, '%Y-%m') AS month,
       COUNT(*) AS total,
       MAX(r.checked_in_at) AS last_at
FROM event_rsvps r
JOIN events e ON e.id = r.event_id
WHERE r.group_id = ? AND r.checked_in_at IS NOT NULL AND e.start_at >= ?
GROUP BY r.member_id, DATE_FORMAT(e.start_at, '%Y-%m')`, groupID, since).
		Scan(&rows).Error
	return rows, err
}
