package service

import (
	"Crewly/dao"
	"Crewly/pkg/log"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IStreakService interface {
	UpdateStreakOnCheckIn(ctx context.Context, memberID, groupID, eventID int64) error
	CheckStreakBreaks(ctx context.Context, eventID, groupID int64) error
}

type StreakService struct {
	Events   *dao.Event
	RSVPs    *dao.EventRSVP
	Stats    *dao.MemberStats
	Members  *dao.GroupMember
	Badges   IBadgeService
	Notifier Notifier
}

var _ IStreakService = (*StreakService)(nil)

// nextStreak applies the cadence rule: a streak survives only when no group
// event fell between the last attended event and this one.
func nextStreak(previous int, missedIntervening bool) int {
	if missedIntervening || previous <= 0 {
		return 1
	}
	return previous + 1
}

// celebrates reports whether a streak length is worth a push: every third
// from 3, every fifth from 5.
func celebrates(streak int) bool {
	if streak >= 3 && streak%3 == 0 {
		return true
	}
	return streak >= 5 && streak%5 == 0
}

func attendanceRate(attended, available int) float64 {
	if available <= 0 {
		return 0
	}
	return float64(attended) / float64(available)
}

// availableSinceJoin counts events the member could have attended. Every
// group event from the join date on counts, whether or not the member ever
// RSVPed to it.
func availableSinceJoin(starts []time.Time, joinedAt time.Time) int {
	n := 0
	for _, at := range starts {
		if !at.Before(joinedAt) {
			n++
		}
	}
	return n
}

// reconcileAvailability derives the stored availability columns from the
// event-log count, clamped so a check-in recorded before its event row can
// never push the rate past 1.
func reconcileAvailability(attended, available int) (int, float64) {
	if available < attended {
		available = attended
	}
	return available, attendanceRate(attended, available)
}

// UpdateStreakOnCheckIn advances the member's streak for one check-in.
// Streaks count consecutive participation against the group's own event
// cadence, not wall-clock days.
func (s *StreakService) UpdateStreakOnCheckIn(ctx context.Context, memberID, groupID, eventID int64) error {
	event, err := s.Events.FindById(ctx, eventID)
	if err != nil {
		return fmt.Errorf("load event %d: %w", eventID, err)
	}
	member, err := s.Members.Find(ctx, groupID, memberID)
	if err != nil {
		return fmt.Errorf("load membership: %w", err)
	}

	stats, err := s.Stats.FindOrCreate(ctx, memberID, groupID)
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}

	missed := false
	if stats.LastEventAt != nil {
		between, err := s.Events.CountBetween(ctx, groupID, *stats.LastEventAt, event.StartAt)
		if err != nil {
			return fmt.Errorf("count intervening events: %w", err)
		}
		missed = between > 0
	}

	streak := 1
	if stats.LastEventAt != nil {
		streak = nextStreak(stats.CurrentStreak, missed)
	}
	best := stats.BestStreak
	if streak > best {
		best = streak
	}

	now := time.Now().UTC()
	attended := stats.EventsAttended + 1
	sinceJoin, err := s.Events.CountSince(ctx, groupID, member.JoinedAt, now)
	if err != nil {
		return fmt.Errorf("count events since join: %w", err)
	}
	available, rate := reconcileAvailability(attended, int(sinceJoin))

	err = s.Stats.Update(ctx, memberID, groupID, map[string]any{
		"current_streak":   streak,
		"best_streak":      best,
		"last_event_id":    eventID,
		"last_event_at":    event.StartAt,
		"events_attended":  attended,
		"events_available": available,
		"attendance_rate":  rate,
	})
	if err != nil {
		return fmt.Errorf("persist streak: %w", err)
	}

	fireAndForget("badge check after check-in", func(ctx context.Context) error {
		_, err := s.Badges.CheckAndAwardBadges(ctx, memberID, groupID)
		return err
	})

	if celebrates(streak) {
		payload := NotificationPayload{
			Title: fmt.Sprintf("%d events in a row!", streak),
			Body:  "Your streak is alive. See you at the next one.",
		}
		fireAndForget("streak celebration", func(ctx context.Context) error {
			return s.Notifier.SendToMember(ctx, memberID, payload, NotifyCategoryStreak)
		})
	}
	return nil
}

// CheckStreakBreaks runs after an event closes. Availability is refreshed for
// every approved member with a stats row, because the event happened whether
// or not they ever RSVPed to it; streaks break only for members who said
// "going" and never checked in.
func (s *StreakService) CheckStreakBreaks(ctx context.Context, eventID, groupID int64) error {
	noShows, err := s.RSVPs.GoingNoShows(ctx, eventID)
	if err != nil {
		return fmt.Errorf("load no-shows: %w", err)
	}
	noShowSet := make(map[int64]struct{}, len(noShows))
	for _, id := range noShows {
		noShowSet[id] = struct{}{}
	}

	members, err := s.Members.Approved(ctx, groupID)
	if err != nil {
		return fmt.Errorf("load members: %w", err)
	}
	starts, err := s.Events.StartTimes(ctx, groupID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("load event history: %w", err)
	}

	for _, m := range members {
		stats, err := s.Stats.Find(ctx, m.MemberId, groupID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue // never earned a stats row, nothing to refresh
			}
			log.L.Warn("streak break: stats load failed",
				zap.Int64("member_id", m.MemberId), zap.Error(err))
			continue
		}

		available, rate := reconcileAvailability(
			stats.EventsAttended, availableSinceJoin(starts, m.JoinedAt))
		update := map[string]any{
			"events_available": available,
			"attendance_rate":  rate,
		}
		broken := 0
		if _, ok := noShowSet[m.MemberId]; ok {
			broken = stats.CurrentStreak
			update["current_streak"] = 0
		}

		if err := s.Stats.Update(ctx, m.MemberId, groupID, update); err != nil {
			log.L.Warn("streak break: persist failed",
				zap.Int64("member_id", m.MemberId), zap.Error(err))
			continue
		}

		if broken >= 3 {
			s.sendReengagement(m.MemberId, groupID, broken)
		}
	}
	return nil
}

func (s *StreakService) sendReengagement(memberID, groupID int64, broken int) {
	fireAndForget("streak re-engagement", func(ctx context.Context) error {
		payload := NotificationPayload{
			Title: fmt.Sprintf("Your %d-event streak ended", broken),
			Body:  "Start a new one at the next event.",
		}
		if next, err := s.Events.NextUpcoming(ctx, groupID, time.Now().UTC()); err == nil {
			payload.Body = fmt.Sprintf("Start a new one at %q.", next.Title)
			payload.URL = fmt.Sprintf("/events/%d", next.Id)
		}
		return s.Notifier.SendToMember(ctx, memberID, payload, NotifyCategoryStreak)
	})
}
