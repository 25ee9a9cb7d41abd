package service

import (
	"Crewly/config"
	"Crewly/dao"
	"Crewly/models"
	"Crewly/pkg/log"
	"Crewly/types"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Signal maxima; the total is their sum, so it stays inside 0-100.
const (
	attendanceMax = 30.0
	retentionMax  = 25.0
	frequencyMax  = 20.0
	growthMax     = 15.0
	engagementMax = 10.0
)

// Rolling windows per signal.
const (
	attendanceSample = 10
	maturityWindow   = 30 * 24 * time.Hour
	frequencyWindow  = 90 * 24 * time.Hour
	growthWindow     = 30 * 24 * time.Hour
	engageWindow     = 30 * 24 * time.Hour
)

type IHealthService interface {
	CalculateGroupHealthScore(ctx context.Context, groupID int64) (*types.HealthResult, error)
}

type HealthService struct {
	Config    *config.Config
	Events    *dao.Event
	RSVPs     *dao.EventRSVP
	Members   *dao.GroupMember
	PointsLog *dao.PointsLog
	Health    *dao.GroupHealth
	Notifier  Notifier
}

var _ IHealthService = (*HealthService)(nil)

func clamp(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// attendanceSignal: mean checked-in/RSVP'd ratio over the sampled events.
// Events without a single RSVP carry no signal and are skipped.
func attendanceSignal(turnouts []dao.EventTurnout) float64 {
	var sum float64
	n := 0
	for _, t := range turnouts {
		if t.Responded <= 0 {
			continue
		}
		sum += float64(t.CheckedIn) / float64(t.Responded)
		n++
		if n == attendanceSample {
			break
		}
	}
	if n == 0 {
		return 0
	}
	return clamp(sum/float64(n)*attendanceMax, attendanceMax)
}

// retentionSignal: fraction of mature members still approved. A group too
// young to have mature members gets full marks.
func retentionSignal(matureTotal, stillApproved int64) float64 {
	if matureTotal == 0 {
		return retentionMax
	}
	return clamp(float64(stillApproved)/float64(matureTotal)*retentionMax, retentionMax)
}

// frequencySignal: events held in the trailing 90 days against the cadence
// target, linear up to the target.
func frequencySignal(events90 int64, target int) float64 {
	if target <= 0 {
		return 0
	}
	return clamp(float64(events90)/float64(target)*frequencyMax, frequencyMax)
}

// growthSignal: joins this 30-day window vs the preceding one. The ratio is
// capped at 2x before scaling; joins with no prior baseline earn a flat 70%.
func growthSignal(recent, prior int64) float64 {
	if recent == 0 {
		return 0
	}
	if prior == 0 {
		return growthMax * 0.7
	}
	ratio := float64(recent) / float64(prior)
	if ratio > 2 {
		ratio = 2
	}
	return clamp(ratio/2*growthMax, growthMax)
}

// engagementSignal: spirit-log volume, photos and ratings against per-member
// targets, blended 50/25/25, each ratio capped at 1 before blending.
func engagementSignal(logEntries, photos, ratings int64, memberCount int) float64 {
	if memberCount <= 0 {
		return 0
	}
	m := float64(memberCount)
	capped := func(have, want float64) float64 {
		if want <= 0 {
			return 0
		}
		r := have / want
		if r > 1 {
			r = 1
		}
		return r
	}
	blend := 0.5*capped(float64(logEntries), m*3) +
		0.25*capped(float64(photos), m*0.5) +
		0.25*capped(float64(ratings), m*0.5)
	return clamp(blend*engagementMax, engagementMax)
}

func (h *HealthService) CalculateGroupHealthScore(ctx context.Context, groupID int64) (*types.HealthResult, error) {
	now := time.Now().UTC()

	var (
		turnouts     []dao.EventTurnout
		matureTotal  int64
		matureStayed int64
		events90     int64
		joinsRecent  int64
		joinsPrior   int64
		actionCounts map[models.SpiritAction]int64
		memberCount  int
	)

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		// the query itself skips events nobody RSVPed to, so these are the
		// ten most recent events that actually carry signal
		turnouts, err = h.RSVPs.RecentTurnouts(ctx, groupID, now, attendanceSample)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		matureTotal, matureStayed, err = h.Members.MatureCounts(ctx, groupID, now.Add(-maturityWindow))
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		events90, err = h.Events.CountSince(ctx, groupID, now.Add(-frequencyWindow), now)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		joinsRecent, err = h.Members.JoinsBetween(ctx, groupID, now.Add(-growthWindow), now)
		if err != nil {
			return err
		}
		joinsPrior, err = h.Members.JoinsBetween(ctx, groupID, now.Add(-2*growthWindow), now.Add(-growthWindow))
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		actionCounts, err = h.PointsLog.GroupActionCountsSince(ctx, groupID, now.Add(-engageWindow))
		if err != nil {
			return err
		}
		approved, err := h.Members.Approved(ctx, groupID)
		if err != nil {
			return err
		}
		memberCount = len(approved)
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, fmt.Errorf("load health inputs: %w", err)
	}

	var logEntries int64
	for _, n := range actionCounts {
		logEntries += n
	}

	signals := types.HealthSignals{
		Attendance: attendanceSignal(turnouts),
		Retention:  retentionSignal(matureTotal, matureStayed),
		Frequency:  frequencySignal(events90, h.Config.Scoring.CadenceTarget),
		Growth:     growthSignal(joinsRecent, joinsPrior),
		Engagement: engagementSignal(
			logEntries,
			actionCounts[models.ActionPhotoUpload],
			actionCounts[models.ActionRatingSubmitted],
			memberCount,
		),
	}
	total := signals.Attendance + signals.Retention + signals.Frequency + signals.Growth + signals.Engagement

	previous := 0.0
	if prior, err := h.Health.Find(ctx, groupID); err == nil {
		previous = prior.Total
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load previous score: %w", err)
	}

	row := &models.GroupHealthScore{
		GroupID:    groupID,
		Total:      total,
		Attendance: signals.Attendance,
		Retention:  signals.Retention,
		Frequency:  signals.Frequency,
		Growth:     signals.Growth,
		Engagement: signals.Engagement,
		Previous:   previous,
		ComputedAt: now,
	}
	if err := h.Health.Upsert(ctx, row); err != nil {
		return nil, fmt.Errorf("persist health score: %w", err)
	}

	result := &types.HealthResult{
		GroupID:  groupID,
		Total:    total,
		Signals:  signals,
		Previous: previous,
		Delta:    total - previous,
	}

	if previous-total >= float64(h.Config.Scoring.HealthDropAlert) {
		h.alertAdmins(groupID, previous, total)
	}
	return result, nil
}

// alertAdmins is the one place the engine reaches out on its own instead of
// answering a query.
func (h *HealthService) alertAdmins(groupID int64, before, after float64) {
	healthAlertsTotal.Inc()
	fireAndForget("health drop alert", func(ctx context.Context) error {
		admins, err := h.Members.AdminIDs(ctx, groupID)
		if err != nil {
			return err
		}
		payload := NotificationPayload{
			Title: "Group health is slipping",
			Body:  fmt.Sprintf("Health score dropped from %.0f to %.0f. Worth a look.", before, after),
			URL:   fmt.Sprintf("/groups/%d/health", groupID),
		}
		for _, adminID := range admins {
			if err := h.Notifier.SendToMember(ctx, adminID, payload, NotifyCategoryHealth); err != nil {
				log.L.Warn("health alert send failed",
					zap.Int64("admin_id", adminID), zap.Error(err))
			}
		}
		return nil
	})
}
