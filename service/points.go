package service

import (
	"Crewly/config"
	"Crewly/dao"
	"Crewly/models"
	"Crewly/pkg/log"
	"Crewly/pkg/snowflake"
	"Crewly/types"
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	ReasonUnknownAction    = "unknown_action"
	ReasonWeeklyCapReached = "weekly_cap_reached"
	ReasonInsertFailed     = "insert_failed"
)

type IPointsService interface {
	AwardSpiritPoints(ctx context.Context, memberID, groupID int64, action models.SpiritAction, refID string, override *int) (*types.AwardResult, error)
	MonthlyBreakdown(ctx context.Context, memberID, groupID int64) (*types.MonthBreakdown, error)
}

type PointsService struct {
	Config    *config.Config
	PointsLog *dao.PointsLog
	Stats     *dao.MemberStats
	Badges    IBadgeService
}

var _ IPointsService = (*PointsService)(nil)

// WeekStart returns the ISO week start (Monday 00:00 UTC) containing t.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	day := t.Truncate(24 * time.Hour)
	return day.AddDate(0, 0, -(weekday - 1))
}

// MonthAnchor is the YYYY-MM key of the calendar month containing t.
func MonthAnchor(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// capAllows reports whether adding points keeps both the global weekly total
// and the action's own weekly total within bounds. actionCap 0 = uncapped.
func capAllows(globalTotal, actionTotal, points, actionCap, globalCap int) bool {
	if globalTotal+points > globalCap {
		return false
	}
	if actionCap > 0 && actionTotal+points > actionCap {
		return false
	}
	return true
}

// AwardSpiritPoints appends one ledger row after the weekly cap check.
//
// The cap read and the insert are deliberately not serialized against
// concurrent awards for the same member: two simultaneous calls can both see
// a pre-update total and slightly overshoot. Low stakes, self-correcting the
// following week; a hard bound would need a per-member/week conditional
// update.
func (p *PointsService) AwardSpiritPoints(ctx context.Context, memberID, groupID int64, action models.SpiritAction, refID string, override *int) (*types.AwardResult, error) {
	rule, ok := models.ActionCatalog[action]
	if !ok {
		pointsRejectedTotal.WithLabelValues(ReasonUnknownAction).Inc()
		return &types.AwardResult{Awarded: false, Reason: ReasonUnknownAction}, nil
	}
	points := rule.Points
	if override != nil && *override > 0 {
		points = *override
	}

	now := time.Now().UTC()
	week := WeekStart(now)

	globalTotal, perAction, err := p.PointsLog.WeekTotals(ctx, memberID, groupID, week)
	if err != nil {
		return nil, err
	}
	if !capAllows(globalTotal, perAction[action], points, rule.WeeklyCap, p.Config.Scoring.GlobalWeeklyCap) {
		pointsRejectedTotal.WithLabelValues(ReasonWeeklyCapReached).Inc()
		return &types.AwardResult{
			Awarded:       false,
			TotalThisWeek: globalTotal,
			Reason:        ReasonWeeklyCapReached,
		}, nil
	}

	entry := &models.PointsLog{
		ID:        snowflake.GenID(),
		MemberID:  memberID,
		GroupID:   groupID,
		Action:    action,
		Points:    points,
		RefID:     refID,
		WeekStart: week,
	}
	if err := p.PointsLog.Create(ctx, entry); err != nil {
		log.L.Error("points ledger insert failed",
			zap.Int64("member_id", memberID), zap.Int64("group_id", groupID),
			zap.String("action", string(action)), zap.Error(err))
		pointsRejectedTotal.WithLabelValues(ReasonInsertFailed).Inc()
		return &types.AwardResult{Awarded: false, Reason: ReasonInsertFailed}, nil
	}

	if err := p.bumpCounters(ctx, memberID, groupID, points, now); err != nil {
		// ledger row is committed; the running aggregate catches up on the
		// next successful award
		log.L.Warn("stats counter update failed",
			zap.Int64("member_id", memberID), zap.Error(err))
	}

	pointsAwardedTotal.WithLabelValues(string(action)).Inc()

	fireAndForget("badge check after award", func(ctx context.Context) error {
		_, err := p.Badges.CheckAndAwardBadges(ctx, memberID, groupID)
		return err
	})

	return &types.AwardResult{
		Awarded:       true,
		Points:        points,
		TotalThisWeek: globalTotal + points,
	}, nil
}

func (p *PointsService) bumpCounters(ctx context.Context, memberID, groupID int64, points int, now time.Time) error {
	stats, err := p.Stats.FindOrCreate(ctx, memberID, groupID)
	if err != nil {
		return err
	}
	anchor := MonthAnchor(now)
	return p.Stats.AddSpiritPoints(ctx, memberID, groupID, points, anchor, stats.MonthAnchor != anchor)
}

func (p *PointsService) MonthlyBreakdown(ctx context.Context, memberID, groupID int64) (*types.MonthBreakdown, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	byAction, err := p.PointsLog.MonthBreakdown(ctx, memberID, groupID, monthStart, nextMonth)
	if err != nil {
		return nil, err
	}

	out := &types.MonthBreakdown{
		Month:  MonthAnchor(now),
		ByType: make(map[string]int, len(byAction)),
	}
	for action, total := range byAction {
		out.ByType[string(action)] = total
		out.Total += total
	}
	return out, nil
}
