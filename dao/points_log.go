package dao

import (
	"Crewly/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type PointsLog struct {
	Repo[models.PointsLog]
}

func NewPointsLog(db *gorm.DB) *PointsLog {
	return &PointsLog{Repo: NewRepo[models.PointsLog](db)}
}

// WeekTotals returns the member's committed points for one ISO week as the
// global sum plus a per-action breakdown, in a single grouped scan.
func (p *PointsLog) WeekTotals(ctx context.Context, memberID, groupID int64, weekStart time.Time) (int, map[models.SpiritAction]int, error) {
	var rows []struct {
		Action models.SpiritAction
		Total  int
	}
	err := p.Model(ctx).
		Select("action, COALESCE(SUM(points), 0) AS total").
		Where("member_id = ? AND group_id = ? AND week_start = ?", memberID, groupID, weekStart).
		Group("action").
		Scan(&rows).Error
	if err != nil {
		return 0, nil, err
	}

	total := 0
	perAction := make(map[models.SpiritAction]int, len(rows))
	for _, r := range rows {
		perAction[r.Action] = r.Total
		total += r.Total
	}
	return total, perAction, nil
}

// MonthBreakdown reconstructs "points this month" per action from the ledger.
func (p *PointsLog) MonthBreakdown(ctx context.Context, memberID, groupID int64, monthStart, nextMonth time.Time) (map[models.SpiritAction]int, error) {
	var rows []struct {
		Action models.SpiritAction
		Total  int
	}
	err := p.Model(ctx).
		Select("action, COALESCE(SUM(points), 0) AS total").
		Where("member_id = ? AND group_id = ? AND created_at >= ? AND created_at < ?", memberID, groupID, monthStart, nextMonth).
		Group("action").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[models.SpiritAction]int, len(rows))
	for _, r := range rows {
		out[r.Action] = r.Total
	}
	return out, nil
}

// CountByActions batches the named-action counts the badge engine needs,
// restricted to the actions actually asked for.
func (p *PointsLog) CountByActions(ctx context.Context, memberID, groupID int64, actions []models.SpiritAction) (map[models.SpiritAction]int, error) {
	if len(actions) == 0 {
		return map[models.SpiritAction]int{}, nil
	}
	var rows []struct {
		Action models.SpiritAction
		Total  int
	}
	err := p.Model(ctx).
		Select("action, COUNT(*) AS total").
		Where("member_id = ? AND group_id = ? AND action IN ?", memberID, groupID, actions).
		Group("action").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[models.SpiritAction]int, len(rows))
	for _, r := range rows {
		out[r.Action] = r.Total
	}
	return out, nil
}

// GroupActionCountsSince counts ledger rows group-wide per action inside the
// window, for the engagement health signal.
func (p *PointsLog) GroupActionCountsSince(ctx context.Context, groupID int64, since time.Time) (map[models.SpiritAction]int64, error) {
	var rows []struct {
		Action models.SpiritAction
		Total  int64
	}
	err := p.Model(ctx).
		Select("action, COUNT(*) AS total").
		Where("group_id = ? AND created_at >= ?", groupID, since).
		Group("action").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[models.SpiritAction]int64, len(rows))
	for _, r := range rows {
		out[r.Action] = r.Total
	}
	return out, nil
}
