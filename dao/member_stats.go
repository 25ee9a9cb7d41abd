package dao

import (
	"Crewly/models"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type MemberStats struct {
	Repo[models.MemberStats]
}

func NewMemberStats(db *gorm.DB) *MemberStats {
	return &MemberStats{Repo: NewRepo[models.MemberStats](db)}
}

func (m *MemberStats) Find(ctx context.Context, memberID, groupID int64) (*models.MemberStats, error) {
	return m.FindByWhere(ctx, "member_id = ? AND group_id = ?", memberID, groupID)
}

// FindOrCreate returns the stats row, creating it on the member's first
// qualifying action.
func (m *MemberStats) FindOrCreate(ctx context.Context, memberID, groupID int64) (*models.MemberStats, error) {
	stats, err := m.Find(ctx, memberID, groupID)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	row := &models.MemberStats{
		MemberID:  memberID,
		GroupID:   groupID,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := m.Db.WithContext(ctx).
		Where("member_id = ? AND group_id = ?", memberID, groupID).
		FirstOrCreate(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// AddSpiritPoints bumps the lifetime counter and the monthly counter. When
// the month rolled over since the last award the monthly counter restarts
// from this award instead of accumulating across months.
func (m *MemberStats) AddSpiritPoints(ctx context.Context, memberID, groupID int64, points int, monthAnchor string, monthRolled bool) error {
	updates := map[string]any{
		"spirit_total": gorm.Expr("spirit_total + ?", points),
		"month_anchor": monthAnchor,
		"updated_at":   time.Now().UTC(),
	}
	if monthRolled {
		updates["spirit_month"] = points
	} else {
		updates["spirit_month"] = gorm.Expr("spirit_month + ?", points)
	}
	return m.Model(ctx).
		Where("member_id = ? AND group_id = ?", memberID, groupID).
		Updates(updates).Error
}

func (m *MemberStats) Update(ctx context.Context, memberID, groupID int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now().UTC()
	return m.Model(ctx).
		Where("member_id = ? AND group_id = ?", memberID, groupID).
		Updates(updates).Error
}

func (m *MemberStats) FindByGroup(ctx context.Context, groupID int64) ([]models.MemberStats, error) {
	return m.FindAll(ctx, "group_id = ?", groupID)
}
