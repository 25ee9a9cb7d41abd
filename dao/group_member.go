package dao

import (
	"Crewly/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type GroupMember struct {
	Repo[models.GroupMember]
}

func NewGroupMember(db *gorm.DB) *GroupMember {
	return &GroupMember{Repo: NewRepo[models.GroupMember](db)}
}

func (g *GroupMember) Find(ctx context.Context, groupID, memberID int64) (*models.GroupMember, error) {
	return g.FindByWhere(ctx, "group_id = ? AND member_id = ?", groupID, memberID)
}

func (g *GroupMember) Approved(ctx context.Context, groupID int64) ([]models.GroupMember, error) {
	return g.FindAll(ctx, "group_id = ? AND status = ?", groupID, models.MemberStatusApproved)
}

// AdminIDs returns admins and the owner, the alert audience for health drops.
func (g *GroupMember) AdminIDs(ctx context.Context, groupID int64) ([]int64, error) {
	var ids []int64
	err := g.Model(ctx).
		Where("group_id = ? AND status = ? AND role IN ?", groupID, models.MemberStatusApproved,
			[]int{models.GroupMemberRoleAdmin, models.GroupMemberRoleOwner}).
		Pluck("member_id", &ids).Error
	return ids, err
}

// MatureCounts reports how many members joined before the cutoff at all, and
// how many of those are still approved. Retention is the ratio.
func (g *GroupMember) MatureCounts(ctx context.Context, groupID int64, cutoff time.Time) (total, stillApproved int64, err error) {
	if err = g.Model(ctx).
		Where("group_id = ? AND joined_at <= ?", groupID, cutoff).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err = g.Model(ctx).
		Where("group_id = ? AND joined_at <= ? AND status = ?", groupID, cutoff, models.MemberStatusApproved).
		Count(&stillApproved).Error
	return total, stillApproved, err
}

// JoinsBetween counts approved joins inside [from, to) for the growth signal.
func (g *GroupMember) JoinsBetween(ctx context.Context, groupID int64, from, to time.Time) (int64, error) {
	var count int64
	err := g.Model(ctx).
		Where("group_id = ? AND status = ? AND joined_at >= ? AND joined_at < ?",
			groupID, models.MemberStatusApproved, from, to).
		Count(&count).Error
	return count, err
}

// FirstJoiners returns the earliest members by join time, ties by id.
func (g *GroupMember) FirstJoiners(ctx context.Context, groupID int64, limit int) ([]models.GroupMember, error) {
	var rows []models.GroupMember
	err := g.Db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("joined_at, id").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
