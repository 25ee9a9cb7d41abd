package dao

import (
	"Crewly/models"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Badge struct {
	Repo[models.Badge]
}

func NewBadge(db *gorm.DB) *Badge {
	return &Badge{Repo: NewRepo[models.Badge](db)}
}

func (b *Badge) Catalog(ctx context.Context) ([]models.Badge, error) {
	var badges []models.Badge
	err := b.Db.WithContext(ctx).Order("id").Find(&badges).Error
	return badges, err
}

type BadgeAward struct {
	Repo[models.BadgeAward]
}

func NewBadgeAward(db *gorm.DB) *BadgeAward {
	return &BadgeAward{Repo: NewRepo[models.BadgeAward](db)}
}

func (a *BadgeAward) ByMember(ctx context.Context, memberID, groupID int64) ([]models.BadgeAward, error) {
	return a.FindAll(ctx, "member_id = ? AND group_id = ?", memberID, groupID)
}

func (a *BadgeAward) AwardedBadgeIDs(ctx context.Context, memberID, groupID int64) (map[int64]struct{}, error) {
	var ids []int64
	err := a.Model(ctx).
		Where("member_id = ? AND group_id = ?", memberID, groupID).
		Pluck("badge_id", &ids).Error
	if err != nil {
		return nil, err
	}
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// InsertAwards writes the batch one row at a time so a uniqueness conflict
// from a concurrent award drops just that row, not the whole batch. The
// unique index on (member_id, group_id, badge_id) is the real guarantee;
// returns only the rows this call actually inserted.
func (a *BadgeAward) InsertAwards(ctx context.Context, awards []models.BadgeAward) ([]models.BadgeAward, error) {
	inserted := make([]models.BadgeAward, 0, len(awards))
	for i := range awards {
		res := a.Db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&awards[i])
		if res.Error != nil {
			return inserted, res.Error
		}
		if res.RowsAffected > 0 {
			inserted = append(inserted, awards[i])
		}
	}
	return inserted, nil
}

func (a *BadgeAward) MarkAnnounced(ctx context.Context, awardID int64) error {
	now := time.Now().UTC()
	return a.Model(ctx).
		Where("id = ?", awardID).
		Update("announced_at", &now).Error
}
