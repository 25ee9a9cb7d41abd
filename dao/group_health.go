package dao

import (
	"Crewly/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GroupHealth struct {
	Repo[models.GroupHealthScore]
}

func NewGroupHealth(db *gorm.DB) *GroupHealth {
	return &GroupHealth{Repo: NewRepo[models.GroupHealthScore](db)}
}

func (h *GroupHealth) Find(ctx context.Context, groupID int64) (*models.GroupHealthScore, error) {
	return h.FindByWhere(ctx, "group_id = ?", groupID)
}

// Upsert writes the new computation, keyed by group.
func (h *GroupHealth) Upsert(ctx context.Context, score *models.GroupHealthScore) error {
	return h.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "group_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total", "attendance", "retention", "frequency", "growth",
				"engagement", "previous", "computed_at",
			}),
		}).
		Create(score).Error
}
