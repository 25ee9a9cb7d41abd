package dao

import (
	"Crewly/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{Repo: NewRepo[models.Users](db)}
}

// FindByIDs loads display profiles for enrichment, keyed by id.
func (u *Users) FindByIDs(ctx context.Context, ids []int64) (map[int64]models.Users, error) {
	out := make(map[int64]models.Users, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []models.Users
	if err := u.Db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.Id] = r
	}
	return out, nil
}
