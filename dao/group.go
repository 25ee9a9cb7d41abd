package dao

import (
	"Crewly/models"
	"context"

	"gorm.io/gorm"
)

type Group struct {
	Repo[models.Group]
}

func NewGroup(db *gorm.DB) *Group {
	return &Group{Repo: NewRepo[models.Group](db)}
}

func (g *Group) Find(ctx context.Context, id int64) (*models.Group, error) {
	return g.FindById(ctx, id)
}
