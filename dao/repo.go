package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo is the shared gorm base every DAO embeds.
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) Model(ctx context.Context) *gorm.DB {
	var m T
	return r.Db.WithContext(ctx).Model(&m)
}

func (r *Repo[T]) Create(ctx context.Context, row *T) error {
	return r.Db.WithContext(ctx).Create(row).Error
}

func (r *Repo[T]) FindById(ctx context.Context, id int64) (*T, error) {
	var row T
	if err := r.Db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repo[T]) FindByWhere(ctx context.Context, query string, args ...any) (*T, error) {
	var row T
	if err := r.Db.WithContext(ctx).Where(query, args...).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repo[T]) FindAll(ctx context.Context, query string, args ...any) ([]T, error) {
	var rows []T
	if err := r.Db.WithContext(ctx).Where(query, args...).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repo[T]) IsExist(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	if err := r.Model(ctx).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
