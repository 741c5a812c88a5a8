package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/softspace/internal/model"
)

type ActivityRepository interface {
	Create(ctx context.Context, a *model.Activity) error
	ListRecent(ctx context.Context, offset, limit int) ([]*model.Activity, error)
	CountByKind(ctx context.Context) (map[model.ActivityKind]int64, error)
}

type activityRepository struct{ db *gorm.DB }

func NewActivityRepository(db *gorm.DB) ActivityRepository { return &activityRepository{db: db} }

// Create 写入一条动态；重复 ID 忽略，重放安全
func (r *activityRepository) Create(ctx context.Context, a *model.Activity) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(a).Error
}

func (r *activityRepository) ListRecent(ctx context.Context, offset, limit int) ([]*model.Activity, error) {
	if limit <= 0 {
		limit = 20
	}
	var res []*model.Activity
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *activityRepository) CountByKind(ctx context.Context) (map[model.ActivityKind]int64, error) {
	var rows []struct {
		Kind  model.ActivityKind
		Total int64
	}
	if err := r.db.WithContext(ctx).
		Model(&model.Activity{}).
		Select("kind, COUNT(*) AS total").
		Group("kind").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[model.ActivityKind]int64, len(rows))
	for _, row := range rows {
		out[row.Kind] = row.Total
	}
	return out, nil
}
