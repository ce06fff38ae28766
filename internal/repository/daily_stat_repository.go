package repository

import (
	"context"
	"exam_quiz_backend/internal/model"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyStatRepository struct {
	DB *gorm.DB
}

func NewDailyStatRepository(db *gorm.DB) *DailyStatRepository {
	return &DailyStatRepository{DB: db}
}

func (r *DailyStatRepository) ListDailyStats(ctx context.Context) ([]model.DailyStat, error) {
	var stats []model.DailyStat
	if err := r.DB.WithContext(ctx).Order("date asc").Find(&stats).Error; err != nil {
		return nil, fmt.Errorf("list daily stats: %w", err)
	}
	return stats, nil
}

func (r *DailyStatRepository) SaveDailyStat(ctx context.Context, stat model.DailyStat) error {
	stat.UpdatedAt = time.Now()
	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"answered_count", "mastered_count", "updated_at"}),
	}).Create(&stat).Error
	if err != nil {
		return fmt.Errorf("save daily stat %s: %w", stat.Date, err)
	}
	return nil
}

func (r *DailyStatRepository) DeleteDailyStats(ctx context.Context, dates []string) error {
	if len(dates) == 0 {
		return nil
	}
	if err := r.DB.WithContext(ctx).Where("date IN ?", dates).Delete(&model.DailyStat{}).Error; err != nil {
		return fmt.Errorf("delete daily stats: %w", err)
	}
	return nil
}
