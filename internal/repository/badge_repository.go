package repository

import (
	"context"
	"exam_quiz_backend/internal/model"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

func (r *BadgeRepository) ListEarnedBadges(ctx context.Context) ([]model.EarnedBadge, error) {
	var badges []model.EarnedBadge
	err := r.DB.WithContext(ctx).Order("achieved_date asc").Order("badge_id asc").Find(&badges).Error
	if err != nil {
		return nil, fmt.Errorf("list earned badges: %w", err)
	}
	return badges, nil
}

func (r *BadgeRepository) AddEarnedBadge(ctx context.Context, badgeID, achievedDate string) (bool, error) {
	earned := model.EarnedBadge{BadgeID: badgeID, AchievedDate: achievedDate}
	res := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "badge_id"}},
		DoNothing: true,
	}).Create(&earned)
	if res.Error != nil {
		return false, fmt.Errorf("add earned badge %s: %w", badgeID, res.Error)
	}
	return res.RowsAffected > 0, nil
}
