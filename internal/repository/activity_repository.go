package repository

import (
	"context"
	"errors"
	"exam_quiz_backend/internal/model"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) FindActivity(ctx context.Context, date, examType string) (*model.DailyActivity, error) {
	var activity model.DailyActivity
	err := r.DB.WithContext(ctx).
		Where("date = ? AND exam_type = ?", date, examType).
		First(&activity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find activity %s/%s: %w", date, examType, err)
	}
	return &activity, nil
}

func (r *ActivityRepository) SaveActivity(ctx context.Context, activity *model.DailyActivity) error {
	db := r.DB.WithContext(ctx)

	var err error
	if activity.ID != 0 {
		err = db.Save(activity).Error
	} else {
		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}, {Name: "exam_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"questions_answered", "correct_answers", "incorrect_answers", "updated_at"}),
		}).Create(activity).Error
	}
	if err != nil {
		return fmt.Errorf("save activity %s/%s: %w", activity.Date, activity.ExamType, err)
	}
	return nil
}

func (r *ActivityRepository) ListActivities(ctx context.Context) ([]model.DailyActivity, error) {
	var activities []model.DailyActivity
	err := r.DB.WithContext(ctx).
		Order("date desc").
		Order("exam_type asc").
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

func (r *ActivityRepository) DeleteActivitiesBefore(ctx context.Context, cutoff string) error {
	if err := r.DB.WithContext(ctx).Where("date < ?", cutoff).Delete(&model.DailyActivity{}).Error; err != nil {
		return fmt.Errorf("prune activities before %s: %w", cutoff, err)
	}
	return nil
}
