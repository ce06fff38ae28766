package repository

import (
	"context"
	"errors"
	"exam_quiz_backend/internal/model"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepository struct {
	DB *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{DB: db}
}

func (r *PreferenceRepository) GetPreference(ctx context.Context, key string) ([]byte, error) {
	var pref model.Preference
	err := r.DB.WithContext(ctx).Where(&model.Preference{Key: key}).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get preference %s: %w", key, err)
	}
	return []byte(pref.Value), nil
}

func (r *PreferenceRepository) SetPreference(ctx context.Context, key string, value []byte) error {
	pref := model.Preference{Key: key, Value: datatypes.JSON(value)}
	pref.UpdatedAt = time.Now()
	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
	if err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}
	return nil
}
