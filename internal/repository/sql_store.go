package repository

import (
	"context"
	"exam_quiz_backend/internal/config"
	"exam_quiz_backend/internal/model"
	"fmt"

	"gorm.io/gorm"
)

// SQLStore keeps progress in relational tables, one repository per table.
type SQLStore struct {
	*ProgressRepository
	*DailyStatRepository
	*ActivityRepository
	*BadgeRepository
	*PreferenceRepository

	DB *gorm.DB
}

func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{
		ProgressRepository:   NewProgressRepository(db),
		DailyStatRepository:  NewDailyStatRepository(db),
		ActivityRepository:   NewActivityRepository(db),
		BadgeRepository:      NewBadgeRepository(db),
		PreferenceRepository: NewPreferenceRepository(db),
		DB:                   db,
	}
}

func (s *SQLStore) ClearAll(ctx context.Context) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range []interface{}{
			&model.QuestionProgress{},
			&model.DailyStat{},
			&model.DailyActivity{},
		} {
			if err := tx.Where("1 = 1").Delete(table).Error; err != nil {
				return fmt.Errorf("clear progress tables: %w", err)
			}
		}
		return nil
	})
}

func (s *SQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *SQLStore) Backend() string {
	return config.ProgressBackendSQL
}
