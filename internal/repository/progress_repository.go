package repository

import (
	"context"
	"errors"
	"exam_quiz_backend/internal/model"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindProgress(ctx context.Context, questionID int) (*model.QuestionProgress, error) {
	var progress model.QuestionProgress
	err := r.DB.WithContext(ctx).Where("question_id = ?", questionID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find progress %d: %w", questionID, err)
	}
	return &progress, nil
}

func (r *ProgressRepository) ListProgress(ctx context.Context) (map[int]model.QuestionProgress, error) {
	var rows []model.QuestionProgress
	if err := r.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	all := make(map[int]model.QuestionProgress, len(rows))
	for _, p := range rows {
		all[p.QuestionID] = p
	}
	return all, nil
}

// UpsertProgress relies on a single INSERT ... ON CONFLICT statement so the
// increment never races a concurrent read-modify-write.
func (r *ProgressRepository) UpsertProgress(ctx context.Context, questionID int, isCorrect bool) (*model.QuestionProgress, error) {
	fresh := model.NewQuestionProgress(questionID, isCorrect)

	correctInc, incorrectInc := 0, 1
	if isCorrect {
		correctInc, incorrectInc = 1, 0
	}

	var stored model.QuestionProgress
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "question_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"correct_count":        gorm.Expr("correct_count + ?", correctInc),
				"incorrect_count":      gorm.Expr("incorrect_count + ?", incorrectInc),
				"last_attempt_correct": isCorrect,
				"updated_at":           time.Now(),
			}),
		}).Create(&fresh).Error
		if err != nil {
			return err
		}
		return tx.Where("question_id = ?", questionID).First(&stored).Error
	})
	if err != nil {
		return nil, fmt.Errorf("upsert progress %d: %w", questionID, err)
	}
	return &stored, nil
}
