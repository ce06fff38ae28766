package service

import (
	"context"
	"exam_quiz_backend/internal/model"
	"exam_quiz_backend/internal/repository"
	"exam_quiz_backend/internal/util"
)

// RecordActivity adds one answer event to the (today, examType) ledger entry
// and prunes entries older than the retention window.
func RecordActivity(ctx context.Context, store repository.ActivityStore, today, examType string, isCorrect bool, retentionDays int) (model.DailyActivity, error) {
	activity, err := store.FindActivity(ctx, today, examType)
	if err != nil {
		return model.DailyActivity{}, err
	}
	if activity == nil {
		activity = &model.DailyActivity{Date: today, ExamType: examType}
	}
	activity.Record(isCorrect)

	if err := store.SaveActivity(ctx, activity); err != nil {
		return *activity, err
	}

	if retentionDays > 0 {
		// keep exactly the last retentionDays calendar days, today included
		cutoff := util.ShiftDay(today, -(retentionDays - 1))
		if err := store.DeleteActivitiesBefore(ctx, cutoff); err != nil {
			return *activity, err
		}
	}
	return *activity, nil
}

// TodayActivity never returns an empty result: a missing entry reads as a
// zero-valued record for (today, examType).
func TodayActivity(ctx context.Context, store repository.ActivityStore, today, examType string) (model.DailyActivity, error) {
	activity, err := store.FindActivity(ctx, today, examType)
	if err != nil || activity == nil {
		return model.DailyActivity{Date: today, ExamType: examType}, err
	}
	return *activity, nil
}

// answeredOn sums questionsAnswered over every exam for one day.
func answeredOn(activities []model.DailyActivity, day string) int {
	total := 0
	for _, a := range activities {
		if a.Date == day {
			total += a.QuestionsAnswered
		}
	}
	return total
}
