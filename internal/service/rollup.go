package service

import (
	"context"
	"exam_quiz_backend/internal/model"
	"exam_quiz_backend/internal/repository"
	"exam_quiz_backend/internal/util"
	"sort"
)

// RecomputeDailyStats rebuilds today's snapshot from the full progress set.
// An existing entry for today is overwritten in place; a new one is appended
// and the history is trimmed to the most recent retentionDays entries.
func RecomputeDailyStats(ctx context.Context, store repository.DailyStatStore, today string, all map[int]model.QuestionProgress, retentionDays int) (model.DailyStat, error) {
	answered, mastered := ProgressTotals(all)
	stat := model.DailyStat{
		Date:          today,
		AnsweredCount: answered,
		MasteredCount: mastered,
	}

	history, err := store.ListDailyStats(ctx)
	if err != nil {
		return stat, err
	}

	exists := false
	for _, h := range history {
		if h.Date == today {
			exists = true
			break
		}
	}

	if err := store.SaveDailyStat(ctx, stat); err != nil {
		return stat, err
	}
	if exists {
		return stat, nil
	}

	history = append(history, stat)
	sort.Slice(history, func(i, j int) bool { return history[i].Date < history[j].Date })

	return stat, store.DeleteDailyStats(ctx, staleDailyStats(history, today, retentionDays))
}

// staleDailyStats picks the entries outside the retention window: anything
// beyond the newest retentionDays entries, and anything dated before the
// window that ends today. history must be sorted ascending.
func staleDailyStats(history []model.DailyStat, today string, retentionDays int) []string {
	if retentionDays <= 0 {
		return nil
	}
	cutoff := util.ShiftDay(today, -(retentionDays - 1))
	keepFrom := len(history) - retentionDays

	var stale []string
	for i, h := range history {
		if i < keepFrom || h.Date < cutoff {
			stale = append(stale, h.Date)
		}
	}
	return stale
}
