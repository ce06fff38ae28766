package service

import (
	"context"
	"exam_quiz_backend/internal/model"
	"exam_quiz_backend/internal/repository"
	"exam_quiz_backend/internal/util"
	"exam_quiz_backend/pkg/logger"
	"exam_quiz_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// BadgeCatalog is fixed at build time. Evaluation reports unlocks in this
// order.
var BadgeCatalog = []model.BadgeDefinition{
	{ID: "answered_10", Type: model.BadgeQuestionsAnswered, Name: "初心者", Description: "10問回答した", Icon: "🎯", Threshold: 10},
	{ID: "answered_50", Type: model.BadgeQuestionsAnswered, Name: "学習者", Description: "50問回答した", Icon: "📚", Threshold: 50},
	{ID: "answered_100", Type: model.BadgeQuestionsAnswered, Name: "熱心な学習者", Description: "100問回答した", Icon: "🔥", Threshold: 100},
	{ID: "answered_200", Type: model.BadgeQuestionsAnswered, Name: "エキスパート", Description: "200問回答した", Icon: "⭐", Threshold: 200},

	{ID: "mastered_5", Type: model.BadgeQuestionsMastered, Name: "マスター初級", Description: "5問達成済みにした", Icon: "🏅", Threshold: 5},
	{ID: "mastered_20", Type: model.BadgeQuestionsMastered, Name: "マスター中級", Description: "20問達成済みにした", Icon: "🥈", Threshold: 20},
	{ID: "mastered_50", Type: model.BadgeQuestionsMastered, Name: "マスター上級", Description: "50問達成済みにした", Icon: "🥇", Threshold: 50},

	{ID: "daily_20", Type: model.BadgeDailyTarget, Name: "1日20問", Description: "1日で20問回答した", Icon: "💪", Threshold: 20},
	{ID: "daily_50", Type: model.BadgeDailyTarget, Name: "1日50問", Description: "1日で50問回答した", Icon: "🚀", Threshold: 50},

	{ID: "streak_3", Type: model.BadgeDailyStreak, Name: "3日連続", Description: "3日連続で学習した", Icon: "🔗", Threshold: 3},
	{ID: "streak_7", Type: model.BadgeDailyStreak, Name: "1週間連続", Description: "7日連続で学習した", Icon: "✨", Threshold: 7},
	{ID: "streak_30", Type: model.BadgeDailyStreak, Name: "1ヶ月連続", Description: "30日連続で学習した", Icon: "👑", Threshold: 30},

	{ID: "weekly_100", Type: model.BadgeWeeklyTarget, Name: "週100問", Description: "1週間で100問回答した", Icon: "🎖️", Threshold: 100},
}

func FindBadgeDefinition(id string) (model.BadgeDefinition, bool) {
	for _, def := range BadgeCatalog {
		if def.ID == id {
			return def, true
		}
	}
	return model.BadgeDefinition{}, false
}

// CalculateStreak counts consecutive days with a DailyStat entry, walking
// back from today. A missing entry for today means a streak of zero.
func CalculateStreak(history []model.DailyStat, today string) int {
	days := make(map[string]struct{}, len(history))
	for _, stat := range history {
		days[stat.Date] = struct{}{}
	}

	streak := 0
	for day := today; streak < len(days); day = util.ShiftDay(day, -1) {
		if _, ok := days[day]; !ok {
			break
		}
		streak++
	}
	return streak
}

// WeeklyAnswers sums answeredCount over the 7 days ending today.
func WeeklyAnswers(history []model.DailyStat, today string) int {
	weekStart := util.ShiftDay(today, -6)
	total := 0
	for _, stat := range history {
		if stat.Date >= weekStart && stat.Date <= today {
			total += stat.AnsweredCount
		}
	}
	return total
}

// ComputeBadgeStats gathers the values every badge type is measured by.
// todayAnswers is the number of answer events recorded today across all exams.
func ComputeBadgeStats(totalAnswered, totalMastered, todayAnswers int, history []model.DailyStat, today string) model.BadgeStats {
	return model.BadgeStats{
		TotalAnswered: totalAnswered,
		TotalMastered: totalMastered,
		TodayAnswers:  todayAnswers,
		CurrentStreak: CalculateStreak(history, today),
		WeeklyAnswers: WeeklyAnswers(history, today),
	}
}

func badgeValue(stats model.BadgeStats, t model.BadgeType) int {
	switch t {
	case model.BadgeQuestionsAnswered:
		return stats.TotalAnswered
	case model.BadgeQuestionsMastered:
		return stats.TotalMastered
	case model.BadgeDailyTarget:
		return stats.TodayAnswers
	case model.BadgeDailyStreak:
		return stats.CurrentStreak
	case model.BadgeWeeklyTarget:
		return stats.WeeklyAnswers
	}
	return 0
}

// QualifyingBadges lists, in catalog order, every badge whose threshold is met.
func QualifyingBadges(stats model.BadgeStats) []string {
	var ids []string
	for _, def := range BadgeCatalog {
		if badgeValue(stats, def.Type) >= def.Threshold {
			ids = append(ids, def.ID)
		}
	}
	return ids
}

type BadgeService struct {
	Store repository.BadgeStore
}

func NewBadgeService(store repository.BadgeStore) *BadgeService {
	return &BadgeService{Store: store}
}

// Evaluate persists every qualifying badge not yet earned and returns the
// newly unlocked ones. Earned badges are never revoked.
func (s *BadgeService) Evaluate(ctx context.Context, stats model.BadgeStats, today string) ([]model.BadgeDefinition, error) {
	earned, err := s.earnedDates(ctx)
	if err != nil {
		return nil, err
	}

	var unlocked []model.BadgeDefinition
	for _, id := range QualifyingBadges(stats) {
		if _, ok := earned[id]; ok {
			continue
		}
		added, err := s.Store.AddEarnedBadge(ctx, id, today)
		if err != nil {
			return unlocked, err
		}
		if !added {
			continue
		}

		def, _ := FindBadgeDefinition(id)
		unlocked = append(unlocked, def)
		monitoring.BadgesUnlocked.WithLabelValues(id).Inc()
		logger.Log.Info("Badge unlocked", zap.String("badgeId", id), zap.String("date", today))
	}
	return unlocked, nil
}

// AllBadges returns the whole catalog marked with the earned state.
func (s *BadgeService) AllBadges(ctx context.Context) ([]model.Badge, error) {
	earned, err := s.earnedDates(ctx)
	if err != nil {
		return nil, err
	}

	badges := make([]model.Badge, 0, len(BadgeCatalog))
	for _, def := range BadgeCatalog {
		date, ok := earned[def.ID]
		badges = append(badges, model.Badge{
			BadgeDefinition: def,
			Achieved:        ok,
			AchievedDate:    date,
		})
	}
	return badges, nil
}

func (s *BadgeService) earnedDates(ctx context.Context) (map[string]string, error) {
	list, err := s.Store.ListEarnedBadges(ctx)
	if err != nil {
		return nil, err
	}
	earned := make(map[string]string, len(list))
	for _, b := range list {
		earned[b.BadgeID] = b.AchievedDate
	}
	return earned, nil
}
