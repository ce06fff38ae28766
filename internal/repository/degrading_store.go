package repository

import (
	"context"
	"exam_quiz_backend/internal/model"
	"exam_quiz_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// DegradingStore wraps a Store so a failing substrate reads as "no progress
// yet" and writes become no-ops. Every swallowed error is logged and counted.
// Ping is passed through untouched so health checks still see the failure.
type DegradingStore struct {
	inner Store
	log   *zap.Logger
}

func NewDegradingStore(inner Store, log *zap.Logger) *DegradingStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &DegradingStore{inner: inner, log: log}
}

func (s *DegradingStore) degrade(op string, err error) {
	monitoring.StoreDegraded.WithLabelValues(op).Inc()
	s.log.Warn("progress store unavailable, degrading",
		zap.String("op", op),
		zap.String("backend", s.inner.Backend()),
		zap.Error(err),
	)
}

func (s *DegradingStore) FindProgress(ctx context.Context, questionID int) (*model.QuestionProgress, error) {
	p, err := s.inner.FindProgress(ctx, questionID)
	if err != nil {
		s.degrade("find_progress", err)
		return nil, nil
	}
	return p, nil
}

func (s *DegradingStore) ListProgress(ctx context.Context) (map[int]model.QuestionProgress, error) {
	all, err := s.inner.ListProgress(ctx)
	if err != nil {
		s.degrade("list_progress", err)
		return map[int]model.QuestionProgress{}, nil
	}
	return all, nil
}

func (s *DegradingStore) UpsertProgress(ctx context.Context, questionID int, isCorrect bool) (*model.QuestionProgress, error) {
	p, err := s.inner.UpsertProgress(ctx, questionID, isCorrect)
	if err != nil {
		s.degrade("upsert_progress", err)
		return nil, nil
	}
	return p, nil
}

func (s *DegradingStore) ListDailyStats(ctx context.Context) ([]model.DailyStat, error) {
	stats, err := s.inner.ListDailyStats(ctx)
	if err != nil {
		s.degrade("list_daily_stats", err)
		return []model.DailyStat{}, nil
	}
	return stats, nil
}

func (s *DegradingStore) SaveDailyStat(ctx context.Context, stat model.DailyStat) error {
	if err := s.inner.SaveDailyStat(ctx, stat); err != nil {
		s.degrade("save_daily_stat", err)
	}
	return nil
}

func (s *DegradingStore) DeleteDailyStats(ctx context.Context, dates []string) error {
	if err := s.inner.DeleteDailyStats(ctx, dates); err != nil {
		s.degrade("delete_daily_stats", err)
	}
	return nil
}

func (s *DegradingStore) FindActivity(ctx context.Context, date, examType string) (*model.DailyActivity, error) {
	a, err := s.inner.FindActivity(ctx, date, examType)
	if err != nil {
		s.degrade("find_activity", err)
		return nil, nil
	}
	return a, nil
}

func (s *DegradingStore) SaveActivity(ctx context.Context, activity *model.DailyActivity) error {
	if err := s.inner.SaveActivity(ctx, activity); err != nil {
		s.degrade("save_activity", err)
	}
	return nil
}

func (s *DegradingStore) ListActivities(ctx context.Context) ([]model.DailyActivity, error) {
	activities, err := s.inner.ListActivities(ctx)
	if err != nil {
		s.degrade("list_activities", err)
		return []model.DailyActivity{}, nil
	}
	return activities, nil
}

func (s *DegradingStore) DeleteActivitiesBefore(ctx context.Context, cutoff string) error {
	if err := s.inner.DeleteActivitiesBefore(ctx, cutoff); err != nil {
		s.degrade("prune_activities", err)
	}
	return nil
}

func (s *DegradingStore) ListEarnedBadges(ctx context.Context) ([]model.EarnedBadge, error) {
	badges, err := s.inner.ListEarnedBadges(ctx)
	if err != nil {
		s.degrade("list_earned_badges", err)
		return []model.EarnedBadge{}, nil
	}
	return badges, nil
}

func (s *DegradingStore) AddEarnedBadge(ctx context.Context, badgeID, achievedDate string) (bool, error) {
	added, err := s.inner.AddEarnedBadge(ctx, badgeID, achievedDate)
	if err != nil {
		s.degrade("add_earned_badge", err)
		return false, nil
	}
	return added, nil
}

func (s *DegradingStore) GetPreference(ctx context.Context, key string) ([]byte, error) {
	v, err := s.inner.GetPreference(ctx, key)
	if err != nil {
		s.degrade("get_preference", err)
		return nil, nil
	}
	return v, nil
}

func (s *DegradingStore) SetPreference(ctx context.Context, key string, value []byte) error {
	if err := s.inner.SetPreference(ctx, key, value); err != nil {
		s.degrade("set_preference", err)
	}
	return nil
}

func (s *DegradingStore) ClearAll(ctx context.Context) error {
	if err := s.inner.ClearAll(ctx); err != nil {
		s.degrade("clear_all", err)
	}
	return nil
}

func (s *DegradingStore) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}

func (s *DegradingStore) Backend() string {
	return s.inner.Backend()
}
