package service

import (
	"context"
	"exam_quiz_backend/internal/config"
	"exam_quiz_backend/internal/model"
	"exam_quiz_backend/internal/repository"
	"exam_quiz_backend/internal/util"
	"exam_quiz_backend/pkg/logger"
	"exam_quiz_backend/pkg/monitoring"
	"exam_quiz_backend/pkg/tracing"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type ProgressService struct {
	Store         repository.Store
	Badges        *BadgeService
	Location      *time.Location
	RetentionDays int
	Now           func() time.Time
}

func NewProgressService(store repository.Store, cfg config.ProgressConfig) *ProgressService {
	return &ProgressService{
		Store:         store,
		Badges:        NewBadgeService(store),
		Location:      cfg.Location(),
		RetentionDays: cfg.RetentionDays,
		Now:           time.Now,
	}
}

// Today is the calendar day every write is attributed to.
func (s *ProgressService) Today() string {
	return util.DayKey(s.Now(), s.Location)
}

// AnswerEvent is one graded answer.
type AnswerEvent struct {
	QuestionID int    `json:"questionId" binding:"required"`
	IsCorrect  bool   `json:"isCorrect"`
	ExamType   string `json:"examType" binding:"required"`
}

type AnswerResult struct {
	Progress   *model.QuestionProgress `json:"progress"`
	ShouldShow bool                    `json:"shouldShow"`
	DailyStat  model.DailyStat         `json:"dailyStat"`
	Activity   model.DailyActivity     `json:"activity"`
	NewBadges  []model.BadgeDefinition `json:"newBadges"`
}

func (s *ProgressService) GetProgress(ctx context.Context, questionID int) (*model.QuestionProgress, error) {
	if questionID <= 0 {
		return nil, util.ErrInvalidQuestionID
	}
	return s.Store.FindProgress(ctx, questionID)
}

func (s *ProgressService) GetAllProgress(ctx context.Context) (map[int]model.QuestionProgress, error) {
	return s.Store.ListProgress(ctx)
}

// RecordAnswer applies one answer event: the question counters first, then
// the daily snapshot, the activity ledger and finally badge evaluation.
func (s *ProgressService) RecordAnswer(ctx context.Context, ev AnswerEvent) (*AnswerResult, error) {
	if ev.QuestionID <= 0 {
		return nil, util.ErrInvalidQuestionID
	}
	ev.ExamType = strings.TrimSpace(ev.ExamType)
	if ev.ExamType == "" {
		return nil, util.ErrInvalidExamType
	}

	ctx, span := tracing.Tracer.Start(ctx, "ProgressService.RecordAnswer")
	defer span.End()
	span.SetAttributes(
		attribute.Int("quiz.question_id", ev.QuestionID),
		attribute.String("quiz.exam_type", ev.ExamType),
		attribute.Bool("quiz.correct", ev.IsCorrect),
	)

	today := s.Today()

	progress, err := s.Store.UpsertProgress(ctx, ev.QuestionID, ev.IsCorrect)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("record progress: %w", err)
	}

	all, err := s.Store.ListProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	stat, err := RecomputeDailyStats(ctx, s.Store, today, all, s.RetentionDays)
	if err != nil {
		return nil, fmt.Errorf("recompute daily stats: %w", err)
	}

	activity, err := RecordActivity(ctx, s.Store, today, ev.ExamType, ev.IsCorrect, s.RetentionDays)
	if err != nil {
		return nil, fmt.Errorf("record activity: %w", err)
	}
	monitoring.AnswersRecorded.WithLabelValues(ev.ExamType, monitoring.ResultLabel(ev.IsCorrect)).Inc()

	stats, err := s.badgeStats(ctx, today, all)
	if err != nil {
		return nil, err
	}
	unlocked, err := s.Badges.Evaluate(ctx, stats, today)
	if err != nil {
		return nil, fmt.Errorf("evaluate badges: %w", err)
	}

	logger.Log.Debug("Answer recorded",
		zap.Int("questionId", ev.QuestionID),
		zap.String("examType", ev.ExamType),
		zap.Bool("isCorrect", ev.IsCorrect),
		zap.Int("newBadges", len(unlocked)),
	)

	return &AnswerResult{
		Progress:   progress,
		ShouldShow: ShouldShowQuestion(progress),
		DailyStat:  stat,
		Activity:   activity,
		NewBadges:  unlocked,
	}, nil
}

// ClearAll wipes progress, stats and activity. Earned badges are kept.
func (s *ProgressService) ClearAll(ctx context.Context) error {
	if err := s.Store.ClearAll(ctx); err != nil {
		return err
	}
	logger.Log.Info("All progress cleared", zap.String("backend", s.Store.Backend()))
	return nil
}

// StatsHistory returns the daily snapshots ascending by date.
func (s *ProgressService) StatsHistory(ctx context.Context) ([]model.DailyStat, error) {
	return s.Store.ListDailyStats(ctx)
}

// ActivityHistory returns the ledger descending by date, optionally limited
// to one exam.
func (s *ProgressService) ActivityHistory(ctx context.Context, examType string) ([]model.DailyActivity, error) {
	activities, err := s.Store.ListActivities(ctx)
	if err != nil || examType == "" {
		return activities, err
	}

	filtered := make([]model.DailyActivity, 0, len(activities))
	for _, a := range activities {
		if a.ExamType == examType {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

func (s *ProgressService) TodayActivity(ctx context.Context, examType string) (model.DailyActivity, error) {
	return TodayActivity(ctx, s.Store, s.Today(), examType)
}

func (s *ProgressService) BadgeStats(ctx context.Context) (model.BadgeStats, error) {
	all, err := s.Store.ListProgress(ctx)
	if err != nil {
		return model.BadgeStats{}, err
	}
	return s.badgeStats(ctx, s.Today(), all)
}

func (s *ProgressService) AllBadges(ctx context.Context) ([]model.Badge, error) {
	return s.Badges.AllBadges(ctx)
}

func (s *ProgressService) badgeStats(ctx context.Context, today string, all map[int]model.QuestionProgress) (model.BadgeStats, error) {
	history, err := s.Store.ListDailyStats(ctx)
	if err != nil {
		return model.BadgeStats{}, fmt.Errorf("list daily stats: %w", err)
	}
	activities, err := s.Store.ListActivities(ctx)
	if err != nil {
		return model.BadgeStats{}, fmt.Errorf("list activities: %w", err)
	}

	answered, mastered := ProgressTotals(all)
	return ComputeBadgeStats(answered, mastered, answeredOn(activities, today), history, today), nil
}
