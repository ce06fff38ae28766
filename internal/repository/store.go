package repository

import (
	"context"
	"exam_quiz_backend/internal/model"
)

// Absence is never an error in any of these interfaces: Find* methods return
// a nil record and a nil error when nothing is stored.

type ProgressStore interface {
	FindProgress(ctx context.Context, questionID int) (*model.QuestionProgress, error)
	ListProgress(ctx context.Context) (map[int]model.QuestionProgress, error)
	// UpsertProgress creates the record on the first attempt and increments
	// the matching counter on later ones. It returns the stored record.
	UpsertProgress(ctx context.Context, questionID int, isCorrect bool) (*model.QuestionProgress, error)
}

type DailyStatStore interface {
	// ListDailyStats returns the history ascending by date.
	ListDailyStats(ctx context.Context) ([]model.DailyStat, error)
	// SaveDailyStat inserts the entry or overwrites the one with the same date.
	SaveDailyStat(ctx context.Context, stat model.DailyStat) error
	DeleteDailyStats(ctx context.Context, dates []string) error
}

type ActivityStore interface {
	FindActivity(ctx context.Context, date, examType string) (*model.DailyActivity, error)
	// SaveActivity inserts the entry or overwrites the one with the same
	// (date, examType).
	SaveActivity(ctx context.Context, activity *model.DailyActivity) error
	// ListActivities returns the ledger descending by date.
	ListActivities(ctx context.Context) ([]model.DailyActivity, error)
	// DeleteActivitiesBefore drops every entry dated strictly before cutoff.
	DeleteActivitiesBefore(ctx context.Context, cutoff string) error
}

type BadgeStore interface {
	ListEarnedBadges(ctx context.Context) ([]model.EarnedBadge, error)
	// AddEarnedBadge records badgeID once. It reports whether this call
	// inserted it.
	AddEarnedBadge(ctx context.Context, badgeID, achievedDate string) (bool, error)
}

type PreferenceStore interface {
	GetPreference(ctx context.Context, key string) ([]byte, error)
	SetPreference(ctx context.Context, key string, value []byte) error
}

// Store is everything the engine needs from a backing substrate.
type Store interface {
	ProgressStore
	DailyStatStore
	ActivityStore
	BadgeStore
	PreferenceStore

	// ClearAll deletes all progress, daily stats and daily activity. Earned
	// badges and preferences survive.
	ClearAll(ctx context.Context) error
	Ping(ctx context.Context) error
	Backend() string
}
