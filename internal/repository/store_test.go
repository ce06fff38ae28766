package repository

import (
	"context"
	"exam_quiz_backend/internal/config"
	"exam_quiz_backend/internal/model"
	"exam_quiz_backend/pkg/database"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestSQLStore(t *testing.T) *SQLStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every pooled connection would otherwise get its own empty database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return NewSQLStore(db)
}

func newTestKVStore(t *testing.T) (*KVStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewKVStore(rdb, "test"), mr
}

func backends(t *testing.T) map[string]Store {
	kv, _ := newTestKVStore(t)
	return map[string]Store{
		config.ProgressBackendSQL: newTestSQLStore(t),
		config.ProgressBackendKV:  kv,
	}
}

func TestStoreProgress(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			got, err := store.FindProgress(ctx, 7)
			require.NoError(t, err)
			assert.Nil(t, got, "absent record is not an error")

			p, err := store.UpsertProgress(ctx, 7, false)
			require.NoError(t, err)
			assert.Equal(t, 0, p.CorrectCount)
			assert.Equal(t, 1, p.IncorrectCount)
			assert.False(t, p.LastAttemptCorrect)

			for i := 0; i < 4; i++ {
				p, err = store.UpsertProgress(ctx, 7, true)
				require.NoError(t, err)
			}
			assert.Equal(t, 4, p.CorrectCount)
			assert.Equal(t, 1, p.IncorrectCount)
			assert.True(t, p.LastAttemptCorrect)

			_, err = store.UpsertProgress(ctx, 11, true)
			require.NoError(t, err)

			got, err = store.FindProgress(ctx, 7)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, 5, got.Attempts())

			all, err := store.ListProgress(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 2)
			assert.Equal(t, 1, all[11].CorrectCount)
			assert.Equal(t, 11, all[11].QuestionID)
		})
	}
}

func TestStoreDailyStats(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			for _, d := range []string{"2026-10-17", "2026-10-15", "2026-10-16"} {
				require.NoError(t, store.SaveDailyStat(ctx, model.DailyStat{Date: d, AnsweredCount: 1}))
			}
			require.NoError(t, store.SaveDailyStat(ctx, model.DailyStat{Date: "2026-10-17", AnsweredCount: 9, MasteredCount: 2}))

			stats, err := store.ListDailyStats(ctx)
			require.NoError(t, err)
			require.Len(t, stats, 3)
			assert.Equal(t, "2026-10-15", stats[0].Date)
			assert.Equal(t, "2026-10-17", stats[2].Date)
			assert.Equal(t, 9, stats[2].AnsweredCount)
			assert.Equal(t, 2, stats[2].MasteredCount)

			require.NoError(t, store.DeleteDailyStats(ctx, []string{"2026-10-15", "2026-10-16"}))
			require.NoError(t, store.DeleteDailyStats(ctx, nil))

			stats, err = store.ListDailyStats(ctx)
			require.NoError(t, err)
			require.Len(t, stats, 1)
			assert.Equal(t, "2026-10-17", stats[0].Date)
		})
	}
}

func TestStoreActivities(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			got, err := store.FindActivity(ctx, "2026-10-18", "takken")
			require.NoError(t, err)
			assert.Nil(t, got)

			a := &model.DailyActivity{Date: "2026-10-18", ExamType: "takken"}
			a.Record(true)
			require.NoError(t, store.SaveActivity(ctx, a))

			found, err := store.FindActivity(ctx, "2026-10-18", "takken")
			require.NoError(t, err)
			require.NotNil(t, found)
			found.Record(false)
			require.NoError(t, store.SaveActivity(ctx, found))

			found, err = store.FindActivity(ctx, "2026-10-18", "takken")
			require.NoError(t, err)
			assert.Equal(t, 2, found.QuestionsAnswered)
			assert.Equal(t, 1, found.CorrectAnswers)
			assert.Equal(t, 1, found.IncorrectAnswers)

			for _, d := range []string{"2026-09-01", "2026-10-01"} {
				old := &model.DailyActivity{Date: d, ExamType: "web-creator"}
				old.Record(true)
				require.NoError(t, store.SaveActivity(ctx, old))
			}

			list, err := store.ListActivities(ctx)
			require.NoError(t, err)
			require.Len(t, list, 3)
			assert.Equal(t, "2026-10-18", list[0].Date)
			assert.Equal(t, "2026-09-01", list[2].Date)

			require.NoError(t, store.DeleteActivitiesBefore(ctx, "2026-10-01"))
			list, err = store.ListActivities(ctx)
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, "2026-10-01", list[1].Date)
		})
	}
}

func TestStoreBadgesAndPreferences(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			added, err := store.AddEarnedBadge(ctx, "answered_10", "2026-10-18")
			require.NoError(t, err)
			assert.True(t, added)

			added, err = store.AddEarnedBadge(ctx, "answered_10", "2026-10-19")
			require.NoError(t, err)
			assert.False(t, added, "second unlock must not overwrite")

			badges, err := store.ListEarnedBadges(ctx)
			require.NoError(t, err)
			require.Len(t, badges, 1)
			assert.Equal(t, "2026-10-18", badges[0].AchievedDate)

			v, err := store.GetPreference(ctx, model.PreferenceLastExamType)
			require.NoError(t, err)
			assert.Nil(t, v)

			require.NoError(t, store.SetPreference(ctx, model.PreferenceLastExamType, []byte(`"takken"`)))
			require.NoError(t, store.SetPreference(ctx, model.PreferenceLastExamType, []byte(`"web-creator"`)))
			v, err = store.GetPreference(ctx, model.PreferenceLastExamType)
			require.NoError(t, err)
			assert.JSONEq(t, `"web-creator"`, string(v))
		})
	}
}

func TestStoreClearAllKeepsBadges(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := store.UpsertProgress(ctx, 1, true)
			require.NoError(t, err)
			require.NoError(t, store.SaveDailyStat(ctx, model.DailyStat{Date: "2026-10-18", AnsweredCount: 1}))
			a := &model.DailyActivity{Date: "2026-10-18", ExamType: "takken"}
			a.Record(true)
			require.NoError(t, store.SaveActivity(ctx, a))
			_, err = store.AddEarnedBadge(ctx, "streak_3", "2026-10-18")
			require.NoError(t, err)
			require.NoError(t, store.SetPreference(ctx, model.PreferenceLastExamType, []byte(`"takken"`)))

			require.NoError(t, store.ClearAll(ctx))

			all, err := store.ListProgress(ctx)
			require.NoError(t, err)
			assert.Empty(t, all)
			stats, err := store.ListDailyStats(ctx)
			require.NoError(t, err)
			assert.Empty(t, stats)
			activities, err := store.ListActivities(ctx)
			require.NoError(t, err)
			assert.Empty(t, activities)

			badges, err := store.ListEarnedBadges(ctx)
			require.NoError(t, err)
			assert.Len(t, badges, 1)
			pref, err := store.GetPreference(ctx, model.PreferenceLastExamType)
			require.NoError(t, err)
			assert.NotNil(t, pref)

			assert.NoError(t, store.Ping(ctx))
			assert.Equal(t, name, store.Backend())
		})
	}
}

func TestKVStoreUsesPrefixedHashes(t *testing.T) {
	store, mr := newTestKVStore(t)
	ctx := context.Background()

	_, err := store.UpsertProgress(ctx, 3, true)
	require.NoError(t, err)

	assert.True(t, mr.Exists("test:progress"))
	raw := mr.HGet("test:progress", "3")
	assert.JSONEq(t, `{"questionId":3,"correctCount":1,"incorrectCount":0,"lastAttemptCorrect":true}`, raw)
}
