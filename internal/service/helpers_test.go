package service

import (
	"exam_quiz_backend/internal/config"
	"exam_quiz_backend/internal/model"
	"exam_quiz_backend/internal/repository"
	"exam_quiz_backend/pkg/database"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSQLStore(t *testing.T) repository.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return repository.NewSQLStore(db)
}

func newKVStore(t *testing.T) (repository.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return repository.NewKVStore(rdb, "test"), mr
}

func stores(t *testing.T) map[string]repository.Store {
	kv, _ := newKVStore(t)
	return map[string]repository.Store{
		config.ProgressBackendSQL: newSQLStore(t),
		config.ProgressBackendKV:  kv,
	}
}

// testClock is a settable wall clock in UTC.
type testClock struct {
	now time.Time
}

func newTestClock(day string) *testClock {
	t, err := time.Parse("2006-01-02 15:04", day+" 10:00")
	if err != nil {
		panic(err)
	}
	return &testClock{now: t}
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) advanceDays(n int) { c.now = c.now.AddDate(0, 0, n) }

func newTestProgressService(store repository.Store, clock *testClock) *ProgressService {
	s := NewProgressService(store, config.ProgressConfig{Timezone: "UTC", RetentionDays: 30})
	s.Now = clock.Now
	return s
}

func dailyStats(days ...string) []model.DailyStat {
	stats := make([]model.DailyStat, len(days))
	for i, d := range days {
		stats[i] = model.DailyStat{Date: d, AnsweredCount: 1}
	}
	return stats
}
