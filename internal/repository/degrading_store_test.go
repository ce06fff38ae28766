package repository

import (
	"context"
	"exam_quiz_backend/internal/model"
	"exam_quiz_backend/pkg/monitoring"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDegradingStoreSwallowsSubstrateFailures(t *testing.T) {
	kv, mr := newTestKVStore(t)
	core, logs := observer.New(zap.WarnLevel)
	store := NewDegradingStore(kv, zap.New(core))
	ctx := context.Background()

	mr.Close()

	before := testutil.ToFloat64(monitoring.StoreDegraded.WithLabelValues("upsert_progress"))

	p, err := store.UpsertProgress(ctx, 1, true)
	assert.NoError(t, err)
	assert.Nil(t, p)

	all, err := store.ListProgress(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	found, err := store.FindProgress(ctx, 1)
	assert.NoError(t, err)
	assert.Nil(t, found)

	stats, err := store.ListDailyStats(ctx)
	assert.NoError(t, err)
	assert.Empty(t, stats)

	assert.NoError(t, store.SaveDailyStat(ctx, model.DailyStat{Date: "2026-10-18"}))
	assert.NoError(t, store.SaveActivity(ctx, &model.DailyActivity{Date: "2026-10-18", ExamType: "takken"}))
	assert.NoError(t, store.DeleteActivitiesBefore(ctx, "2026-09-19"))
	assert.NoError(t, store.ClearAll(ctx))

	added, err := store.AddEarnedBadge(ctx, "answered_10", "2026-10-18")
	assert.NoError(t, err)
	assert.False(t, added)

	assert.Error(t, store.Ping(ctx), "health checks must still see the outage")

	assert.Equal(t, before+1, testutil.ToFloat64(monitoring.StoreDegraded.WithLabelValues("upsert_progress")))
	assert.GreaterOrEqual(t, logs.Len(), 9)
	entry := logs.All()[0]
	assert.Equal(t, "progress store unavailable, degrading", entry.Message)
	assert.Equal(t, "upsert_progress", entry.ContextMap()["op"])
}

func TestDegradingStorePassesThroughWhenHealthy(t *testing.T) {
	store := NewDegradingStore(newTestSQLStore(t), nil)
	ctx := context.Background()

	p, err := store.UpsertProgress(ctx, 5, false)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 1, p.IncorrectCount)
	assert.Equal(t, "sql", store.Backend())
	assert.NoError(t, store.Ping(ctx))
}
