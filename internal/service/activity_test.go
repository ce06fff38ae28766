package service

import (
	"context"
	"exam_quiz_backend/internal/model"
	"exam_quiz_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordActivityAccumulates(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			outcomes := []bool{true, false, true, true, false}

			var got model.DailyActivity
			var err error
			for _, correct := range outcomes {
				got, err = RecordActivity(ctx, store, "2026-10-18", "takken", correct, 30)
				require.NoError(t, err)
			}
			_, err = RecordActivity(ctx, store, "2026-10-18", "web-creator", true, 30)
			require.NoError(t, err)

			assert.Equal(t, 5, got.QuestionsAnswered)
			assert.Equal(t, 3, got.CorrectAnswers)
			assert.Equal(t, 2, got.IncorrectAnswers)
			assert.Equal(t, got.QuestionsAnswered, got.CorrectAnswers+got.IncorrectAnswers)

			stored, err := store.FindActivity(ctx, "2026-10-18", "takken")
			require.NoError(t, err)
			assert.Equal(t, 5, stored.QuestionsAnswered)

			other, err := store.FindActivity(ctx, "2026-10-18", "web-creator")
			require.NoError(t, err)
			assert.Equal(t, 1, other.QuestionsAnswered)
		})
	}
}

func TestRecordActivityRetention(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			day := "2026-09-01"
			for i := 0; i < 40; i++ {
				_, err := RecordActivity(ctx, store, day, "takken", true, 30)
				require.NoError(t, err)
				day = util.ShiftDay(day, 1)
			}
			today := util.ShiftDay(day, -1)

			history, err := store.ListActivities(ctx)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(history), 30)
			assert.Equal(t, today, history[0].Date)
			for _, a := range history {
				assert.GreaterOrEqual(t, a.Date, util.ShiftDay(today, -29))
			}
		})
	}
}

func TestTodayActivityDefaultsToZero(t *testing.T) {
	store := newSQLStore(t)

	got, err := TodayActivity(context.Background(), store, "2026-10-18", "bookkeeping-elementary")
	require.NoError(t, err)
	assert.Equal(t, model.DailyActivity{Date: "2026-10-18", ExamType: "bookkeeping-elementary"}, got)
}
