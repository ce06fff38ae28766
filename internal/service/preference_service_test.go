package service

import (
	"context"
	"exam_quiz_backend/internal/model"
	"exam_quiz_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastExamType(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			svc := NewPreferenceService(store)

			got, err := svc.LastExamType(ctx)
			require.NoError(t, err)
			assert.Empty(t, got)

			require.NoError(t, svc.SetLastExamType(ctx, "web-creator"))
			got, err = svc.LastExamType(ctx)
			require.NoError(t, err)
			assert.Equal(t, "web-creator", got)

			assert.ErrorIs(t, svc.SetLastExamType(ctx, "land-surveyor"), util.ErrInvalidExamType)

			// a retired exam stored earlier reads as unset
			require.NoError(t, store.SetPreference(ctx, model.PreferenceLastExamType, []byte(`"land-surveyor"`)))
			got, err = svc.LastExamType(ctx)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}
