package service

import (
	"bytes"
	"context"
	"exam_quiz_backend/internal/model"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadQuestionBank(t *testing.T) {
	dir := t.TempDir()
	storage := &LocalBankStorage{Dir: dir}
	ctx := context.Background()

	bank := `[
		{"id": 1, "category": "仕訳", "question": "q", "choices": ["a", "b"], "correctAnswer": 1, "explanation": "x"},
		{"id": 1, "category": "仕訳", "question": "dup", "choices": ["a", "b"], "correctAnswer": 0},
		{"id": 2, "category": "仕訳", "question": "bad", "choices": ["a", "b"], "correctAnswer": 5},
		{"id": 3, "category": "決算", "question": "q3", "choices": ["a", "b", "c"], "correctAnswer": 2, "difficulty": "basic"}
	]`
	require.NoError(t, storage.Put(ctx, "bookkeeping-elementary.json", bytes.NewBufferString(bank), int64(len(bank))))

	exams := []model.ExamInfo{{Type: "bookkeeping-elementary"}, {Type: "takken"}}
	loaded, err := LoadQuestionBank(ctx, storage, "", exams)
	require.NoError(t, err)

	questions := loaded.Questions("bookkeeping-elementary")
	require.Len(t, questions, 2)
	assert.Equal(t, "q", questions[0].Question)
	assert.Equal(t, model.DifficultyBasic, questions[1].Difficulty)
	assert.Empty(t, loaded.Questions("takken"), "a missing bank file is an empty exam")

	q, ok := loaded.Find("bookkeeping-elementary", 3)
	require.True(t, ok)
	assert.Equal(t, 2, q.CorrectAnswer)
	_, ok = loaded.Find("takken", 3)
	assert.False(t, ok)

	assert.Equal(t, []string{"仕訳", "決算"}, loaded.Categories("bookkeeping-elementary"))
}

func TestLoadQuestionBankRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "banks-takken.json"), []byte("{not json"), 0644))

	_, err := LoadQuestionBank(context.Background(), &LocalBankStorage{Dir: dir}, "banks-", []model.ExamInfo{{Type: "takken"}})
	assert.Error(t, err)
}

func TestLocalBankStorageMissingFile(t *testing.T) {
	storage := &LocalBankStorage{Dir: t.TempDir()}
	_, err := storage.Open(context.Background(), "nope.json")
	assert.True(t, isNotExist(err))
	assert.Equal(t, filepath.Join(storage.Dir, "x.json"), storage.Location("x.json"))
}
