package service

import (
	"context"
	"exam_quiz_backend/internal/model"
	"exam_quiz_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBank() *QuestionBank {
	return NewQuestionBank(map[string][]model.Question{
		"takken": {
			{ID: 1, Category: "権利関係", Question: "q1", Choices: []string{"a", "b", "c", "d"}, CorrectAnswer: 2, Explanation: "e1", Difficulty: model.DifficultyExam},
			{ID: 2, Category: "権利関係", Question: "q2", Choices: []string{"a", "b"}, CorrectAnswer: 0, Explanation: "e2", Difficulty: model.DifficultyBasic},
			{ID: 3, Category: "宅建業法", Question: "q3", Choices: []string{"a", "b", "c"}, CorrectAnswer: 1, Explanation: "e3", Difficulty: model.DifficultyExam},
		},
	})
}

// reverse is a deterministic stand-in for rand.Shuffle.
func reverse(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

func newTestQuizService(t *testing.T) (*QuizService, *ProgressService) {
	t.Helper()
	progress := newTestProgressService(newSQLStore(t), newTestClock("2026-10-18"))
	quiz := NewQuizService(sampleBank(), progress, 20*time.Second)
	quiz.Shuffle = reverse
	return quiz, progress
}

func TestBuildQuizShufflesAndKeepsOriginalIndex(t *testing.T) {
	svc, _ := newTestQuizService(t)

	quiz, err := svc.BuildQuiz(context.Background(), "takken", QuizFilter{})
	require.NoError(t, err)
	assert.False(t, quiz.Exhausted)
	assert.Equal(t, 20, quiz.TimeLimitSeconds)
	require.Len(t, quiz.Questions, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{quiz.Questions[0].ID, quiz.Questions[1].ID, quiz.Questions[2].ID})

	q1 := quiz.Questions[2]
	require.Len(t, q1.Choices, 4)
	assert.Equal(t, model.Choice{Text: "d", OriginalIndex: 3}, q1.Choices[0])
	assert.Equal(t, model.Choice{Text: "a", OriginalIndex: 0}, q1.Choices[3])
}

func TestBuildQuizFilters(t *testing.T) {
	svc, _ := newTestQuizService(t)
	ctx := context.Background()

	quiz, err := svc.BuildQuiz(ctx, "takken", QuizFilter{Category: "宅建業法", Difficulty: util.DifficultyAll})
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, 3, quiz.Questions[0].ID)

	quiz, err = svc.BuildQuiz(ctx, "takken", QuizFilter{Category: util.CategoryAll, Difficulty: string(model.DifficultyBasic)})
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, 2, quiz.Questions[0].ID)

	_, err = svc.BuildQuiz(ctx, "driving-license", QuizFilter{})
	assert.ErrorIs(t, err, util.ErrInvalidExamType)
}

func TestBuildQuizExhaustedWhenAllMastered(t *testing.T) {
	svc, progress := newTestQuizService(t)
	ctx := context.Background()

	for i := 0; i < MasteryThreshold; i++ {
		_, err := progress.RecordAnswer(ctx, AnswerEvent{QuestionID: 3, IsCorrect: true, ExamType: "takken"})
		require.NoError(t, err)
	}

	quiz, err := svc.BuildQuiz(ctx, "takken", QuizFilter{Category: "宅建業法"})
	require.NoError(t, err)
	assert.True(t, quiz.Exhausted)
	assert.Empty(t, quiz.Questions)
	assert.Equal(t, "/takken/stats", quiz.StatsPath)

	quiz, err = svc.BuildQuiz(ctx, "takken", QuizFilter{})
	require.NoError(t, err)
	assert.Len(t, quiz.Questions, 2)

	quiz, err = svc.BuildQuiz(ctx, "web-creator", QuizFilter{})
	require.NoError(t, err)
	assert.True(t, quiz.Exhausted, "an empty bank never yields an empty quiz")
}

func TestSubmitAnswer(t *testing.T) {
	svc, progress := newTestQuizService(t)
	ctx := context.Background()
	right, wrong := 2, 0

	graded, err := svc.SubmitAnswer(ctx, "takken", 1, AnswerSubmission{ChoiceIndex: &right})
	require.NoError(t, err)
	assert.True(t, graded.IsCorrect)
	assert.Equal(t, 2, graded.CorrectAnswer)
	assert.Equal(t, "e1", graded.Explanation)
	assert.Equal(t, 1, graded.Result.Progress.CorrectCount)

	graded, err = svc.SubmitAnswer(ctx, "takken", 1, AnswerSubmission{ChoiceIndex: &wrong})
	require.NoError(t, err)
	assert.False(t, graded.IsCorrect)

	graded, err = svc.SubmitAnswer(ctx, "takken", 1, AnswerSubmission{TimedOut: true, ChoiceIndex: &right})
	require.NoError(t, err)
	assert.False(t, graded.IsCorrect, "a timeout is always incorrect")
	assert.True(t, graded.TimedOut)

	p, err := progress.GetProgress(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, p.CorrectCount)
	assert.Equal(t, 2, p.IncorrectCount)

	today, err := progress.TodayActivity(ctx, "takken")
	require.NoError(t, err)
	assert.Equal(t, 3, today.QuestionsAnswered)
}

func TestSubmitAnswerRejectsBadInput(t *testing.T) {
	svc, _ := newTestQuizService(t)
	ctx := context.Background()
	outOfRange := 9

	_, err := svc.SubmitAnswer(ctx, "takken", 42, AnswerSubmission{TimedOut: true})
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)

	_, err = svc.SubmitAnswer(ctx, "takken", 1, AnswerSubmission{})
	assert.ErrorIs(t, err, util.ErrInvalidChoice)

	_, err = svc.SubmitAnswer(ctx, "takken", 1, AnswerSubmission{ChoiceIndex: &outOfRange})
	assert.ErrorIs(t, err, util.ErrInvalidChoice)

	_, err = svc.SubmitAnswer(ctx, "nope", 1, AnswerSubmission{TimedOut: true})
	assert.ErrorIs(t, err, util.ErrInvalidExamType)
}

func TestExamStats(t *testing.T) {
	svc, progress := newTestQuizService(t)
	ctx := context.Background()

	events := []AnswerEvent{
		{QuestionID: 1, IsCorrect: true},
		{QuestionID: 1, IsCorrect: false},
		{QuestionID: 3, IsCorrect: true},
		{QuestionID: 3, IsCorrect: true},
		{QuestionID: 3, IsCorrect: true},
		{QuestionID: 3, IsCorrect: true},
	}
	for _, ev := range events {
		ev.ExamType = "takken"
		_, err := progress.RecordAnswer(ctx, ev)
		require.NoError(t, err)
	}

	stats, err := svc.ExamStats(ctx, "takken")
	require.NoError(t, err)
	assert.Equal(t, "takken", stats.Exam.Type)
	assert.Equal(t, 6, stats.Today.QuestionsAnswered)
	assert.Equal(t, 2, stats.Remaining)
	require.Len(t, stats.Categories, 2)

	byName := map[string]model.CategoryStats{}
	for _, c := range stats.Categories {
		byName[c.Category] = c
	}
	assert.Equal(t, model.CategoryStats{
		Category: "宅建業法", TotalQuestions: 1, AnsweredQuestions: 1, MasteredQuestions: 1, CorrectAnswers: 4,
	}, byName["宅建業法"])
	assert.Equal(t, model.CategoryStats{
		Category: "権利関係", TotalQuestions: 2, AnsweredQuestions: 1, CorrectAnswers: 1, IncorrectAnswers: 1,
	}, byName["権利関係"])

	categories, err := svc.Categories("takken")
	require.NoError(t, err)
	assert.Equal(t, []string{"宅建業法", "権利関係"}, categories)
}
