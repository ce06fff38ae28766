package service

import (
	"context"
	"exam_quiz_backend/internal/model"
	"exam_quiz_backend/internal/util"
	"math/rand/v2"
	"time"
)

type QuizService struct {
	Bank      *QuestionBank
	Progress  *ProgressService
	TimeLimit time.Duration
	// Shuffle is rand.Shuffle unless a test pins the order.
	Shuffle func(n int, swap func(i, j int))
}

func NewQuizService(bank *QuestionBank, progress *ProgressService, timeLimit time.Duration) *QuizService {
	return &QuizService{
		Bank:      bank,
		Progress:  progress,
		TimeLimit: timeLimit,
		Shuffle:   rand.Shuffle,
	}
}

type QuizFilter struct {
	Category   string `form:"category"`
	Difficulty string `form:"difficulty"`
}

func (f QuizFilter) matches(q model.Question) bool {
	if f.Category != "" && f.Category != util.CategoryAll && q.Category != f.Category {
		return false
	}
	if f.Difficulty != "" && f.Difficulty != util.DifficultyAll && string(q.Difficulty) != f.Difficulty {
		return false
	}
	return true
}

// Quiz is either a shuffled question list or, once every matching question
// is mastered, an exhausted marker pointing at the stats page.
type Quiz struct {
	ExamType         string               `json:"examType"`
	TimeLimitSeconds int                  `json:"timeLimitSeconds"`
	Questions        []model.QuizQuestion `json:"questions"`
	Exhausted        bool                 `json:"exhausted"`
	StatsPath        string               `json:"statsPath,omitempty"`
}

func StatsPath(examType string) string {
	return "/" + examType + "/stats"
}

func (s *QuizService) Exams() []model.ExamInfo {
	return ExamCatalog
}

func (s *QuizService) Categories(examType string) ([]string, error) {
	if _, err := FindExam(examType); err != nil {
		return nil, err
	}
	return s.Bank.Categories(examType), nil
}

// BuildQuiz selects every unmastered question matching the filter, in random
// order with shuffled choices.
func (s *QuizService) BuildQuiz(ctx context.Context, examType string, filter QuizFilter) (*Quiz, error) {
	if _, err := FindExam(examType); err != nil {
		return nil, err
	}

	all, err := s.Progress.GetAllProgress(ctx)
	if err != nil {
		return nil, err
	}

	quiz := &Quiz{
		ExamType:         examType,
		TimeLimitSeconds: int(s.TimeLimit / time.Second),
		Questions:        []model.QuizQuestion{},
	}
	for _, q := range s.Bank.Questions(examType) {
		if !filter.matches(q) {
			continue
		}
		var progress *model.QuestionProgress
		if p, ok := all[q.ID]; ok {
			progress = &p
		}
		if !ShouldShowQuestion(progress) {
			continue
		}
		quiz.Questions = append(quiz.Questions, s.present(q))
	}

	if len(quiz.Questions) == 0 {
		quiz.Exhausted = true
		quiz.StatsPath = StatsPath(examType)
		return quiz, nil
	}

	s.Shuffle(len(quiz.Questions), func(i, j int) {
		quiz.Questions[i], quiz.Questions[j] = quiz.Questions[j], quiz.Questions[i]
	})
	return quiz, nil
}

func (s *QuizService) present(q model.Question) model.QuizQuestion {
	choices := make([]model.Choice, len(q.Choices))
	for i, text := range q.Choices {
		choices[i] = model.Choice{Text: text, OriginalIndex: i}
	}
	s.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	return model.QuizQuestion{
		ID:         q.ID,
		Category:   q.Category,
		Question:   q.Question,
		Choices:    choices,
		Difficulty: q.Difficulty,
	}
}

// AnswerSubmission carries the original index of the chosen answer, or
// TimedOut when the time limit ran out first.
type AnswerSubmission struct {
	ChoiceIndex *int `json:"choiceIndex"`
	TimedOut    bool `json:"timedOut"`
}

type GradedAnswer struct {
	QuestionID    int           `json:"questionId"`
	IsCorrect     bool          `json:"isCorrect"`
	TimedOut      bool          `json:"timedOut"`
	CorrectAnswer int           `json:"correctAnswer"`
	Explanation   string        `json:"explanation"`
	Result        *AnswerResult `json:"result"`
}

// SubmitAnswer grades against the bank and records the outcome. A timeout
// counts as an incorrect answer.
func (s *QuizService) SubmitAnswer(ctx context.Context, examType string, questionID int, sub AnswerSubmission) (*GradedAnswer, error) {
	if _, err := FindExam(examType); err != nil {
		return nil, err
	}
	q, ok := s.Bank.Find(examType, questionID)
	if !ok {
		return nil, util.ErrQuestionNotFound
	}

	isCorrect := false
	if !sub.TimedOut {
		if sub.ChoiceIndex == nil || *sub.ChoiceIndex < 0 || *sub.ChoiceIndex >= len(q.Choices) {
			return nil, util.ErrInvalidChoice
		}
		isCorrect = *sub.ChoiceIndex == q.CorrectAnswer
	}

	result, err := s.Progress.RecordAnswer(ctx, AnswerEvent{
		QuestionID: q.ID,
		IsCorrect:  isCorrect,
		ExamType:   examType,
	})
	if err != nil {
		return nil, err
	}

	return &GradedAnswer{
		QuestionID:    q.ID,
		IsCorrect:     isCorrect,
		TimedOut:      sub.TimedOut,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Result:        result,
	}, nil
}

type ExamStats struct {
	Exam       model.ExamInfo        `json:"exam"`
	Today      model.DailyActivity   `json:"today"`
	Categories []model.CategoryStats `json:"categories"`
	Remaining  int                   `json:"remaining"`
}

// ExamStats joins the bank with stored progress, one row per category.
func (s *QuizService) ExamStats(ctx context.Context, examType string) (*ExamStats, error) {
	exam, err := FindExam(examType)
	if err != nil {
		return nil, err
	}

	all, err := s.Progress.GetAllProgress(ctx)
	if err != nil {
		return nil, err
	}
	today, err := s.Progress.TodayActivity(ctx, examType)
	if err != nil {
		return nil, err
	}

	rows := make(map[string]*model.CategoryStats)
	remaining := 0
	for _, q := range s.Bank.Questions(examType) {
		row, ok := rows[q.Category]
		if !ok {
			row = &model.CategoryStats{Category: q.Category}
			rows[q.Category] = row
		}
		row.TotalQuestions++

		p, attempted := all[q.ID]
		if !attempted {
			remaining++
			continue
		}
		row.AnsweredQuestions++
		row.CorrectAnswers += p.CorrectCount
		row.IncorrectAnswers += p.IncorrectCount
		if IsMastered(p) {
			row.MasteredQuestions++
		} else {
			remaining++
		}
	}

	categories := make([]model.CategoryStats, 0, len(rows))
	for _, name := range s.Bank.Categories(examType) {
		categories = append(categories, *rows[name])
	}

	return &ExamStats{
		Exam:       exam,
		Today:      today,
		Categories: categories,
		Remaining:  remaining,
	}, nil
}
