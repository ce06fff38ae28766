package service

import (
	"context"
	"encoding/json"
	"exam_quiz_backend/internal/model"
	"exam_quiz_backend/pkg/logger"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// QuestionBank is the read-only set of questions for every exam, loaded once.
type QuestionBank struct {
	questions map[string][]model.Question
	byID      map[string]map[int]model.Question
}

func BankFileName(prefix, examType string) string {
	return prefix + examType + ".json"
}

// LoadQuestionBank reads <prefix><examType>.json for each exam. A missing
// file leaves that exam empty; a malformed file is an error. Questions that
// cannot be graded are skipped.
func LoadQuestionBank(ctx context.Context, storage BankStorage, prefix string, exams []model.ExamInfo) (*QuestionBank, error) {
	bank := &QuestionBank{
		questions: make(map[string][]model.Question, len(exams)),
		byID:      make(map[string]map[int]model.Question, len(exams)),
	}
	owner := make(map[int]string)

	for _, exam := range exams {
		name := BankFileName(prefix, exam.Type)
		questions, err := readBank(ctx, storage, name)
		if isNotExist(err) {
			logger.Log.Warn("Question bank not found, exam starts empty",
				zap.String("examType", exam.Type),
				zap.String("location", storage.Location(name)),
			)
			questions = nil
		} else if err != nil {
			return nil, fmt.Errorf("load question bank %s: %w", exam.Type, err)
		}

		index := make(map[int]model.Question, len(questions))
		valid := make([]model.Question, 0, len(questions))
		for _, q := range questions {
			if reason := invalidQuestion(q, index); reason != "" {
				logger.Log.Warn("Skipping question",
					zap.String("examType", exam.Type),
					zap.Int("questionId", q.ID),
					zap.String("reason", reason),
				)
				continue
			}
			if other, ok := owner[q.ID]; ok {
				// progress is keyed by question id alone
				logger.Log.Warn("Question id shared between exams",
					zap.Int("questionId", q.ID),
					zap.String("examType", exam.Type),
					zap.String("otherExamType", other),
				)
			} else {
				owner[q.ID] = exam.Type
			}
			index[q.ID] = q
			valid = append(valid, q)
		}

		bank.questions[exam.Type] = valid
		bank.byID[exam.Type] = index
		logger.Log.Info("Question bank loaded",
			zap.String("examType", exam.Type),
			zap.Int("questions", len(valid)),
		)
	}
	return bank, nil
}

// NewQuestionBank builds a bank from in-memory data.
func NewQuestionBank(questions map[string][]model.Question) *QuestionBank {
	bank := &QuestionBank{
		questions: make(map[string][]model.Question, len(questions)),
		byID:      make(map[string]map[int]model.Question, len(questions)),
	}
	for examType, qs := range questions {
		index := make(map[int]model.Question, len(qs))
		for _, q := range qs {
			index[q.ID] = q
		}
		bank.questions[examType] = qs
		bank.byID[examType] = index
	}
	return bank
}

func readBank(ctx context.Context, storage BankStorage, name string) ([]model.Question, error) {
	rc, err := storage.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var questions []model.Question
	if err := json.NewDecoder(rc).Decode(&questions); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return questions, nil
}

func invalidQuestion(q model.Question, seen map[int]model.Question) string {
	switch {
	case q.ID <= 0:
		return "non-positive id"
	case len(q.Choices) < 2:
		return "fewer than two choices"
	case q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Choices):
		return "correctAnswer out of range"
	}
	if _, dup := seen[q.ID]; dup {
		return "duplicate id"
	}
	return ""
}

func (b *QuestionBank) Questions(examType string) []model.Question {
	return b.questions[examType]
}

func (b *QuestionBank) Find(examType string, questionID int) (model.Question, bool) {
	q, ok := b.byID[examType][questionID]
	return q, ok
}

// Categories returns the distinct categories of an exam, sorted.
func (b *QuestionBank) Categories(examType string) []string {
	seen := make(map[string]struct{})
	for _, q := range b.questions[examType] {
		seen[q.Category] = struct{}{}
	}
	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}
