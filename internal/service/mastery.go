package service

import "exam_quiz_backend/internal/model"

// MasteryThreshold is the number of correct answers after which a question is
// mastered. The question policy and the badge totals both read it.
const MasteryThreshold = 4

func IsMastered(p model.QuestionProgress) bool {
	return p.CorrectCount >= MasteryThreshold
}

// ShouldShowQuestion reports whether a question is still eligible for
// presentation. A question never attempted is always eligible.
func ShouldShowQuestion(p *model.QuestionProgress) bool {
	if p == nil {
		return true
	}
	return !IsMastered(*p)
}

// ProgressTotals counts attempted and mastered questions.
func ProgressTotals(all map[int]model.QuestionProgress) (answered, mastered int) {
	for _, p := range all {
		answered++
		if IsMastered(p) {
			mastered++
		}
	}
	return answered, mastered
}
