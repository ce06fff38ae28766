package model

// DailyActivity is the running per-day, per-exam answer ledger.
// swagger:model DailyActivity
type DailyActivity struct {
	ID                uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	Date              string `gorm:"size:10;not null;uniqueIndex:idx_activity_date_exam" json:"date"`
	ExamType          string `gorm:"size:64;not null;uniqueIndex:idx_activity_date_exam" json:"examType"`
	QuestionsAnswered int    `gorm:"not null;default:0" json:"questionsAnswered"`
	CorrectAnswers    int    `gorm:"not null;default:0" json:"correctAnswers"`
	IncorrectAnswers  int    `gorm:"not null;default:0" json:"incorrectAnswers"`
	AuditFields
}

func (DailyActivity) TableName() string {
	return "daily_activity"
}

// Record applies one answer event to the counters.
func (a *DailyActivity) Record(isCorrect bool) {
	a.QuestionsAnswered++
	if isCorrect {
		a.CorrectAnswers++
	} else {
		a.IncorrectAnswers++
	}
}
