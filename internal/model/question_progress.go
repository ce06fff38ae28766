package model

// QuestionProgress holds the attempt counters of one question. It is created
// on the first attempt and only removed by a full reset.
// swagger:model QuestionProgress
type QuestionProgress struct {
	QuestionID         int  `gorm:"primaryKey;autoIncrement:false" json:"questionId"`
	CorrectCount       int  `gorm:"not null;default:0" json:"correctCount"`
	IncorrectCount     int  `gorm:"not null;default:0" json:"incorrectCount"`
	LastAttemptCorrect bool `gorm:"not null" json:"lastAttemptCorrect"`
	AuditFields
}

func (QuestionProgress) TableName() string {
	return "question_progress"
}

// Attempts is the number of answer events ever recorded for the question.
func (p QuestionProgress) Attempts() int {
	return p.CorrectCount + p.IncorrectCount
}

// NewQuestionProgress builds the record for a first attempt.
func NewQuestionProgress(questionID int, isCorrect bool) QuestionProgress {
	p := QuestionProgress{QuestionID: questionID}
	p.Record(isCorrect)
	return p
}

// Record applies one attempt to the counters.
func (p *QuestionProgress) Record(isCorrect bool) {
	if isCorrect {
		p.CorrectCount++
	} else {
		p.IncorrectCount++
	}
	p.LastAttemptCorrect = isCorrect
}
