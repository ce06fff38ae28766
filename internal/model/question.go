package model

type Difficulty string

const (
	DifficultyExam  Difficulty = "exam"
	DifficultyBasic Difficulty = "basic"
)

// Question is one entry of an exam bank. Banks are static data files.
type Question struct {
	ID            int        `json:"id"`
	Category      string     `json:"category"`
	Question      string     `json:"question"`
	Choices       []string   `json:"choices"`
	CorrectAnswer int        `json:"correctAnswer"`
	Explanation   string     `json:"explanation"`
	Difficulty    Difficulty `json:"difficulty,omitempty"`
}

type ExamInfo struct {
	Type        string `json:"examType"`
	Title       string `json:"title"`
	ShortName   string `json:"shortName"`
	Description string `json:"description"`
}

// Choice is a shuffled answer option; OriginalIndex points back into
// Question.Choices.
type Choice struct {
	Text          string `json:"text"`
	OriginalIndex int    `json:"originalIndex"`
}

// QuizQuestion is what a client renders. The correct answer stays server-side.
type QuizQuestion struct {
	ID         int        `json:"id"`
	Category   string     `json:"category"`
	Question   string     `json:"question"`
	Choices    []Choice   `json:"choices"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
}

type CategoryStats struct {
	Category          string `json:"category"`
	TotalQuestions    int    `json:"totalQuestions"`
	AnsweredQuestions int    `json:"answeredQuestions"`
	MasteredQuestions int    `json:"masteredQuestions"`
	CorrectAnswers    int    `json:"correctAnswers"`
	IncorrectAnswers  int    `json:"incorrectAnswers"`
}
