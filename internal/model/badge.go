package model

type BadgeType string

const (
	BadgeQuestionsAnswered BadgeType = "questions_answered"
	BadgeQuestionsMastered BadgeType = "questions_mastered"
	BadgeDailyTarget       BadgeType = "daily_target"
	BadgeDailyStreak       BadgeType = "daily_streak"
	BadgeWeeklyTarget      BadgeType = "weekly_target"
)

// BadgeDefinition is a static catalog entry.
type BadgeDefinition struct {
	ID          string    `json:"id"`
	Type        BadgeType `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Threshold   int       `json:"threshold"`
}

// Badge is a catalog entry joined with the earned set.
// swagger:model Badge
type Badge struct {
	BadgeDefinition
	Achieved     bool   `json:"achieved"`
	AchievedDate string `json:"achievedDate,omitempty"`
}

// EarnedBadge records an unlocked badge. Rows are append-only.
type EarnedBadge struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	BadgeID      string `gorm:"size:64;not null;uniqueIndex" json:"badgeId"`
	AchievedDate string `gorm:"size:10;not null" json:"achievedDate"`
	AuditFields
}

func (EarnedBadge) TableName() string {
	return "badge_progress"
}

// BadgeStats are the live values the badge thresholds are compared against.
type BadgeStats struct {
	TotalAnswered int `json:"totalAnswered"`
	TotalMastered int `json:"totalMastered"`
	TodayAnswers  int `json:"todayAnswers"`
	CurrentStreak int `json:"currentStreak"`
	WeeklyAnswers int `json:"weeklyAnswers"`
}
