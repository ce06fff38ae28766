package model

// DailyStat is the per-day snapshot of answered and mastered totals across all
// exams. Both counts are recomputed from the whole progress set on each write.
// swagger:model DailyStat
type DailyStat struct {
	Date          string `gorm:"primaryKey;size:10" json:"date"`
	AnsweredCount int    `gorm:"not null;default:0" json:"answeredCount"`
	MasteredCount int    `gorm:"not null;default:0" json:"masteredCount"`
	AuditFields
}

func (DailyStat) TableName() string {
	return "daily_stats"
}
