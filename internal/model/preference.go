package model

import "gorm.io/datatypes"

const PreferenceLastExamType = "lastExamType"

type Preference struct {
	Key   string         `gorm:"primaryKey;size:64" json:"key"`
	Value datatypes.JSON `gorm:"not null" json:"value"`
	AuditFields
}

func (Preference) TableName() string {
	return "user_preferences"
}
