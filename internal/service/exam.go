package service

import (
	"exam_quiz_backend/internal/model"
	"exam_quiz_backend/internal/util"
)

var ExamCatalog = []model.ExamInfo{
	{
		Type:        "takken",
		Title:       "宅建試験対策クイズ",
		ShortName:   "宅建試験",
		Description: "宅地建物取引士試験の学習用クイズです。",
	},
	{
		Type:        "bookkeeping-elementary",
		Title:       "簿記初級対策クイズ",
		ShortName:   "簿記初級",
		Description: "簿記初級試験の学習用クイズです。",
	},
	{
		Type:        "web-creator",
		Title:       "Webクリエイター能力認定試験対策クイズ",
		ShortName:   "Webクリエイター",
		Description: "Webクリエイター能力認定試験の学習用クイズです。",
	},
}

func FindExam(examType string) (model.ExamInfo, error) {
	for _, exam := range ExamCatalog {
		if exam.Type == examType {
			return exam, nil
		}
	}
	return model.ExamInfo{}, util.ErrInvalidExamType
}
