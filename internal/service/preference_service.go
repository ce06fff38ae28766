package service

import (
	"context"
	"encoding/json"
	"exam_quiz_backend/internal/model"
	"exam_quiz_backend/internal/repository"
)

type PreferenceService struct {
	Store repository.PreferenceStore
}

func NewPreferenceService(store repository.PreferenceStore) *PreferenceService {
	return &PreferenceService{Store: store}
}

// LastExamType returns "" when nothing was stored or the stored exam no
// longer exists.
func (s *PreferenceService) LastExamType(ctx context.Context) (string, error) {
	raw, err := s.Store.GetPreference(ctx, model.PreferenceLastExamType)
	if err != nil || raw == nil {
		return "", err
	}

	var examType string
	if err := json.Unmarshal(raw, &examType); err != nil {
		return "", nil
	}
	if _, err := FindExam(examType); err != nil {
		return "", nil
	}
	return examType, nil
}

func (s *PreferenceService) SetLastExamType(ctx context.Context, examType string) error {
	if _, err := FindExam(examType); err != nil {
		return err
	}
	raw, err := json.Marshal(examType)
	if err != nil {
		return err
	}
	return s.Store.SetPreference(ctx, model.PreferenceLastExamType, raw)
}
