package util

import "errors"

var (
	ErrInvalidExamType      = errors.New("unknown exam type")
	ErrQuestionNotFound     = errors.New("question not found in exam bank")
	ErrConfirmationRequired = errors.New("clearing progress requires explicit confirmation")
	ErrInvalidChoice        = errors.New("choice index out of range")
	ErrInvalidQuestionID    = errors.New("questionId must be a positive integer")
)
