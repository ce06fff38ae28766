package main

import (
	"bytes"
	"exam_quiz_backend/internal/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"yes\n", true},
		{"  YES  \n", true},
		{"y\n", false},
		{"", false},
		{"no\n", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got, err := confirm(strings.NewReader(tt.input), &out)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Contains(t, out.String(), "Type \"yes\"")
	}
}

func TestPrintBadges(t *testing.T) {
	var out bytes.Buffer
	printBadges(&out, []model.Badge{
		{BadgeDefinition: model.BadgeDefinition{ID: "answered_10", Name: "初心者", Threshold: 10}, Achieved: true, AchievedDate: "2026-10-18"},
		{BadgeDefinition: model.BadgeDefinition{ID: "answered_50", Name: "学習者", Threshold: 50}},
	})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "2026-10-18")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[2]), "-"))
}

func TestPrintStats(t *testing.T) {
	var out bytes.Buffer
	printStats(&out, "2026-10-18",
		[]model.DailyStat{{Date: "2026-10-18", AnsweredCount: 3, MasteredCount: 1}},
		[]model.DailyActivity{{Date: "2026-10-18", ExamType: "takken", QuestionsAnswered: 3, CorrectAnswers: 2, IncorrectAnswers: 1}},
		model.BadgeStats{TotalAnswered: 3, TotalMastered: 1, CurrentStreak: 1, WeeklyAnswers: 3},
	)

	s := out.String()
	assert.Contains(t, s, "Today: 2026-10-18")
	assert.Contains(t, s, "streak 1")
	assert.Contains(t, s, "takken")
}

func TestResetRequiresConfirmation(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetArgs([]string{"reset"})
	rootCmd.SetIn(strings.NewReader("nope\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "confirmation")
}
