package main

import (
	"exam_quiz_backend/internal/model"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show daily history and today's activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		progress, _, err := openProgress(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		history, err := progress.StatsHistory(ctx)
		if err != nil {
			return err
		}
		activity, err := progress.ActivityHistory(ctx, "")
		if err != nil {
			return err
		}
		badgeStats, err := progress.BadgeStats(ctx)
		if err != nil {
			return err
		}

		printStats(cmd.OutOrStdout(), progress.Today(), history, activity, badgeStats)
		return nil
	},
}

func printStats(out io.Writer, today string, history []model.DailyStat, activity []model.DailyActivity, stats model.BadgeStats) {
	fmt.Fprintf(out, "Today: %s  answered %d  mastered %d  streak %d  week %d\n\n",
		today, stats.TotalAnswered, stats.TotalMastered, stats.CurrentStreak, stats.WeeklyAnswers)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tANSWERED\tMASTERED")
	for _, h := range history {
		fmt.Fprintf(w, "%s\t%d\t%d\n", h.Date, h.AnsweredCount, h.MasteredCount)
	}
	w.Flush()

	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tEXAM\tANSWERED\tCORRECT\tINCORRECT")
	for _, a := range activity {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", a.Date, a.ExamType, a.QuestionsAnswered, a.CorrectAnswers, a.IncorrectAnswers)
	}
	w.Flush()
}
