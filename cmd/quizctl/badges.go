package main

import (
	"exam_quiz_backend/internal/model"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List the badge catalog and what has been earned",
	RunE: func(cmd *cobra.Command, args []string) error {
		progress, _, err := openProgress(cmd)
		if err != nil {
			return err
		}

		badges, err := progress.AllBadges(cmd.Context())
		if err != nil {
			return err
		}
		printBadges(cmd.OutOrStdout(), badges)
		return nil
	},
}

func printBadges(out io.Writer, badges []model.Badge) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTHRESHOLD\tEARNED")
	for _, b := range badges {
		earned := "-"
		if b.Achieved {
			earned = b.AchievedDate
		}
		fmt.Fprintf(w, "%s\t%s %s\t%d\t%s\n", b.ID, b.Icon, b.Name, b.Threshold, earned)
	}
	w.Flush()
}
