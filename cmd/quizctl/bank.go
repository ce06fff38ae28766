package main

import (
	"exam_quiz_backend/internal/service"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Manage question bank files",
}

var bankPushCmd = &cobra.Command{
	Use:   "push <dir>",
	Short: "Upload <examType>.json files from dir to the configured bank storage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		storage := service.NewBankStorage(&cfg.Storage)

		for _, exam := range service.ExamCatalog {
			src := filepath.Join(args[0], exam.Type+".json")
			f, err := os.Open(src)
			if os.IsNotExist(err) {
				fmt.Fprintf(cmd.OutOrStdout(), "skip %s: no %s\n", exam.Type, src)
				continue
			}
			if err != nil {
				return err
			}

			info, err := f.Stat()
			if err != nil {
				f.Close()
				return err
			}
			name := service.BankFileName(cfg.Quiz.BankPrefix, exam.Type)
			err = storage.Put(cmd.Context(), name, f, info.Size())
			f.Close()
			if err != nil {
				return fmt.Errorf("upload %s: %w", name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s -> %s\n", src, storage.Location(name))
		}
		return nil
	},
}

var bankCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load every bank from the configured storage and report question counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		bank, err := service.LoadQuestionBank(cmd.Context(), service.NewBankStorage(&cfg.Storage), cfg.Quiz.BankPrefix, service.ExamCatalog)
		if err != nil {
			return err
		}
		for _, exam := range service.ExamCatalog {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d questions\t%d categories\n",
				exam.Type, len(bank.Questions(exam.Type)), len(bank.Categories(exam.Type)))
		}
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankPushCmd)
	bankCmd.AddCommand(bankCheckCmd)
}
