package main

import (
	"exam_quiz_backend/internal/app"
	"exam_quiz_backend/internal/config"
	"exam_quiz_backend/internal/repository"
	"exam_quiz_backend/internal/service"
	"exam_quiz_backend/pkg/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "quizctl",
	Short:         "Operate the exam quiz progress store",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "configs", "directory holding config.yaml")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(bankCmd)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	dir, _ := cmd.Flags().GetString("config")
	return config.LoadConfig(dir)
}

// openProgress connects the configured store without the degrading wrapper,
// so operator commands see real errors.
func openProgress(cmd *cobra.Command) (*service.ProgressService, repository.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger.SetLevel(cfg)

	store, _, _, err := app.OpenStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return service.NewProgressService(store, cfg.Progress), store, nil
}
