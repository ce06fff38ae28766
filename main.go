// @title Exam Quiz API
// @version 1.0
// @description Progress tracking, mastery and badges for certification exam quizzes.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

package main

import (
	"context"
	"exam_quiz_backend/internal/app"
	"exam_quiz_backend/internal/config"
	"exam_quiz_backend/pkg/configwatcher"
	"exam_quiz_backend/pkg/logger"
	"flag"
	"log"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"
)

func main() {
	configDir := flag.String("config", "configs", "directory holding config.yaml")
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	migrate := flag.Bool("migrate", false, "run database migrations at startup even in release mode")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		logger.Log.Info("Database migration finished, exiting")
		application.Close(context.Background())
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		path := filepath.Join(*configDir, "config.yaml")
		if err := configwatcher.Watch(ctx, path, time.Second, application.ApplyConfig); err != nil {
			logger.Log.Warn("Config hot reload disabled", zap.Error(err))
		}
	}()

	application.Run()
}
