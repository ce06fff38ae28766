package app

import (
	"context"
	"exam_quiz_backend/internal/config"
	"exam_quiz_backend/internal/controller"
	"exam_quiz_backend/internal/middleware"
	"exam_quiz_backend/internal/repository"
	"exam_quiz_backend/internal/service"
	"exam_quiz_backend/pkg/database"
	"exam_quiz_backend/pkg/logger"
	"exam_quiz_backend/pkg/monitoring"
	"exam_quiz_backend/pkg/security"
	"exam_quiz_backend/pkg/tracing"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	Store  repository.Store

	services        *services
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type services struct {
	progress   *service.ProgressService
	quiz       *service.QuizService
	preference *service.PreferenceService
}

type controllers struct {
	health     *controller.HealthController
	progress   *controller.ProgressController
	stats      *controller.StatsController
	badge      *controller.BadgeController
	exam       *controller.ExamController
	preference *controller.PreferenceController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig hands a reloaded configuration to every registered callback.
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

// OpenStore connects the configured progress backend. The returned store is
// not yet wrapped for degradation.
func OpenStore(cfg *config.Config) (repository.Store, *gorm.DB, *redis.Client, error) {
	switch cfg.Progress.Backend {
	case config.ProgressBackendKV:
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			// the store degrades until redis comes back
			logger.Log.Warn("Redis unreachable at startup", zap.Error(err))
		}
		return repository.NewKVStore(rdb, cfg.Progress.KeyPrefix), nil, rdb, nil
	case config.ProgressBackendSQL:
		db, err := database.InitDB(&cfg.Database, cfg.ForceMigrate)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("initialize database: %w", err)
		}
		return repository.NewSQLStore(db), db, nil, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown progress backend %q", cfg.Progress.Backend)
	}
}

func (a *App) initServices(cfg *config.Config, bank *service.QuestionBank) *services {
	progress := service.NewProgressService(a.Store, cfg.Progress)
	return &services{
		progress:   progress,
		quiz:       service.NewQuizService(bank, progress, cfg.Quiz.TimeLimit()),
		preference: service.NewPreferenceService(a.Store),
	}
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		health:     controller.NewHealthController(a.Store),
		progress:   controller.NewProgressController(s.progress),
		stats:      controller.NewStatsController(s.progress),
		badge:      controller.NewBadgeController(s.progress),
		exam:       controller.NewExamController(s.quiz),
		preference: controller.NewPreferenceController(s.preference),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	if cfg.RateLimit.MaxRequests > 0 && cfg.RateLimit.WindowMinutes > 0 {
		router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))
	}

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// New assembles the HTTP application around an already opened store and a
// loaded question bank. The store is wrapped so substrate failures degrade
// to empty results.
func New(cfg *config.Config, store repository.Store, bank *service.QuestionBank) *App {
	gin.SetMode(cfg.Server.Mode)
	monitoring.Init()

	app := &App{
		Config: cfg,
		Store:  repository.NewDegradingStore(store, logger.Log),
	}

	app.services = app.initServices(cfg, bank)
	controllers := app.initControllers(app.services)

	router := gin.New()
	app.Router = router
	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	app.RegisterConfigCallback(logger.SetLevel)
	return app
}

// NewApp wires the process: logging, the progress store, the question bank
// and tracing.
func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	store, db, rdb, err := OpenStore(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to open progress store", zap.Error(err))
	}
	logger.Log.Info("Progress store ready", zap.String("backend", store.Backend()))

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db, Redis: rdb, Store: store}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	bank, err := service.LoadQuestionBank(ctx, service.NewBankStorage(&cfg.Storage), cfg.Quiz.BankPrefix, service.ExamCatalog)
	if err != nil {
		logger.Log.Fatal("Failed to load question banks", zap.Error(err))
	}

	app := New(cfg, store, bank)
	app.DB = db
	app.Redis = rdb

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing, continuing without it", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close(ctx)
	logger.Log.Info("Server exiting")
}

// Close releases the tracer and the store connections.
func (a *App) Close(ctx context.Context) {
	if err := tracing.Shutdown(ctx, a.tracer); err != nil {
		logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis", zap.Error(err))
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
