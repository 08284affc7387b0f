package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/aura/internal/config"
	"github.com/templui/aura/internal/db"
	"github.com/templui/aura/internal/gateway"
	"github.com/templui/aura/internal/markdown"
	"github.com/templui/aura/internal/middleware"
	"github.com/templui/aura/internal/scheduler"
	"github.com/templui/aura/internal/service"
	"github.com/templui/aura/internal/storage"
)

// ReminderJob is the scheduler job that creates the daily reminder.
const ReminderJob = "daily-reminder"

// sessionTTL bounds how long a chat session counts as greeted.
const sessionTTL = 12 * time.Hour

var errNoReminder = errors.New("no reminder created")

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	Store            *gateway.Gateway
	GoalService      *service.GoalService
	MoodService      *service.MoodService
	ReminderService  *service.ReminderService
	AnalyticsService *service.AnalyticsService
	ExportService    *service.ExportService
	EmailService     *service.EmailService
	Responder        *service.Responder
	Markdown         *markdown.Parser
	Sessions         *middleware.Sessions
	ChatLimiter      *middleware.RateLimiter
	Scheduler        *scheduler.Scheduler
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Storage
	exportStorage, err := storage.New(ctx, cfg)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	store := gateway.New(database, gateway.WithRetries(cfg.DBMaxRetries))

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.ReminderEmailTo,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	goalService := service.NewGoalService(store, service.RandomChooser)
	moodService := service.NewMoodService(store)
	reminderService := service.NewReminderService(store, service.RandomChooser, emailService)
	analyticsService := service.NewAnalyticsService(store)
	exportService := service.NewExportService(store, analyticsService, exportStorage)
	responder := service.NewResponder(goalService, moodService, reminderService, service.RandomChooser)

	a := &App{
		Cfg:              cfg,
		DB:               database,
		Store:            store,
		GoalService:      goalService,
		MoodService:      moodService,
		ReminderService:  reminderService,
		AnalyticsService: analyticsService,
		ExportService:    exportService,
		EmailService:     emailService,
		Responder:        responder,
		Markdown:         markdown.NewParser(),
		Sessions:         middleware.NewSessions(sessionTTL, cfg.SessionCookieSecure),
		ChatLimiter:      middleware.NewRateLimiter(cfg.ChatRateLimit, cfg.ChatRateWindow),
		Scheduler:        scheduler.New(),
	}

	if cfg.ReminderEnabled {
		a.Scheduler.Register(scheduler.Job{
			Name:     ReminderJob,
			Interval: cfg.ReminderInterval,
			Fn:       a.createReminder,
		})
	}

	return a, nil
}

func (a *App) createReminder(ctx context.Context) error {
	if !a.ReminderService.CreateDailyReminder(ctx) {
		return errNoReminder
	}
	slog.Info("daily reminder created")
	return nil
}

// Close stops background work and closes the database.
func (a *App) Close() error {
	a.Scheduler.Stop()
	a.ChatLimiter.Close()
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
