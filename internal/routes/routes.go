package routes

import (
	"net/http"

	"github.com/templui/aura/internal/app"
	"github.com/templui/aura/internal/handler"
	"github.com/templui/aura/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	chat := handler.NewChatHandler(app.Responder, app.Sessions, app.Markdown)
	reminders := handler.NewReminderHandler(app.ReminderService)
	dashboard := handler.NewDashboardHandler(app.AnalyticsService)
	goal := handler.NewGoalHandler(app.GoalService, app.ExportService)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", handler.Health)

	// Chat (rate limited)
	mux.Handle("POST /chat", middleware.RateLimit(app.ChatLimiter)(http.HandlerFunc(chat.Chat)))
	mux.HandleFunc("POST /reset", chat.Reset)
	mux.HandleFunc("GET /reset", chat.Reset)

	// Reminders
	mux.HandleFunc("GET /check-reminders", reminders.CheckReminders)

	// Dashboard
	mux.HandleFunc("GET /data", dashboard.Data)

	// Goals
	mux.HandleFunc("GET /goals", goal.List)
	mux.HandleFunc("POST /goals/{id}/progress", goal.Progress)
	mux.HandleFunc("GET /export", goal.Export)
	mux.HandleFunc("POST /export/upload", goal.UploadExport)

	return middleware.Chain(mux,
		middleware.Recover,
		app.Sessions.Middleware,
		middleware.RequestLogging,
		middleware.Config(app.Cfg),
	)
}
