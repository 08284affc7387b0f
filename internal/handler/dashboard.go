package handler

import (
	"net/http"

	"github.com/templui/aura/internal/service"
)

type DashboardHandler struct {
	analyticsService *service.AnalyticsService
}

func NewDashboardHandler(analyticsService *service.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{
		analyticsService: analyticsService,
	}
}

func (h *DashboardHandler) Data(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"mood_data":     h.analyticsService.MoodAnalytics(ctx),
		"progress_data": h.analyticsService.GoalProgressAnalytics(ctx),
	})
}
