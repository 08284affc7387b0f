package handler

import (
	"net/http"

	"github.com/templui/aura/internal/model"
	"github.com/templui/aura/internal/service"
)

type ReminderHandler struct {
	reminderService *service.ReminderService
}

func NewReminderHandler(reminderService *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
	}
}

type reminderView struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
	Time    string `json:"time"`
	Goal    string `json:"goal"`
}

// CheckReminders returns unread reminders and marks them read, so each
// reminder is shown once.
func (h *ReminderHandler) CheckReminders(w http.ResponseWriter, r *http.Request) {
	reminders := h.reminderService.TakeUnread(r.Context())

	views := make([]reminderView, 0, len(reminders))
	for _, reminder := range reminders {
		views = append(views, reminderView{
			ID:      reminder.ID,
			Message: reminder.Message,
			Time:    model.FormatTime(reminder.CreatedAt),
			Goal:    reminder.GoalText,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"has_reminders": len(views) > 0,
		"reminders":     views,
	})
}
