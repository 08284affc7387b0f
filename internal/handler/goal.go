package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/templui/aura/internal/classify"
	"github.com/templui/aura/internal/model"
	"github.com/templui/aura/internal/service"
)

type GoalHandler struct {
	goalService   *service.GoalService
	exportService *service.ExportService
}

func NewGoalHandler(goalService *service.GoalService, exportService *service.ExportService) *GoalHandler {
	return &GoalHandler{
		goalService:   goalService,
		exportService: exportService,
	}
}

type goalView struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Date      string `json:"date"`
	DateAdded string `json:"date_added"`
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	goals := h.goalService.Goals(r.Context())

	views := make([]goalView, 0, len(goals))
	for _, goal := range goals {
		views = append(views, goalView{
			ID:        goal.ID,
			Text:      goal.Text,
			Date:      model.FormatDate(goal.DateAdded),
			DateAdded: goal.DateAdded,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"goals": views})
}

type progressRequest struct {
	Answer string `json:"answer"`
}

// Progress records a yes/no/maybe check-in answer for one goal. Anything
// that is not a yes or a no, blank included, counts as maybe.
func (h *GoalHandler) Progress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	goalID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid goal id"})
		return
	}

	var req progressRequest
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	goal, ok := h.goalService.ActiveGoal(ctx, goalID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "goal not found"})
		return
	}

	status := classify.ParseAnswer(req.Answer)
	if !h.goalService.RecordProgress(ctx, goal.ID, status) {
		slog.Error("failed to record progress", "goal_id", goal.ID)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "could not record progress right now"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":   string(status),
		"response": h.goalService.ProgressReply(goal.Text, status),
	})
}

// Export downloads a JSON snapshot of goals and analytics.
func (h *GoalHandler) Export(w http.ResponseWriter, r *http.Request) {
	snapshot := h.exportService.Snapshot(r.Context())

	w.Header().Set("Content-Disposition", "attachment; filename=aura-export.json")
	writeJSON(w, http.StatusOK, snapshot)
}

// UploadExport stores a snapshot in object storage and returns a download link.
func (h *GoalHandler) UploadExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key, err := h.exportService.Upload(ctx)
	if errors.Is(err, service.ErrExportStorageDisabled) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		slog.Error("failed to upload export", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to upload export"})
		return
	}

	url, err := h.exportService.DownloadURL(ctx, key)
	if err != nil {
		slog.Warn("failed to sign export url", "error", err, "key", key)
	}

	writeJSON(w, http.StatusOK, map[string]string{"key": key, "url": url})
}
