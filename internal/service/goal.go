package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/templui/aura/internal/classify"
	"github.com/templui/aura/internal/gateway"
	"github.com/templui/aura/internal/model"
)

const goalSaveFailed = "❌ Sorry, I couldn't save that goal right now. Please try again in a moment."

type GoalService struct {
	store  *gateway.Gateway
	choose Chooser
}

func NewGoalService(store *gateway.Gateway, choose Chooser) *GoalService {
	if choose == nil {
		choose = RandomChooser
	}
	return &GoalService{store: store, choose: choose}
}

// AddGoal normalizes raw and stores it as a new active goal. Identical
// goals are stored again rather than merged.
func (s *GoalService) AddGoal(ctx context.Context, raw string) string {
	text := classify.ExtractGoalText(raw)
	if text == "" {
		return EmptyPrompt
	}

	_, ok := s.store.InsertGoal(ctx, text)
	if !ok {
		return goalSaveFailed
	}

	return fmt.Sprintf("✅ Great! I've added your goal: '%s' to your list. I'll help you remember it!", text)
}

// Goals returns active goals with IDs, newest first.
func (s *GoalService) Goals(ctx context.Context) []model.Goal {
	return s.store.ListActiveGoalsWithIDs(ctx)
}

// ActiveGoal returns the goal with goalID if it exists and is still active.
func (s *GoalService) ActiveGoal(ctx context.Context, goalID int64) (model.Goal, bool) {
	goal, ok := s.store.GoalByID(ctx, goalID)
	if !ok || goal.Status != model.GoalStatusActive {
		return model.Goal{}, false
	}
	return goal, true
}

func (s *GoalService) GoalsForDisplay(ctx context.Context) []model.GoalDisplay {
	goals := s.store.ListActiveGoals(ctx)
	display := make([]model.GoalDisplay, 0, len(goals))
	for _, goal := range goals {
		display = append(display, goal.Display())
	}
	return display
}

// RenderGoals formats the goal list under header, or returns empty when
// there are no goals.
func (s *GoalService) RenderGoals(ctx context.Context, header string) string {
	goals := s.GoalsForDisplay(ctx)
	if len(goals) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	for i, goal := range goals {
		fmt.Fprintf(&b, "%d. %s\n", i+1, goal.Text)
		fmt.Fprintf(&b, "   📅 Added on %s\n\n", goal.Date)
	}
	return b.String()
}

func (s *GoalService) RecordProgress(ctx context.Context, goalID int64, status model.ProgressStatus) bool {
	return s.store.InsertProgressCheck(ctx, goalID, status)
}

func (s *GoalService) ProgressHistory(ctx context.Context, goalID int64) []model.ProgressCheck {
	return s.store.ProgressHistory(ctx, goalID)
}

// ProgressReply is the encouragement shown after a check-in answer.
func (s *GoalService) ProgressReply(goalText string, status model.ProgressStatus) string {
	switch status {
	case model.ProgressYes:
		return pick(s.choose, []string{
			fmt.Sprintf("🎉 Awesome! Great job working on '%s' today!", goalText),
			fmt.Sprintf("💪 That's fantastic progress on '%s'! Keep it up!", goalText),
			fmt.Sprintf("🌟 Well done! Every step counts towards '%s'!", goalText),
			fmt.Sprintf("✨ Excellent work on '%s' today! You're doing amazing!", goalText),
		})
	case model.ProgressNo:
		return pick(s.choose, []string{
			fmt.Sprintf("💙 That's okay! Tomorrow is a fresh start for '%s'.", goalText),
			fmt.Sprintf("🤗 No worries! Small steps towards '%s' still count.", goalText),
			fmt.Sprintf("🌱 It's all good! Progress on '%s' can happen anytime.", goalText),
			fmt.Sprintf("💫 Don't worry! Each day is a new opportunity for '%s'.", goalText),
		})
	default:
		return "I'll take that as 'maybe' - that's still progress! 😊"
	}
}
