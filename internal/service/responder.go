package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/templui/aura/internal/classify"
	"github.com/templui/aura/internal/model"
)

const (
	EmptyPrompt   = "I'm here to listen! What's on your mind? 🤔"
	noGoalsYet    = "📋 You don't have any goals yet. Tell me something you want to achieve!"
	welcomeLine   = "🤖 Welcome to AURA - Your Adaptive Understanding & Reflective Assistant!"
	generalAnswer = "Thanks for sharing! I'm here to support you throughout the day. 💙"
)

var encouragements = []string{
	"You're doing great! Keep going! 🌟",
	"Every small step counts towards your goals! 👣",
	"I believe in you and your abilities! 💪",
	"Progress, not perfection. You're on the right track! 🛤️",
	"Your dedication is inspiring! ✨",
	"Remember: you're stronger than your challenges! 🦾",
}

var fallbacks = []string{
	"I'm here to listen! Tell me more about what's on your mind. 🤔",
	"That's interesting! How can I help you with that? 💭",
	"I understand. Is there a goal you'd like to work towards? 🎯",
	"Thanks for sharing! How are you feeling about things? 😊",
	"I'm always here to help you stay motivated! What's next? 🚀",
}

// Responder turns a chat message into AURA's reply. Commands win over goal
// statements, which win over moods; anything else gets a fallback reply.
type Responder struct {
	goals     *GoalService
	moods     *MoodService
	reminders *ReminderService
	choose    Chooser
}

func NewResponder(goals *GoalService, moods *MoodService, reminders *ReminderService, choose Chooser) *Responder {
	if choose == nil {
		choose = RandomChooser
	}
	return &Responder{goals: goals, moods: moods, reminders: reminders, choose: choose}
}

func (r *Responder) ProcessMessage(ctx context.Context, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return EmptyPrompt
	}

	switch strings.ToLower(text) {
	case "goals":
		return r.GoalsDisplay(ctx)
	case "encourage":
		return r.Encouragement()
	}

	if classify.IsGoalStatement(text) {
		return r.goals.AddGoal(ctx, text)
	}

	if mood := r.moods.ClassifyMood(ctx, text); mood.Detected() {
		return mood.Response
	}

	return pick(r.choose, fallbacks)
}

func (r *Responder) Encouragement() string {
	return pick(r.choose, encouragements)
}

func (r *Responder) GoalsDisplay(ctx context.Context) string {
	goals := r.goals.RenderGoals(ctx, "🎯 Here are your current goals:")
	if goals == "" {
		return noGoalsYet
	}
	return strings.TrimRight(goals, "\n")
}

// InitialGreeting shows pending reminders, marking them read, then the
// current goals and a short help menu.
func (r *Responder) InitialGreeting(ctx context.Context) string {
	var b strings.Builder
	b.WriteString(welcomeLine)
	b.WriteString("\n\n")

	reminders := r.reminders.TakeUnread(ctx)
	if len(reminders) > 0 {
		b.WriteString("🔔 You have pending reminders:\n\n")
		for _, reminder := range reminders {
			fmt.Fprintf(&b, "• %s\n", reminder.Message)
			fmt.Fprintf(&b, "  📅 %s\n\n", model.FormatTime(reminder.CreatedAt))
		}
		b.WriteString("---\n\n")
	}

	goals := r.goals.RenderGoals(ctx, "🎯 Welcome back! Here are your current goals:")
	if goals != "" {
		b.WriteString(goals)
		b.WriteString("💭 These goals are here to guide and motivate you today!\n\n")
	} else {
		b.WriteString("📋 I don't see any goals yet. Tell me something you want to achieve!\n\n")
	}

	b.WriteString(HelpMenu)
	return b.String()
}

const HelpMenu = `💡 You can:
• Share your goals (e.g., 'I want to learn Python')
• Tell me how you're feeling
• Type 'goals' to see your goals
• Type 'encourage' for motivation

How are you feeling today? 🌟`

// FirstContact answers the first message of a session: the greeting, then
// the message echoed back with its reply.
func (r *Responder) FirstContact(ctx context.Context, text string) string {
	greeting := r.InitialGreeting(ctx)
	reply := r.ProcessMessage(ctx, text)
	return fmt.Sprintf("%s\n\n---\n\nYou said: \"%s\"\n\n%s", greeting, strings.TrimSpace(text), reply)
}

// CheckInMood handles the "how are you feeling" answer of a daily check-in.
// Unrecognized answers are still logged as a general mood.
func (r *Responder) CheckInMood(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return "That's okay! I'm here whenever you want to talk. 😊"
	}
	if mood := r.moods.ClassifyMood(ctx, text); mood.Detected() {
		return mood.Response
	}
	r.moods.LogGeneral(ctx, text)
	return generalAnswer
}
