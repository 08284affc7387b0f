package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/templui/aura/internal/app"
	"github.com/templui/aura/internal/model"
	"github.com/templui/aura/internal/service"
)

func ChatCmd() *cobra.Command {
	var skipCheckIn bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start a daily check-in and chat with AURA",
		Long: `Chat with AURA in the terminal.

The session opens with a daily check-in: your goals, how you are feeling,
and whether you worked on each goal today. Then share goals ("I want to
learn Python"), tell AURA how you feel, or type:

  goals       list your goals
  encourage   get a motivational message
  quit        leave the chat`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				c := newConsole(cmd)
				c.println("🤖 Welcome to AURA - Your Adaptive Understanding & Reflective Assistant!")
				c.println("💡 Tell me your goals (e.g., 'I want to learn Python') or share how you're feeling.")
				c.println("💬 Type 'quit' to exit, 'goals' to see your goals, or 'encourage' for motivation.")
				c.println()

				if !skipCheckIn {
					err := dailyCheckIn(cmd, a, c)
					if err != nil {
						return err
					}
				}

				return chatLoop(cmd, a, c)
			})
		},
	}

	cmd.Flags().BoolVar(&skipCheckIn, "skip-checkin", false, "go straight to the chat")
	return cmd
}

func chatLoop(cmd *cobra.Command, a *app.App, c *console) error {
	ctx := cmd.Context()
	for {
		line, err := c.ask("\n💭 You: ")
		if errors.Is(err, io.EOF) {
			c.say("Goodbye! Take care and remember your goals! 👋")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "quit") {
			c.say("Goodbye! Remember, I'll be here to help you achieve your goals! 👋")
			return nil
		}

		c.say(a.Responder.ProcessMessage(ctx, line))
	}
}

// dailyCheckIn shows the goals, asks for today's mood, then asks about
// progress on each goal. End of input skips the remaining questions.
func dailyCheckIn(cmd *cobra.Command, a *app.App, c *console) error {
	ctx := cmd.Context()

	c.println("🤖 Welcome to your daily check-in with AURA!")
	c.println()

	goals := a.GoalService.RenderGoals(ctx, "🎯 Welcome back! Here are your current goals:\n"+strings.Repeat("=", 45))
	hasGoals := goals != ""
	if hasGoals {
		c.println(strings.TrimRight(goals, "\n"))
		c.println("💭 These goals are here to guide and motivate you today!")
	} else {
		c.println("📋 You don't have any goals yet. Tell me something you want to achieve!")
	}

	c.println()
	c.println(rule)
	c.println("🌟 How are you feeling today?")
	c.println(faintColor.Sprint("💡 (Share your mood - I'm here to support you!)"))

	mood, err := c.ask("\n💭 You: ")
	switch {
	case errors.Is(err, io.EOF):
		c.say("No worries! We can check in anytime. 👋")
	case err != nil:
		return fmt.Errorf("failed to read input: %w", err)
	default:
		c.say(a.Responder.CheckInMood(ctx, mood))
	}

	if hasGoals {
		progressCheckIn(cmd, a, c)
	}

	c.println()
	c.println("✨ Let's make today great together! Feel free to share goals or chat with me.")
	c.println(rule)
	return nil
}

func progressCheckIn(cmd *cobra.Command, a *app.App, c *console) {
	c.println()
	c.println("📈 Let's check your progress on your goals!")
	c.println(rule)

	checkIn := a.GoalService.RunCheckIn(cmd.Context(),
		func(goal model.Goal) (string, error) {
			c.println()
			c.println("🎯 Goal: " + goal.Text)
			return c.ask("💭 Did you work on this goal today? (yes/no): ")
		},
		func(result service.CheckInResult) {
			c.say(result.Reply)
			if !result.Saved {
				c.println(faintColor.Sprint("(I couldn't save that answer right now.)"))
			}
		},
	)

	if checkIn.Interrupted() {
		c.say("That's alright! We can track progress another time. 👍")
		return
	}
	c.println()
	c.println("✨ Thanks for sharing your progress! Every step forward matters! 🚀")
	c.println(rule)
}

func CheckInCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkin",
		Short: "Run only the daily check-in",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				return dailyCheckIn(cmd, a, newConsole(cmd))
			})
		},
	}
}
