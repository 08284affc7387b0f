package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/templui/aura/internal/app"
	"github.com/templui/aura/internal/model"
)

func RemindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Create today's reminder now",
		Long: `Create one daily reminder about a random active goal, the same way the
server's scheduler does. The reminder is shown the next time you open the
chat or call 'aura reminders'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				out := cmd.OutOrStdout()
				if !a.ReminderService.CreateDailyReminder(cmd.Context()) {
					color.New(color.FgYellow).Fprintln(out, "⚠ No reminder created (no active goals, or the journal is unavailable)")
					return nil
				}
				color.New(color.FgGreen).Fprintln(out, "✓ Reminder created")
				return nil
			})
		},
	}
}

func RemindersCmd() *cobra.Command {
	var peek bool

	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "Show unread reminders",
		Long: `Show unread reminders, oldest first, and mark them read.
Use --peek to leave them unread.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				ctx := cmd.Context()
				out := cmd.OutOrStdout()

				reminders := a.ReminderService.UnreadReminders(ctx)
				if len(reminders) == 0 {
					fmt.Fprintln(out, "No unread reminders.")
					return nil
				}

				for _, reminder := range reminders {
					fmt.Fprintf(out, "%s %s\n", faintColor.Sprint(model.FormatTime(reminder.CreatedAt)), reminder.Message)
					if !peek {
						a.ReminderService.MarkReminderRead(ctx, reminder.ID)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&peek, "peek", false, "do not mark reminders read")
	return cmd
}
