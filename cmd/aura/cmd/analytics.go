package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/templui/aura/internal/app"
	"github.com/templui/aura/internal/model"
)

func AnalyticsCmd() *cobra.Command {
	var (
		asJSON bool
		recent int
	)

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show mood and goal progress statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				ctx := cmd.Context()
				moods := a.AnalyticsService.MoodAnalytics(ctx)
				progress := a.AnalyticsService.GoalProgressAnalytics(ctx)
				var entries []model.MoodEntry
				if recent > 0 {
					entries = a.MoodService.Recent(ctx, recent)
				}

				out := cmd.OutOrStdout()
				if asJSON {
					enc := json.NewEncoder(out)
					enc.SetIndent("", "  ")
					return enc.Encode(map[string]any{
						"mood_data":     moods,
						"progress_data": progress,
						"recent_moods":  entries,
					})
				}

				printMoods(out, moods)
				fmt.Fprintln(out)
				printProgress(out, progress)
				if recent > 0 {
					fmt.Fprintln(out)
					printRecentMoods(out, entries)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")
	cmd.Flags().IntVar(&recent, "recent", 5, "number of latest mood entries to show (0 to hide)")
	return cmd
}

func printMoods(out io.Writer, moods model.MoodAnalytics) {
	auraColor.Fprintf(out, "😊 Moods (%d entries)\n", moods.TotalEntries)
	if len(moods.MoodCounts) == 0 {
		fmt.Fprintln(out, faintColor.Sprint("  No moods logged yet."))
		return
	}
	for _, count := range moods.MoodCounts {
		fmt.Fprintf(out, "  %-12s %d\n", count.Mood, count.Count)
	}
}

func printProgress(out io.Writer, progress model.ProgressAnalytics) {
	auraColor.Fprintf(out, "📈 Goal progress (%d check-ins)\n", progress.TotalProgressEntries)
	if len(progress.GoalProgress) == 0 {
		fmt.Fprintln(out, faintColor.Sprint("  No goals yet."))
		return
	}
	for _, goal := range progress.GoalProgress {
		fmt.Fprintf(out, "  %s\n", goal.GoalText)
		fmt.Fprintf(out, "    %s\n", faintColor.Sprintf("yes %d · no %d · maybe %d", goal.YesCount, goal.NoCount, goal.MaybeCount))
	}
}

func printRecentMoods(out io.Writer, entries []model.MoodEntry) {
	auraColor.Fprintln(out, "🕒 Recent moods")
	if len(entries) == 0 {
		fmt.Fprintln(out, faintColor.Sprint("  Nothing logged yet."))
		return
	}
	for _, entry := range entries {
		fmt.Fprintf(out, "  %s  %-10s %s\n", faintColor.Sprint(model.FormatDate(entry.DateLogged)), entry.Mood, entry.Description)
	}
}
