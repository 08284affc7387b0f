package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/templui/aura/internal/app"
	"github.com/templui/aura/internal/config"
	"github.com/templui/aura/internal/logger"
)

var (
	auraColor  = color.New(color.FgCyan, color.Bold)
	youColor   = color.New(color.FgGreen)
	faintColor = color.New(color.Faint)
	rule       = strings.Repeat("=", 50)
)

// Root builds the aura command tree.
func Root() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "aura",
		Short:        "AURA - your Adaptive Understanding & Reflective Assistant",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(ChatCmd())
	rootCmd.AddCommand(CheckInCmd())
	rootCmd.AddCommand(RemindCmd())
	rootCmd.AddCommand(RemindersCmd())
	rootCmd.AddCommand(AnalyticsCmd())
	rootCmd.AddCommand(MigrateCmd())
	rootCmd.AddCommand(ExportCmd())

	return rootCmd
}

// setupLogging keeps stderr quiet unless --verbose is set, so the chat on
// stdout stays readable.
func setupLogging(cmd *cobra.Command, cfg *config.Config) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		logger.InitWriter(cmd.ErrOrStderr(), true, cfg.SentryDSN)
		return
	}
	logger.Quiet(cmd.ErrOrStderr())
}

// withApp runs fn with an initialized app and closes it afterwards.
func withApp(cmd *cobra.Command, fn func(a *app.App) error) error {
	cfg := config.Load()
	setupLogging(cmd, cfg)

	a, err := app.New(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer a.Close()

	return fn(a)
}

// console reads user lines and prints AURA's side of the conversation.
type console struct {
	in  *bufio.Scanner
	out io.Writer
}

func newConsole(cmd *cobra.Command) *console {
	return &console{
		in:  bufio.NewScanner(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
	}
}

// ask prints prompt and returns the next trimmed line, or io.EOF.
func (c *console) ask(prompt string) (string, error) {
	youColor.Fprint(c.out, prompt)
	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *console) say(text string) {
	fmt.Fprintf(c.out, "\n%s %s\n", auraColor.Sprint("🤖 AURA:"), text)
}

func (c *console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}
