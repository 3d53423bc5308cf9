package cli

import (
	"time"

	"github.com/alexanderramin/sprout/internal/advisory"
	"github.com/alexanderramin/sprout/internal/calendar"
	"github.com/alexanderramin/sprout/internal/intelligence"
	"github.com/alexanderramin/sprout/internal/knowledge"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// App holds the components used by CLI commands and the chat view.
type App struct {
	Knowledge *knowledge.Base
	Calendar  *calendar.Calendar
	Resolver  *intelligence.Resolver
	Advisory  *advisory.Service

	// ReplyDelay paces chat replies. Zero delivers them immediately.
	ReplyDelay time.Duration

	// Hooks, replaced in tests. Nil values fall back to the real thing.
	Now           func() time.Time
	IsInteractive func() bool
	RunForm       func(*huh.Form) error
	RunProgram    func(tea.Model) error
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runForm(f *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(f)
	}
	return f.Run()
}

func (a *App) runProgram(m tea.Model) error {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	_, err := tea.NewProgram(m).Run()
	return err
}

// NewRootCmd creates the top-level "sprout" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "sprout",
		Short: "Planting and pest advice for home gardeners",
		Long: `sprout answers questions about a fixed set of crops and suggests what
to plant from today's weather, or from the planting calendar when the
weather is unavailable.

Run without arguments in a terminal to start the chat.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runChat(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newAskCmd(app),
		newAdviseCmd(app),
		newCropsCmd(app),
		newCalendarCmd(app),
		newChatCmd(app),
	)

	return root
}
