package cli

import (
	"fmt"

	"github.com/alexanderramin/sprout/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAdviseCmd(app *App) *cobra.Command {
	var city string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Suggest what to plant from today's weather",
		Long: `Fetch current weather and suggest what to plant. When the weather
service is unreachable or not configured, the suggestion comes from the
planting calendar for the current month.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Checking the weather...")
			}
			a := app.Advisory.AdviseFor(cmd.Context(), city, app.now())
			stop()

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAdvisory(a, verbose))
			return nil
		},
	}

	cmd.Flags().StringVar(&city, "city", "", fmt.Sprintf("Location query (default %q, set by SPROUT_WEATHER_CITY)", app.Advisory.City()))
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Explain why the calendar was used")

	return cmd
}
