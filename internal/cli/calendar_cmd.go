package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/sprout/internal/calendar"
	"github.com/alexanderramin/sprout/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var month string
	var all bool

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the static planting calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			now := app.now()

			if all {
				fmt.Fprint(out, formatter.FormatCalendarYear(app.Calendar, now.Month()))
				return nil
			}

			if month != "" {
				m, err := calendar.ParseMonth(month)
				if err != nil {
					return err
				}
				now = time.Date(now.Year(), m, 1, 0, 0, 0, 0, now.Location())
			}
			fmt.Fprint(out, formatter.FormatMonthAdvice(app.Calendar.CurrentMonthAdvice(now)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Month name or number (default: current month)")
	cmd.Flags().BoolVar(&all, "all", false, "Show the whole year")

	return cmd
}
