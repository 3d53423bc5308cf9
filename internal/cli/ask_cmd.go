package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	var explain, pick bool

	cmd := &cobra.Command{
		Use:   "ask [question...]",
		Short: "Ask about planting or pests for a crop",
		Example: `  sprout ask "How to plant carrots?"
  sprout ask Pests in eggplant
  sprout ask --pick`,
		RunE: func(cmd *cobra.Command, args []string) error {
			classification := app.Resolver.Classify(strings.Join(args, " "))
			if pick {
				c, err := pickQuestion(app)
				if err != nil {
					return fmt.Errorf("picking a question: %w", err)
				}
				classification = c
			}

			out := cmd.OutOrStdout()
			if explain {
				fmt.Fprintf(out, "  %s\n", formatter.FormatClassification(classification))
			}
			fmt.Fprint(out, formatter.FormatAnswer(app.Resolver.Answer(classification)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "Show the detected intent and crop")
	cmd.Flags().BoolVar(&pick, "pick", false, "Choose a crop and topic from a form")

	return cmd
}
