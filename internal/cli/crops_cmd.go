package cli

import (
	"fmt"

	"github.com/alexanderramin/sprout/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCropsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "crops",
		Aliases: []string{"list"},
		Short:   "List the crops sprout knows about",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCropList(app.Knowledge.Crops()))
			return nil
		},
	}
}
