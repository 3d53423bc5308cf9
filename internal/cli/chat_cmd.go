package cli

import (
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat about your garden with live planting suggestions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(app)
		},
	}
}

func runChat(app *App) error {
	return app.runProgram(newChatModel(app))
}
