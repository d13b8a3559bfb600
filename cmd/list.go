package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/jstruct/internal/domain"
	m "github.com/mouse-blink/jstruct/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <file.java>",
		Short: "Print the members of a class",
		Long: `Print the variables, methods, enums and inner classes of a Java class
grouped by area, in source order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := m.Path(args[0])

			snap, err := workflow.List(cmd.Context(), path)
			if err != nil {
				return err
			}

			return ui.DisplayOutline(path, domain.BuildGrid(snap, settings.PinnedAreas, nil))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
