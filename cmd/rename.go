package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/jstruct/internal/model"
)

// renameCmd represents the rename command.
var renameCmd = newRenameCmd()

func newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <file.java> <kind> <name> <new-name>",
		Short: "Rename a member and every reference to it",
		Long: `Rename a member of a Java class. Every reference to the member in the
file is renamed with it. Overloaded methods cannot be renamed by name.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[1])
			if err != nil {
				return err
			}

			result, err := workflow.Rename(cmd.Context(), m.Path(args[0]), kind, args[2], args[3])
			if err != nil {
				return err
			}

			return report(cmd, result)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
