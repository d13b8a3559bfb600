package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/jstruct/internal/model"
)

// deleteCmd represents the delete command.
var deleteCmd = newDeleteCmd()

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <file.java> <kind> <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a member",
		Long: `Delete a member of a Java class together with its comments. Deleting one
variable of a multi-variable declaration keeps the others.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[1])
			if err != nil {
				return err
			}

			result, err := workflow.Delete(cmd.Context(), m.Path(args[0]), kind, args[2])
			if err != nil {
				return err
			}

			return report(cmd, result)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
