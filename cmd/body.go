package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/jstruct/internal/model"
)

var bodyFromFlag string

// bodyCmd represents the body command.
var bodyCmd = newBodyCmd()

func newBodyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "body <file.java> <method>",
		Short: "Replace the body of a method",
		Long: `Replace the statements between the braces of a method. The new body is
re-indented to the indentation the method already uses.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readSource(cmd, bodyFromFlag)
			if err != nil {
				return err
			}

			result, err := workflow.ReplaceBody(cmd.Context(), m.Path(args[0]), args[1], body)
			if err != nil {
				return err
			}

			return report(cmd, result)
		},
	}
	cmd.Flags().StringVarP(&bodyFromFlag, "from", "f", "-", `file holding the new body, or "-" for stdin`)

	return cmd
}

func init() {
	rootCmd.AddCommand(bodyCmd)
}
