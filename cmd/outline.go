package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/jstruct/internal/model"
)

// outlineCmd represents the outline command.
var outlineCmd = newOutlineCmd()

func newOutlineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outline <file.java>",
		Short: "Open the interactive outline of a class",
		Long: `Open the members of a Java class as an editable outline.

Move between areas, rows and columns with the arrow keys, press enter to
edit a cell and type to change it. Changes are written back as you make
them and the outline follows edits made to the file by other programs.`,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{interactiveAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOutline(cmd, m.Path(args[0]))
		},
	}

	return cmd
}

func runOutline(cmd *cobra.Command, path m.Path) error {
	session, err := workflow.Open(cmd.Context(), path)
	if err != nil {
		return err
	}

	return ui.Edit(cmd.Context(), session)
}

func init() {
	rootCmd.AddCommand(outlineCmd)
}
