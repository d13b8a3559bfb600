package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/jstruct/internal/domain"
	m "github.com/mouse-blink/jstruct/internal/model"
)

// report prints the outcome of a scripted edit. Dry runs show the diff.
func report(cmd *cobra.Command, result domain.EditResult) error {
	if settings.DryRun {
		return ui.DisplayDiff(result)
	}

	if !result.Changed() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: no changes\n", result.Path)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s updated\n", result.Path)

	return nil
}

func parseKind(arg string) (m.MemberKind, error) {
	kind, err := m.ParseMemberKind(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid member kind: %w", err)
	}

	return kind, nil
}
