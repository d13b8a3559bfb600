package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/jstruct/internal/domain"
	m "github.com/mouse-blink/jstruct/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayOutline prints the outline as a table.
func (s *SimpleUI) DisplayOutline(path m.Path, grid domain.Grid) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Area", "Modifiers", "Type", "Name", "Details"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	total := 0

	for _, area := range grid.Areas {
		members := 0

		for _, row := range area.Rows {
			if row.IsAdd() {
				continue
			}

			table.Append(memberColumns(area.Kind, *row.Member))

			members++
		}

		if members == 0 {
			table.Append([]string{area.Kind.Title(), "", "", "(none)", ""})
		}

		total += members
	}

	table.SetFooter([]string{"", "", "", "Members", fmt.Sprintf("%d", total)})
	table.Render()

	s.printf("%s %s\n\n%s", grid.ClassName, path, tableBuffer.String())

	return nil
}

func memberColumns(kind m.MemberKind, member m.MemberDescriptor) []string {
	details := ""

	switch kind {
	case m.KindVariable:
		if member.HasInitializer() {
			details = "= " + member.InitializerText()
		}
	case m.KindMethod:
		details = "(" + strings.Join(member.ParameterStrings(), ", ") + ")"
		if member.IsConstructor() {
			details += " constructor"
		}
	case m.KindEnum, m.KindInnerClass:
	}

	return []string{
		kind.Title(),
		strings.Join(member.Modifiers, " "),
		member.DeclaredType,
		member.Name,
		details,
	}
}

// DisplayDiff prints a unified diff of the edit.
func (s *SimpleUI) DisplayDiff(result domain.EditResult) error {
	diff, err := UnifiedDiff(result)
	if err != nil {
		return err
	}

	if diff == "" {
		s.printf("%s: no changes\n", result.Path)
		return nil
	}

	s.printf("%s", diff)

	return nil
}

// Edit cannot run interactively without a terminal, so it prints the outline
// of the session instead.
func (s *SimpleUI) Edit(_ context.Context, session *domain.Session) error {
	return s.DisplayOutline(session.Path(), session.Outline().View().Grid)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
