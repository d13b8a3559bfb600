// Package controller provides the host surfaces that display and edit class outlines.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/jstruct/internal/domain"
	m "github.com/mouse-blink/jstruct/internal/model"
)

// UI defines the interface for presenting outlines and edit results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayOutline shows the areas and members of one class.
	DisplayOutline(path m.Path, grid domain.Grid) error
	// DisplayDiff shows what an edit changed.
	DisplayDiff(result domain.EditResult) error
	// Edit runs the session until the user is done with it.
	Edit(ctx context.Context, session *domain.Session) error
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
