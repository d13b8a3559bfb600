package controller

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/jstruct/internal/domain"
	m "github.com/mouse-blink/jstruct/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	input  io.Reader
	output io.Writer
	opts   []tea.ProgramOption
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{
		input:  input,
		output: output,
		opts:   []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// DisplayOutline prints the styled outline without entering the interactive mode.
func (t *TUI) DisplayOutline(path m.Path, grid domain.Grid) error {
	_, err := fmt.Fprintf(t.output, "%s\n%s\n%s",
		titleStyle.Render("class "+grid.ClassName),
		pathStyle.Render(string(path)),
		gridRenderer{grid: grid}.render(),
	)

	return err
}

// DisplayDiff prints a colored unified diff of the edit.
func (t *TUI) DisplayDiff(result domain.EditResult) error {
	diff, err := UnifiedDiff(result)
	if err != nil {
		return err
	}

	if diff == "" {
		_, err = fmt.Fprintf(t.output, "%s: no changes\n", result.Path)
		return err
	}

	_, err = fmt.Fprint(t.output, colorDiff(diff))

	return err
}

// Edit runs the outline editor. The session's background work and the
// program share one lifetime: quitting the program stops the session and a
// failing session stops the program.
func (t *TUI) Edit(ctx context.Context, session *domain.Session) error {
	g, gctx := errgroup.WithContext(ctx)
	runCtx, stop := context.WithCancel(gctx)

	defer stop()

	opts := append([]tea.ProgramOption{
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithContext(gctx),
	}, t.opts...)

	program := tea.NewProgram(newOutlineModel(runCtx, session), opts...)

	g.Go(func() error {
		return session.Run(runCtx)
	})

	g.Go(func() error {
		for {
			select {
			case <-runCtx.Done():
				return nil
			case <-session.Changes():
				program.Send(externalChangeMsg{})
			}
		}
	})

	g.Go(func() error {
		defer stop()

		_, err := program.Run()

		return err
	})

	return g.Wait()
}
