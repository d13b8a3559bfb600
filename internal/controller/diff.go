package controller

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/mouse-blink/jstruct/internal/domain"
)

const diffContext = 3

// UnifiedDiff renders the change of result as a unified diff. It returns an
// empty string when nothing changed.
func UnifiedDiff(result domain.EditResult) (string, error) {
	if !result.Changed() {
		return "", nil
	}

	name := string(result.Path)

	diff := difflib.UnifiedDiff{
		A:        splitLinesKeepNL(result.Before),
		B:        splitLinesKeepNL(result.After),
		FromFile: "a/" + strings.TrimPrefix(name, "/"),
		ToFile:   "b/" + strings.TrimPrefix(name, "/"),
		Context:  diffContext,
	}

	s, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("failed to diff %s: %w", name, err)
	}

	return s, nil
}

func splitLinesKeepNL(s string) []string {
	if s == "" {
		return []string{}
	}

	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
