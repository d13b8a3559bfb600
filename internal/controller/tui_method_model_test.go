package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/mouse-blink/jstruct/internal/domain"
	m "github.com/mouse-blink/jstruct/internal/model"
)

func TestSplitParameters(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"int a", []string{"int a"}},
		{"int a, String b", []string{"int a", "String b"}},
		{"Map<String, List<Integer>> m, int n", []string{"Map<String, List<Integer>> m", "int n"}},
		{" int a ,, ", []string{"int a"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, splitParameters(tt.in), tt.in)
	}
}

func TestMethodModel_RoundTrip(t *testing.T) {
	spec := domain.MemberSpec{
		Kind:       m.KindMethod,
		Modifiers:  []string{"public", "static"},
		Type:       "int",
		Name:       "sum",
		Parameters: []string{"int a", "int b"},
		BodyLines:  []string{"return a + b;"},
		BodyIndent: 8,
	}

	mm := newMethodModel(spec, nil)
	assert.Equal(t, fieldName, mm.focus)
	assert.Equal(t, spec, mm.spec())
}

func TestMethodModel_FieldCycling(t *testing.T) {
	mm := newMethodModel(domain.MemberSpec{Kind: m.KindMethod}, nil)

	mm, _ = mm.update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldParameters, mm.focus)

	mm, _ = mm.update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldBody, mm.focus)

	mm, _ = mm.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("return;")})
	assert.Equal(t, []string{"return;"}, mm.spec().BodyLines)

	mm, _ = mm.update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldModifiers, mm.focus, "focus wraps around")

	mm, _ = mm.update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldBody, mm.focus)
}

func TestMethodModel_BlankBody(t *testing.T) {
	mm := newMethodModel(domain.MemberSpec{Kind: m.KindMethod, Name: "run", BodyLines: []string{"  "}}, nil)
	assert.Nil(t, mm.spec().BodyLines)
}
