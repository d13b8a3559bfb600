package domain

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	jerrors "github.com/mouse-blink/jstruct/internal/errors"
)

func TestFindUnquotedTerminator(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start int
		want  int
	}{
		{name: "plain", text: "int a = 1;", start: 0, want: 9},
		{name: "block comment before terminator", text: "int a /* ; */ = 1;", start: 0, want: 17},
		{name: "line comment", text: "int a // ;\n = 1;", start: 0, want: 15},
		{name: "lone slash is division", text: "int a = 4 / 2;", start: 0, want: 13},
		{name: "slash directly before terminator", text: "a = b /;", start: 0, want: 7},
		{name: "double star closes block", text: "x /** ; **/ ;", start: 0, want: 12},
		{name: "star inside block", text: "x /* * ; */;", start: 0, want: 11},
		{name: "string literal", text: `String s = "a;b";`, start: 0, want: 16},
		{name: "escaped quote", text: `String s = "a\";b";`, start: 0, want: 18},
		{name: "char literal", text: "char c = ';';", start: 0, want: 12},
		{name: "start offset skips earlier", text: "a; b;", start: 2, want: 4},
		{name: "terminator at start", text: ";", start: 0, want: 0},
		{name: "opening brace", text: "void f() /* { */ {", start: 0, want: 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terminator := byte(';')
			if strings.Contains(tt.name, "brace") {
				terminator = '{'
			}

			got, err := FindUnquotedTerminator(tt.text, tt.start, terminator)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFindUnquotedTerminator_CommentScenario(t *testing.T) {
	text := "int a /* ; */ = 1;"

	got, err := FindUnquotedTerminator(text, 0, ';')
	require.NoError(t, err)
	require.Equal(t, strings.LastIndex(text, ";"), got)
}

func TestFindUnquotedTerminator_NotFound(t *testing.T) {
	for _, text := range []string{"", "int a", "int a /* ; */", "int a // ;", "int a /* ; "} {
		_, err := FindUnquotedTerminator(text, 0, ';')
		require.Error(t, err, text)
		require.True(t, jerrors.IsCode(err, jerrors.CodeNotFound), text)
	}
}

func TestFindUnquotedTerminator_StartOutOfRange(t *testing.T) {
	_, err := FindUnquotedTerminator("abc", -1, ';')
	require.True(t, jerrors.IsCode(err, jerrors.CodeInvariantViolation))

	_, err = FindUnquotedTerminator("abc", 4, ';')
	require.True(t, jerrors.IsCode(err, jerrors.CodeInvariantViolation))

	_, err = FindUnquotedTerminator("abc", 3, ';')
	require.True(t, jerrors.IsCode(err, jerrors.CodeNotFound))
}

// Terminators hidden in comments placed right before a real one are never reported.
func TestFindUnquotedTerminator_CommentsNeverMatch(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	fillers := []string{"int", " ", "a", "=", "1", "/", "*", "x", "\t", "b2"}

	for i := 0; i < 500; i++ {
		var b strings.Builder

		for j := rng.Intn(6); j > 0; j-- {
			b.WriteString(fillers[rng.Intn(len(fillers))])
			// A trailing '/' would merge with the next comment opener.
			if strings.HasSuffix(b.String(), "/") {
				b.WriteString(" ")
			}
		}

		prefix := b.String()

		var comments strings.Builder

		for k := rng.Intn(3) + 1; k > 0; k-- {
			if rng.Intn(2) == 0 {
				comments.WriteString("/* ;" + strings.Repeat("*", rng.Intn(3)) + " ; */")
			} else {
				comments.WriteString("// ; ;\n")
			}
		}

		text := prefix + comments.String() + " ;"

		got, err := FindUnquotedTerminator(text, 0, ';')
		require.NoError(t, err, text)
		require.Equal(t, len(text)-1, got, text)
	}
}
