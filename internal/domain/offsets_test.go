package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jerrors "github.com/mouse-blink/jstruct/internal/errors"
	m "github.com/mouse-blink/jstruct/internal/model"
)

func member(kind m.MemberKind, name string, start, end int) m.MemberDescriptor {
	return m.MemberDescriptor{Kind: kind, Name: name, StartOffset: start, EndOffset: end, BodyStart: -1, BodyEnd: -1}
}

func TestResolveInsertOffset(t *testing.T) {
	areas := []m.Area{
		{Kind: m.KindVariable, Members: []m.MemberDescriptor{member(m.KindVariable, "a", 15, 25), member(m.KindVariable, "b", 30, 40)}},
		{Kind: m.KindMethod},
		{Kind: m.KindEnum, Members: []m.MemberDescriptor{member(m.KindEnum, "E", 50, 70)}},
		{Kind: m.KindInnerClass},
	}

	tests := []struct {
		name   string
		target m.MemberKind
		want   int
	}{
		{name: "variable after last variable", target: m.KindVariable, want: 40},
		{name: "method falls back to variables", target: m.KindMethod, want: 40},
		{name: "enum after last enum", target: m.KindEnum, want: 70},
		{name: "class falls back to enums", target: m.KindInnerClass, want: 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveInsertOffset(areas, tt.target, 10)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveInsertOffset_EmptyClass(t *testing.T) {
	got, err := ResolveInsertOffset(nil, m.KindMethod, 12)
	require.NoError(t, err)
	assert.Equal(t, 13, got)

	got, err = ResolveInsertOffset([]m.Area{{Kind: m.KindEnum, Members: []m.MemberDescriptor{member(m.KindEnum, "E", 20, 30)}}}, m.KindVariable, 12)
	require.NoError(t, err)
	assert.Equal(t, 13, got, "later areas never influence earlier kinds")
}

func TestResolveInsertOffset_Invariants(t *testing.T) {
	unsorted := []m.Area{{Kind: m.KindMethod, Members: []m.MemberDescriptor{member(m.KindMethod, "b", 50, 60), member(m.KindMethod, "a", 20, 30)}}}

	_, err := ResolveInsertOffset(unsorted, m.KindMethod, 10)
	require.True(t, jerrors.IsCode(err, jerrors.CodeInvariantViolation))

	_, err = ResolveInsertOffset(nil, m.MemberKind(9), 10)
	require.True(t, jerrors.IsCode(err, jerrors.CodeInvariantViolation))

	_, err = ResolveInsertOffset(nil, m.KindMethod, -1)
	require.True(t, jerrors.IsCode(err, jerrors.CodeInvariantViolation))

	beforeBrace := []m.Area{{Kind: m.KindVariable, Members: []m.MemberDescriptor{member(m.KindVariable, "a", 5, 8)}}}
	_, err = ResolveInsertOffset(beforeBrace, m.KindVariable, 10)
	require.True(t, jerrors.IsCode(err, jerrors.CodeInvariantViolation))
}

func TestResolveInsertOffsetAt(t *testing.T) {
	areas := []m.Area{
		{Kind: m.KindVariable, Members: []m.MemberDescriptor{member(m.KindVariable, "a", 15, 25)}},
		{Kind: m.KindMethod, Members: []m.MemberDescriptor{member(m.KindMethod, "f", 30, 50), member(m.KindMethod, "g", 55, 80)}},
	}

	got, err := ResolveInsertOffsetAt(areas, m.KindMethod, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 25, got)

	got, err = ResolveInsertOffsetAt(areas, m.KindMethod, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 50, got)

	got, err = ResolveInsertOffsetAt(areas, m.KindMethod, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 80, got)

	_, err = ResolveInsertOffsetAt(areas, m.KindMethod, 3, 10)
	require.True(t, jerrors.IsCode(err, jerrors.CodeInvariantViolation))

	got, err = ResolveInsertOffsetAt(areas, m.KindVariable, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 11, got)
}

// The offset always lies between the class brace and the end of the last
// member of the target area or an earlier one.
func TestResolveInsertOffset_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 500; i++ {
		bodyStart := rng.Intn(50)
		offset := bodyStart + 1

		var areas []m.Area

		for _, kind := range m.AreaOrder {
			area := m.Area{Kind: kind}

			for j := rng.Intn(4); j > 0; j-- {
				start := offset + rng.Intn(5)
				end := start + 1 + rng.Intn(20)
				area.Members = append(area.Members, member(kind, "x", start, end))
				offset = end
			}

			areas = append(areas, area)
		}

		for pos, target := range m.AreaOrder {
			got, err := ResolveInsertOffset(areas, target, bodyStart)
			require.NoError(t, err)
			require.GreaterOrEqual(t, got, bodyStart)

			limit := bodyStart + 1
			for k := 0; k <= pos; k++ {
				if n := len(areas[k].Members); n > 0 {
					limit = areas[k].Members[n-1].EndOffset
				}
			}

			require.LessOrEqual(t, got, limit)
		}
	}
}

func TestResolveDeleteRange(t *testing.T) {
	r, err := ResolveDeleteRange(member(m.KindVariable, "a", 4, 12))
	require.NoError(t, err)
	assert.Equal(t, m.Range{Start: 4, End: 12}, r)

	_, err = ResolveDeleteRange(member(m.KindVariable, "a", 12, 4))
	require.True(t, jerrors.IsCode(err, jerrors.CodeInvariantViolation))
}

func TestWidenDeleteRange(t *testing.T) {
	text := "class A {\n    int x;\n    int y = 2;\n}"
	start := 25
	end := start + len("int y = 2;")
	require.Equal(t, "int y = 2;", text[start:end])

	r := WidenDeleteRange(text, m.Range{Start: start, End: end})
	assert.Equal(t, "class A {\n    int x;\n}", text[:r.Start]+text[r.End:])

	inline := "class A { int x; }"
	r = WidenDeleteRange(inline, m.Range{Start: 10, End: 16})
	assert.Equal(t, m.Range{Start: 10, End: 16}, r, "members sharing a line are not widened")

	spaced := "class A {\n    int x;\n\n    void f() {\n    }\n}\n"
	start = len("class A {\n    int x;\n\n    ")
	r = WidenDeleteRange(spaced, m.Range{Start: start, End: start + len("void f() {\n    }")})
	assert.Equal(t, "class A {\n    int x;\n}\n", spaced[:r.Start]+spaced[r.End:], "the blank separator line goes too")

	between := "{\n    a;\n\n    b;\n\n    c;\n}"
	start = len("{\n    a;\n\n    ")
	r = WidenDeleteRange(between, m.Range{Start: start, End: start + 2})
	assert.Equal(t, "{\n    a;\n\n    c;\n}", between[:r.Start]+between[r.End:])

	crlf := "{\r\n    int x;\r\n}"
	r = WidenDeleteRange(crlf, m.Range{Start: 7, End: 13})
	assert.Equal(t, "{\r\n}", crlf[:r.Start]+crlf[r.End:])
}

func TestSeparatorRange(t *testing.T) {
	text := "class A {\n    int x;\n\n    void f() {\n    }\n}"
	start := len("class A {\n    int x;\n\n    ")
	end := start + len("void f() {\n    }")

	r := SeparatorRange(text, m.Range{Start: start, End: end})
	assert.Equal(t, "class A {\n    int x;\n}", text[:r.Start]+text[r.End:])
	assert.Equal(t, len("class A {\n    int x;"), r.Start)
}
