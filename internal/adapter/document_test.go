package adapter

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jerrors "github.com/mouse-blink/jstruct/internal/errors"
	m "github.com/mouse-blink/jstruct/internal/model"
)

const smallClass = "class A {\n    int x;\n}\n"

func TestJavaDocument_ApplyAtomic_Synchronous(t *testing.T) {
	doc, err := NewJavaDocumentFromText(smallClass, NewTreeSitterJavaParser(), WithSynchronousParse())
	require.NoError(t, err)

	assert.Equal(t, uint64(1), doc.Revision())
	assert.Equal(t, uint64(1), doc.ParsedRevision())
	assert.Equal(t, 1, doc.MemberCount(m.KindVariable))

	rev, err := doc.ApplyAtomic([]m.TextEdit{m.Insert(len("class A {\n    int x;"), "\n    int y;")})
	require.NoError(t, err)

	assert.Equal(t, uint64(2), rev)
	assert.Equal(t, "class A {\n    int x;\n    int y;\n}\n", doc.FullText())
	assert.Equal(t, rev, doc.ParsedRevision())
	assert.Equal(t, 2, doc.MemberCount(m.KindVariable))

	snap, err := doc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, rev, snap.Revision)
	assert.Equal(t, doc.ClassBodyStartOffset(), snap.BodyStart)
	assert.Len(t, doc.ClassMembers(), len(m.AreaOrder))
}

func TestJavaDocument_ApplyAtomic_MultipleEdits(t *testing.T) {
	doc, err := NewJavaDocumentFromText("abc def ghi", NewTreeSitterJavaParser(), WithSynchronousParse())
	require.Error(t, err, "plain text has no class")
	assert.Nil(t, doc)

	doc, err = NewJavaDocumentFromText("class A { int abc; int def; }", NewTreeSitterJavaParser(), WithSynchronousParse())
	require.NoError(t, err)

	// Offsets refer to the original text regardless of edit order.
	_, err = doc.ApplyAtomic([]m.TextEdit{
		m.Replace(23, 26, "total"),
		m.Replace(14, 17, "count"),
	})
	require.NoError(t, err)
	assert.Equal(t, "class A { int count; int total; }", doc.FullText())

	_, err = doc.ApplyAtomic([]m.TextEdit{m.Insert(0, "a"), m.Insert(0, "b")})
	require.NoError(t, err)
	assert.Equal(t, "abclass A { int count; int total; }", doc.FullText(), "inserts at one offset keep their order")
}

func TestJavaDocument_ApplyAtomic_Rejects(t *testing.T) {
	doc, err := NewJavaDocumentFromText(smallClass, NewTreeSitterJavaParser(), WithSynchronousParse())
	require.NoError(t, err)

	cases := map[string][]m.TextEdit{
		"negative start":  {m.Delete(-1, 2)},
		"past end":        {m.Delete(0, len(smallClass)+1)},
		"inverted":        {m.Replace(5, 2, "x")},
		"overlapping":     {m.Delete(0, 5), m.Replace(3, 7, "y")},
		"valid + invalid": {m.Insert(0, "//"), m.Delete(100, 200)},
	}

	for name, edits := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := doc.ApplyAtomic(edits)
			require.Error(t, err)
			assert.True(t, jerrors.IsCode(err, jerrors.CodeInvariantViolation))
			assert.Equal(t, smallClass, doc.FullText())
			assert.Equal(t, uint64(1), doc.Revision())
		})
	}
}

func TestJavaDocument_BackgroundParse(t *testing.T) {
	doc, err := NewJavaDocumentFromText(smallClass, NewTreeSitterJavaParser(), WithReparseDelay(time.Millisecond))
	require.NoError(t, err)

	rev, err := doc.ApplyAtomic([]m.TextEdit{m.Insert(len("class A {\n    int x;"), "\n    int y;")})
	require.NoError(t, err)

	assert.Equal(t, uint64(1), doc.ParsedRevision(), "parse lags until the parser runs")
	assert.Equal(t, 1, doc.MemberCount(m.KindVariable))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- doc.Run(ctx) }()

	require.Eventually(t, func() bool {
		return doc.ParsedRevision() == rev
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, 2, doc.MemberCount(m.KindVariable))

	cancel()
	require.NoError(t, <-done)
}

func TestJavaDocument_FileLifecycle(t *testing.T) {
	fs := NewLocalSourceFSAdapter()
	path := filepath.Join(t.TempDir(), "A.java")
	writeTestFile(t, path, smallClass)

	doc, err := OpenJavaDocument(m.Path(path), fs, NewTreeSitterJavaParser(), WithSynchronousParse())
	require.NoError(t, err)
	assert.Equal(t, m.Path(path), doc.Path())

	changed, err := doc.Changed()
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = doc.ApplyAtomic([]m.TextEdit{m.Replace(18, 19, "z")})
	require.NoError(t, err)
	require.NoError(t, doc.Save())
	assert.Equal(t, "class A {\n    int z;\n}\n", string(readFileBytes(t, path)))

	changed, err = doc.Changed()
	require.NoError(t, err)
	assert.False(t, changed, "saving updates the known hash")

	writeTestFile(t, path, "class A {\n    int q;\n    int r;\n}\n")

	changed, err = doc.Changed()
	require.NoError(t, err)
	assert.True(t, changed)

	before := doc.Revision()
	require.NoError(t, doc.Reload())
	assert.Greater(t, doc.Revision(), before)
	assert.Equal(t, 2, doc.MemberCount(m.KindVariable))

	changed, err = doc.Changed()
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestJavaDocument_WithoutFile(t *testing.T) {
	doc, err := NewJavaDocumentFromText(smallClass, NewTreeSitterJavaParser())
	require.NoError(t, err)

	assert.True(t, jerrors.IsCode(doc.Save(), jerrors.CodeInvariantViolation))
	assert.True(t, jerrors.IsCode(doc.Reload(), jerrors.CodeInvariantViolation))

	changed, err := doc.Changed()
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = OpenJavaDocument(m.Path(filepath.Join(t.TempDir(), "Missing.java")), NewLocalSourceFSAdapter(), NewTreeSitterJavaParser())
	require.Error(t, err)
	assert.True(t, jerrors.IsCode(err, jerrors.CodeInternal))
}
