package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/jstruct/internal/adapter"
	jerrors "github.com/mouse-blink/jstruct/internal/errors"
	m "github.com/mouse-blink/jstruct/internal/model"
)

const counterClass = `class Counter {
    private int count = 0;

    void inc() {
        count++;
    }

    int get() {
        return count;
    }
}
`

func writeJava(t *testing.T, content string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), "Counter.java")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return m.Path(path)
}

func readJava(t *testing.T, path m.Path) string {
	t.Helper()

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)

	return string(data)
}

func testSettings() Settings {
	s := DefaultSettings()
	s.PollInterval = time.Millisecond
	s.Timeout = 2 * time.Second

	return s
}

func newTestWorkflow(settings Settings) Workflow {
	return NewWorkflow(adapter.NewLocalSourceFSAdapter(), adapter.NewTreeSitterJavaParser(), settings, nil)
}

func TestWorkflow_List(t *testing.T) {
	path := writeJava(t, counterClass)

	snap, err := newTestWorkflow(testSettings()).List(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "Counter", snap.ClassName)
	assert.Equal(t, 1, snap.Count(m.KindVariable))
	assert.Equal(t, 2, snap.Count(m.KindMethod))
}

func TestWorkflow_ListMissingFile(t *testing.T) {
	_, err := newTestWorkflow(testSettings()).List(context.Background(), m.Path(filepath.Join(t.TempDir(), "Nope.java")))
	assert.Error(t, err)
}

func TestWorkflow_Add(t *testing.T) {
	t.Run("saves the file", func(t *testing.T) {
		path := writeJava(t, counterClass)

		res, err := newTestWorkflow(testSettings()).Add(context.Background(), path, MemberSpec{
			Kind:      m.KindVariable,
			Modifiers: []string{"private"},
			Type:      "String",
			Name:      "label",
		})
		require.NoError(t, err)

		assert.True(t, res.Changed())
		assert.True(t, res.Saved)
		assert.Contains(t, res.After, "    private int count = 0;\n    private String label;\n")
		assert.Equal(t, res.After, readJava(t, path))
	})

	t.Run("dry run leaves the file alone", func(t *testing.T) {
		path := writeJava(t, counterClass)

		settings := testSettings()
		settings.DryRun = true

		res, err := newTestWorkflow(settings).Add(context.Background(), path, MemberSpec{
			Kind: m.KindMethod,
			Type: "void",
			Name: "reset",
		})
		require.NoError(t, err)

		assert.True(t, res.Changed())
		assert.False(t, res.Saved)
		assert.Contains(t, res.After, "void reset()")
		assert.Equal(t, counterClass, readJava(t, path))
	})
}

func TestWorkflow_Rename(t *testing.T) {
	path := writeJava(t, counterClass)

	res, err := newTestWorkflow(testSettings()).Rename(context.Background(), path, m.KindVariable, "count", "total")
	require.NoError(t, err)

	assert.NotContains(t, res.After, "count")
	assert.Contains(t, res.After, "private int total = 0;")
	assert.Contains(t, res.After, "total++;")
	assert.Contains(t, res.After, "return total;")
	assert.Equal(t, res.After, readJava(t, path))
}

func TestWorkflow_RenameUnknown(t *testing.T) {
	path := writeJava(t, counterClass)

	_, err := newTestWorkflow(testSettings()).Rename(context.Background(), path, m.KindMethod, "missing", "x")
	require.Error(t, err)
	assert.True(t, jerrors.IsCode(err, jerrors.CodeNotFound))
	assert.Equal(t, counterClass, readJava(t, path))
}

func TestWorkflow_Delete(t *testing.T) {
	path := writeJava(t, counterClass)

	res, err := newTestWorkflow(testSettings()).Delete(context.Background(), path, m.KindMethod, "inc")
	require.NoError(t, err)

	assert.NotContains(t, res.After, "inc()")
	assert.Contains(t, res.After, "int get()")
	assert.True(t, res.Saved)
}

func TestWorkflow_ReplaceBody(t *testing.T) {
	path := writeJava(t, counterClass)

	res, err := newTestWorkflow(testSettings()).ReplaceBody(context.Background(), path, "get", "if (count < 0) {\n    return 0;\n}\nreturn count;\n")
	require.NoError(t, err)

	want := "    int get() {\n" +
		"        if (count < 0) {\n" +
		"            return 0;\n" +
		"        }\n" +
		"        return count;\n" +
		"    }\n"
	assert.Contains(t, res.After, want)
	assert.Contains(t, res.After, "    void inc() {\n        count++;\n    }\n")
}

func TestFindMember(t *testing.T) {
	snap := m.ClassSnapshot{Members: []m.MemberDescriptor{
		{Kind: m.KindMethod, Name: "run"},
		{Kind: m.KindMethod, Name: "run"},
		{Kind: m.KindVariable, Name: "run"},
	}}

	found, err := FindMember(snap, m.KindVariable, "run")
	require.NoError(t, err)
	assert.Equal(t, m.KindVariable, found.Kind)

	_, err = FindMember(snap, m.KindMethod, "run")
	assert.True(t, jerrors.IsCode(err, jerrors.CodeAmbiguousMatch))

	_, err = FindMember(snap, m.KindEnum, "run")
	assert.True(t, jerrors.IsCode(err, jerrors.CodeNotFound))
}

func TestSession(t *testing.T) {
	path := writeJava(t, counterClass)

	settings := testSettings()
	settings.WatchDebounce = 10 * time.Millisecond

	session, err := newTestWorkflow(settings).Open(context.Background(), path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- session.Run(ctx) }()

	o := session.Outline()
	require.NoError(t, o.AddMember(ctx, MemberSpec{Kind: m.KindVariable, Type: "int", Name: "step"}))
	assert.Contains(t, readJava(t, path), "int step;", "autosave writes every operation")

	// Give the watcher time to register the directory.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(string(path), []byte("class Counter {\n    int other;\n}\n"), 0o644))

	select {
	case <-session.Changes():
	case <-time.After(2 * time.Second):
		require.Fail(t, "external change was not reported")
	}

	require.NoError(t, session.Reload(ctx))
	snap := o.View().Snapshot
	require.Len(t, snap.Members, 1)
	assert.Equal(t, "other", snap.Members[0].Name)

	cancel()
	require.NoError(t, <-done)
}
