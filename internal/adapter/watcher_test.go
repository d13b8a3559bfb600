package adapter

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/jstruct/internal/model"
)

func TestFileWatcher_ExternalChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "A.java")
	other := filepath.Join(dir, "B.java")
	writeTestFile(t, path, smallClass)

	doc, err := OpenJavaDocument(m.Path(path), NewLocalSourceFSAdapter(), NewTreeSitterJavaParser(), WithSynchronousParse())
	require.NoError(t, err)

	var fired atomic.Int32

	watcher := NewFileWatcher(m.Path(path), doc, 10*time.Millisecond, nil, func() {
		fired.Add(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- watcher.Run(ctx) }()

	// Give the watcher time to register the directory.
	time.Sleep(50 * time.Millisecond)

	writeTestFile(t, other, "class B {}\n")
	require.NoError(t, doc.Save())
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load(), "own saves and other files are ignored")

	writeTestFile(t, path, "class A {\n    int changed;\n}\n")

	require.Eventually(t, func() bool {
		return fired.Load() > 0
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestNewFileWatcher_Defaults(t *testing.T) {
	w := NewFileWatcher("A.java", nil, 0, nil, nil)
	assert.Equal(t, DefaultWatchDebounce, w.debounce)
	assert.NotNil(t, w.log)
}
