package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/jstruct/internal/model"
)

func TestLoad(t *testing.T) {
	content := `
[sync]
poll_interval = "10ms"
timeout = "1s"
reparse_delay = "5ms"

[outline]
indent = 2
pinned_areas = ["method", "enum"]
autosave = false

[log]
level = "debug"
file = "/tmp/jstruct-test.log"

[metrics]
address = "127.0.0.1:9464"

[watch]
enabled = false
debounce = "1s"
`
	path := filepath.Join(t.TempDir(), "jstruct.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Millisecond, cfg.Sync.PollInterval)
	assert.Equal(t, time.Second, cfg.Sync.Timeout)
	assert.Equal(t, 5*time.Millisecond, cfg.Sync.ReparseDelay)
	assert.Equal(t, 2, cfg.IndentWidth())
	assert.False(t, cfg.AutosaveEnabled())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/jstruct-test.log", cfg.LogFile())
	assert.Equal(t, "127.0.0.1:9464", cfg.Metrics.Address)
	assert.False(t, cfg.WatchEnabled())
	assert.Equal(t, time.Second, cfg.Watch.Debounce)

	kinds, err := cfg.PinnedKinds()
	require.NoError(t, err)
	assert.Equal(t, []m.MemberKind{m.KindMethod, m.KindEnum}, kinds)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 50*time.Millisecond, cfg.Sync.PollInterval)
	assert.Equal(t, 5*time.Second, cfg.Sync.Timeout)
	assert.Equal(t, time.Duration(0), cfg.Sync.ReparseDelay)
	assert.Equal(t, 4, cfg.IndentWidth())
	assert.True(t, cfg.AutosaveEnabled())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Metrics.Address)
	assert.True(t, cfg.WatchEnabled())
	assert.Equal(t, 200*time.Millisecond, cfg.Watch.Debounce)

	kinds, err := cfg.PinnedKinds()
	require.NoError(t, err)
	assert.Equal(t, []m.MemberKind{m.KindVariable, m.KindMethod}, kinds)
}

func TestParse_ExplicitZeroValuesSurvive(t *testing.T) {
	cfg, err := Parse("[outline]\nindent = 0\npinned_areas = []\n")
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.IndentWidth())
	kinds, err := cfg.PinnedKinds()
	require.NoError(t, err)
	assert.Empty(t, kinds)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad toml", "[sync", "failed to decode config"},
		{"negative poll", "[sync]\npoll_interval = \"-1ms\"\n", "sync.poll_interval"},
		{"timeout below poll", "[sync]\npoll_interval = \"1s\"\ntimeout = \"10ms\"\n", "sync.timeout"},
		{"negative reparse delay", "[sync]\nreparse_delay = \"-1ms\"\n", "sync.reparse_delay"},
		{"indent too large", "[outline]\nindent = 17\n", "outline.indent"},
		{"negative indent", "[outline]\nindent = -1\n", "outline.indent"},
		{"unknown area", "[outline]\npinned_areas = [\"widget\"]\n", "outline.pinned_areas[0]"},
		{"unknown level", "[log]\nlevel = \"loud\"\n", "log.level"},
		{"negative debounce", "[watch]\ndebounce = \"-1s\"\n", "watch.debounce"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.content)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadOptional(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[outline]\nindent = 99\n"), 0o600))

	_, err = LoadOptional(path)
	assert.Error(t, err)
}

func TestDefaultLogFile(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/state")
	assert.Equal(t, filepath.Join("/state", "jstruct", "jstruct.log"), DefaultLogFile())

	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", "/home/dev")
	assert.Equal(t, filepath.Join("/home/dev", ".jstruct", "jstruct.log"), DefaultLogFile())
}
