package quick

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LixenWraith/filelog"
)

// setup points the package logger at a temporary directory without stamps.
func setup(t *testing.T, extra ...string) string {
	t.Helper()
	dir := t.TempDir()
	args := append([]string{
		"name=quick",
		"directory=" + dir,
		"disable_date_stamp=true",
		"disable_time_stamp=true",
	}, extra...)
	require.NoError(t, Config(args...))
	t.Cleanup(Shutdown)
	return dir
}

func readLog(t *testing.T, dir string) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "quick_1.log"))
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestQuick_Writes(t *testing.T) {
	dir := setup(t)

	Info("hello ", 42)
	Verbose("dropped")
	Warning("careful")
	Message("raw")

	lines := readLog(t, dir)
	require.Len(t, lines, 3)
	assert.Regexp(t, `^<Info\s+> \[quick\.TestQuick_Writ\] hello 42$`, lines[0])
	assert.Regexp(t, `^<Warning\s+> \[quick\.TestQuick_Writ\] careful$`, lines[1])
	assert.Equal(t, "raw", lines[2])
	assert.Equal(t, filepath.Join(dir, "quick_1.log"), Path())
}

func TestQuick_ConfigKeepsEarlierSettings(t *testing.T) {
	dir := setup(t)

	require.NoError(t, Config("level=verb"))
	Verbose("now visible")

	lines := readLog(t, dir)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "now visible")
}

func TestQuick_BufferedMessagesSurviveReconfigure(t *testing.T) {
	dir := setup(t, "buffering=true")

	Info("held")
	_, err := os.Stat(filepath.Join(dir, "quick_1.log"))
	require.True(t, os.IsNotExist(err))

	require.NoError(t, Config("buffering=false"))
	lines := readLog(t, dir)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "held")
}

func TestQuick_Clear(t *testing.T) {
	dir := setup(t)

	Info("gone")
	require.NoError(t, Clear())
	require.NoError(t, Clear())

	data, err := os.ReadFile(filepath.Join(dir, "quick_1.log"))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestConfig_Errors(t *testing.T) {
	assert.Error(t, Config())

	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"missing separator", "level", "invalid config format"},
		{"empty key", "=value", "invalid config format"},
		{"unknown key", "colour=red", "unknown config key"},
		{"bad integer", "max_size_mb=big", "invalid integer value"},
		{"bad bool", "utc=maybe", "invalid bool value"},
		{"bad level", "level=loud", "invalid level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config(filelog.DefaultConfig(), tt.arg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfig_Parses(t *testing.T) {
	cfg, err := config(filelog.DefaultConfig(),
		"Name = svc",
		"directory=/tmp/a=b",
		"max_size_mb=12",
		"retention_days=3",
		"store_by_date=true",
		"level=warn",
		"console_level=DIAG",
	)
	require.NoError(t, err)

	assert.Equal(t, "svc", cfg.Name)
	assert.Equal(t, "/tmp/a=b", cfg.Directory)
	assert.Equal(t, int64(12), cfg.MaxSizeMB)
	assert.Equal(t, 3, cfg.RetentionDays)
	assert.True(t, cfg.StoreByDate)
	assert.Equal(t, "Warning", cfg.Level)
	assert.Equal(t, "Diagnostic", cfg.ConsoleLevel)
}
