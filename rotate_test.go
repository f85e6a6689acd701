package filelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "app_1.log", fileName("app", 1, ".log"))
	assert.Equal(t, "app_12.txt", fileName("app", 12, ".txt"))
	assert.Equal(t, "app_3", fileName("app", 3, ""))
}

func TestRotate_AdvancesAtThreshold(t *testing.T) {
	l, _ := newTestLogger(t, &Config{})
	dir := filepath.Dir(l.Path())
	l.SetMaxSize(1)

	l.Info("first")
	l.Info("second")
	l.Info("third")

	for i, want := range []string{"first", "second", "third"} {
		lines := readLines(t, filepath.Join(dir, fileName("Test", i+1, ".log")))
		require.Len(t, lines, 1)
		assert.True(t, strings.HasSuffix(lines[0], want))
	}
	assert.Equal(t, "Test_3.log", filepath.Base(l.Path()))
}

func TestRotate_FillsUntilThreshold(t *testing.T) {
	l, _ := newTestLogger(t, &Config{})
	l.Info("entry")
	lineSize := fileSize(t, l.Path())

	// Room for exactly three entries in the first file
	l.SetMaxSize(3 * lineSize)
	l.Info("entry")
	l.Info("entry")
	assert.Equal(t, "Test_1.log", filepath.Base(l.Path()))

	l.Info("entry")
	assert.Equal(t, "Test_2.log", filepath.Base(l.Path()))
	assert.Equal(t, 3*lineSize, fileSize(t, filepath.Join(filepath.Dir(l.Path()), "Test_1.log")))
}

func TestRotate_UnlimitedNeverRotates(t *testing.T) {
	l, _ := newTestLogger(t, &Config{MaxSizeMB: -1})

	for i := 0; i < 100; i++ {
		l.Info(strings.Repeat("x", 100))
	}
	assert.Equal(t, "Test_1.log", filepath.Base(l.Path()))
	assert.Len(t, readLines(t, l.Path()), 100)
}

func TestResolvePath_SkipsFullFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Test_1.log", "Test_2.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(strings.Repeat("x", 20)), 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Test_4.log"), []byte("x"), 0644))

	l, _ := newTestLogger(t, &Config{Directory: dir})
	assert.Equal(t, "Test_1.log", filepath.Base(l.Path()))

	l.SetMaxSize(10)
	require.NoError(t, l.SetName("Test"))
	assert.Equal(t, filepath.Join(dir, "Test_3.log"), l.Path())
}

func TestResolvePath_ReusesPartialFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Test_1.log"), []byte("earlier run\n"), 0644))

	l, _ := newTestLogger(t, &Config{Directory: dir})
	l.Info("appended")

	lines := readLines(t, l.Path())
	require.Len(t, lines, 2)
	assert.Equal(t, "earlier run", lines[0])
}

func TestResolvePath_DateBucket(t *testing.T) {
	dir := t.TempDir()
	clock := newTestClock(testStart)
	l, _ := newTestLogger(t, &Config{Directory: dir, StoreByDate: true}, WithClock(clock.Now))

	assert.Equal(t, filepath.Join(dir, "15-Mar-2024", "Test_1.log"), l.Path())
	info, err := os.Stat(filepath.Join(dir, "15-Mar-2024"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, l.SetBucketPattern("2006-01-02"))
	assert.Equal(t, filepath.Join(dir, "2024-03-15", "Test_1.log"), l.Path())

	l.SetStoreByDate(false)
	assert.Equal(t, filepath.Join(dir, "Test_1.log"), l.Path())
}

func TestCheckDate_RolloverByDate(t *testing.T) {
	dir := t.TempDir()
	clock := newTestClock(testStart)
	l, _ := newTestLogger(t, &Config{Directory: dir, StoreByDate: true}, WithClock(clock.Now))
	l.SetMaxSize(1)

	l.Info("day one a")
	l.Info("day one b")
	assert.Equal(t, filepath.Join(dir, "15-Mar-2024", "Test_2.log"), l.Path())

	clock.Advance(24 * time.Hour)
	l.Info("day two")

	// The index restarts in the new bucket
	assert.Equal(t, filepath.Join(dir, "16-Mar-2024", "Test_1.log"), l.Path())
	lines := readLines(t, l.Path())
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "03/16/2024")
	assert.Len(t, readLines(t, filepath.Join(dir, "15-Mar-2024", "Test_1.log")), 1)
}

func TestCheckDate_RolloverFlat(t *testing.T) {
	dir := t.TempDir()
	clock := newTestClock(testStart)
	l, _ := newTestLogger(t, &Config{Directory: dir}, WithClock(clock.Now))

	l.Info("day one")
	clock.Advance(14 * time.Hour)
	l.Info("day two")

	// Without date buckets the same file continues
	assert.Equal(t, filepath.Join(dir, "Test_1.log"), l.Path())
	assert.Len(t, readLines(t, l.Path()), 2)
}

func TestSetters_RejectedValueKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	clock := newTestClock(testStart)
	l, _ := newTestLogger(t, &Config{Directory: dir, DisableTimeStamp: true}, WithClock(clock.Now))
	path := l.Path()

	err := l.SetDatePattern("not a pattern")
	assert.True(t, IsInvalidPattern(err))
	err = l.SetTimePattern("")
	assert.True(t, IsInvalidPattern(err))
	err = l.SetBucketPattern("01/02/2006")
	assert.True(t, IsInvalidPattern(err))
	err = l.SetName("bad:name")
	assert.True(t, IsInvalidPath(err))
	err = l.SetDirectory("bad|dir")
	assert.True(t, IsInvalidPath(err))
	err = l.SetExtension("l?g")
	assert.True(t, IsInvalidPath(err))

	assert.Equal(t, path, l.Path())
	cfg := l.Config()
	assert.Equal(t, DefaultDatePattern, cfg.DatePattern)
	assert.Equal(t, DefaultTimePattern, cfg.TimePattern)
	assert.Equal(t, DefaultBucketPattern, cfg.BucketPattern)

	l.Info("still default")
	lines := readLines(t, l.Path())
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "03/15/2024 <Info"))

	require.NoError(t, l.SetDatePattern("2006-01-02"))
	l.Info("iso")
	lines = readLines(t, l.Path())
	assert.True(t, strings.HasPrefix(lines[1], "2024-03-15 <Info"))
}

func TestSetExtension(t *testing.T) {
	dir := t.TempDir()
	l, _ := newTestLogger(t, &Config{Directory: dir})

	require.NoError(t, l.SetExtension("txt"))
	assert.Equal(t, filepath.Join(dir, "Test_1.txt"), l.Path())
	require.NoError(t, l.SetExtension(".app"))
	assert.Equal(t, filepath.Join(dir, "Test_1.app"), l.Path())
	require.NoError(t, l.SetExtension(""))
	assert.Equal(t, filepath.Join(dir, "Test_1.log"), l.Path())
}

func TestSetUTC_RecomputesDay(t *testing.T) {
	zone := time.FixedZone("UTC+10", 10*60*60)
	// 20:00 UTC on the 15th is already the 16th at UTC+10
	clock := newTestClock(time.Date(2024, time.March, 15, 20, 0, 0, 0, time.UTC))
	l, _ := newTestLogger(t, &Config{StoreByDate: true}, WithClock(clock.Now))
	assert.Equal(t, "15-Mar-2024", filepath.Base(filepath.Dir(l.Path())))

	original := time.Local
	time.Local = zone
	t.Cleanup(func() { time.Local = original })

	l.SetUTC(false)
	assert.Equal(t, "16-Mar-2024", filepath.Base(filepath.Dir(l.Path())))
}

func TestSetUTC_ResolvesFlatPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	l, _ := newTestLogger(t, &Config{Directory: dir})
	require.True(t, exists(dir))
	require.NoError(t, os.RemoveAll(dir))

	l.SetUTC(false)
	assert.True(t, exists(dir))
	assert.Equal(t, filepath.Join(dir, "Test_1.log"), l.Path())
}

func fileSize(t *testing.T, path string) int64 {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	return info.Size()
}
