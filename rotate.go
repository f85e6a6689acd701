package filelog

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// fileName composes "{name}_{index}{ext}".
func fileName(name string, index int, ext string) string {
	return fmt.Sprintf("%s_%d%s", name, index, ext)
}

// activeDirectory returns the directory the current file lives in: the log directory,
// or its date bucket when storing by date.
func (l *Logger) activeDirectory() string {
	if l.storeByDate {
		return filepath.Join(l.directory, l.cursor.day.Format(l.bucketPattern))
	}
	return l.directory
}

// resolvePath selects the next writable file. An existing file is reused while it is
// below the rotation threshold; otherwise the rotation index advances until a free or
// small enough slot is found. The directory is not created while buffering.
func (l *Logger) resolvePath() {
	dir := l.activeDirectory()
	if absDir, err := filepath.Abs(dir); err == nil {
		dir = absDir
	}

	if !l.buffering {
		if err := os.MkdirAll(dir, 0755); err != nil {
			l.diag.Warn("failed to create log directory", zap.String("directory", dir), zap.Error(err))
		}
	}

	for {
		candidate := filepath.Join(dir, fileName(l.name, l.cursor.index, l.extension))
		info, err := os.Stat(candidate)
		if err != nil {
			l.cursor.path = candidate
			return
		}
		if !info.IsDir() && (l.maxSize <= 0 || info.Size() < l.maxSize) {
			l.cursor.path = candidate
			return
		}
		l.cursor.index++
	}
}

// checkSize advances the rotation index once the active file reaches the threshold.
func (l *Logger) checkSize() {
	if l.maxSize <= 0 {
		return
	}
	info, err := os.Stat(l.cursor.path)
	if err != nil {
		return
	}
	if info.Size() >= l.maxSize {
		l.cursor.index++
		l.resolvePath()
	}
}

// checkDate detects a calendar-day rollover. On a new day the date bucket moves, the
// rotation index restarts when storing by date, and retention runs if configured.
func (l *Logger) checkDate() {
	today := dayOf(l.clock())
	if !today.After(l.cursor.day) {
		return
	}
	l.cursor.day = today

	if l.storeByDate {
		l.cursor.index = 1
		l.resolvePath()
	}
	if l.retentionDays > 0 {
		l.sweep()
	}
}
