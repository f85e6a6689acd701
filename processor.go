package filelog

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// admits reports whether an entry at level passes the threshold.
// Entries below the threshold are dropped silently; that is not an error.
func (l *Logger) admits(level *Level) bool {
	if l.disabled || l.level == nil || l.level == None {
		return false
	}
	return l.level.GE(level)
}

// entry is the common path of the leveled methods. depth counts frames above the
// caller of entry, so a method called directly by user code passes 1.
func (l *Logger) entry(level *Level, depth int, callingContext, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.admits(level) {
		return
	}
	l.standardEntry(level, l.callerSegment(depth+1, callingContext), text)
}

// standardEntry records the level and writes a formatted entry. The caller has
// already gated the level.
func (l *Logger) standardEntry(level *Level, segment, text string) {
	l.lastLevel = level
	l.writeMessage(l.formatEntry(level, segment, text))
}

// internalEntry writes one of the logger's own entries under a fixed subject.
func (l *Logger) internalEntry(level *Level, subject, text string) {
	if !l.admits(level) {
		return
	}
	l.standardEntry(level, truncate(subject, l.maxCallerWidth), text)
}

// writeMessage routes a finished line to the cache or the file, then mirrors it
// to the console.
func (l *Logger) writeMessage(line string) {
	if l.buffering {
		l.cache.offer(line)
	} else {
		l.persist(line)
	}
	l.mirror(line)
}

// persist runs the rotation checks and appends line to the active file. A failed write
// keeps the line in the cache so it is flushed with the next buffering transition.
func (l *Logger) persist(line string) {
	l.checkSize()
	l.checkDate()

	if err := appendLine(l.cursor.path, line); err != nil {
		l.diag.Warn("failed to write log entry, entry cached",
			zap.String("path", l.cursor.path),
			zap.Error(err),
		)
		l.cache.offer(line)
	}
}

// appendLine opens path for appending, writes line and closes the file again.
// A missing parent directory is created once.
func appendLine(path, line string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
			return errors.Wrap(mkErr, "failed to create log directory")
		}
		file, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	}
	if err != nil {
		return errors.Wrap(err, "failed to open log file")
	}

	_, err = file.WriteString(line + "\n")
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return errors.Wrap(err, "failed to write log file")
}

// setBuffering switches between Buffering and Live. Leaving Buffering writes every
// cached line to the file in order, bypassing the cache and the console.
func (l *Logger) setBuffering(on bool) {
	if l.buffering == on {
		return
	}
	l.buffering = on
	if on || l.disabled {
		return
	}

	if dropped := l.cache.dropped; dropped > 0 {
		l.diag.Warn("buffered entries were discarded",
			zap.Int("dropped", dropped),
			zap.Int("capacity", l.cache.capacity()),
		)
	}
	l.resolvePath()
	for _, line := range l.cache.drainAll() {
		l.persist(line)
	}
}
