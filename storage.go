package filelog

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// subjectRetention is the caller segment of entries written by the retention sweep.
const subjectRetention = "Retention"

// setRetention updates the retention horizon and recomputes the cutoff.
func (l *Logger) setRetention(days int) {
	l.retentionDays = abs(days)
	if l.retentionDays > 0 {
		l.cursor.cutoff = l.clock().AddDate(0, 0, -l.retentionDays)
	}
}

// sweep removes expired date buckets and log files. Failures are written as Warning or
// Exception entries through this logger and never returned.
func (l *Logger) sweep() {
	if l.retentionDays <= 0 {
		return
	}
	l.cursor.cutoff = l.clock().AddDate(0, 0, -l.retentionDays)

	if l.storeByDate {
		l.sweepDirectories()
	}
	l.sweepFiles()
}

// sweepDirectories deletes subdirectories whose name parses, with the bucket pattern,
// to a day before the cutoff. Names that do not parse are reported and kept.
func (l *Logger) sweepDirectories() {
	entries, err := os.ReadDir(l.directory)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			l.exceptionEntry(err, "Could not read log directory: "+l.directory, subjectRetention, true)
		}
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(l.directory, entry.Name())
		day, err := time.ParseInLocation(l.bucketPattern, entry.Name(), l.location())
		if err != nil {
			l.internalEntry(Warning, subjectRetention, "Artifact found in logging directory: "+path)
			continue
		}
		if !day.Before(l.cursor.cutoff) {
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			l.exceptionEntry(err, "Could not delete old log folder: "+path, subjectRetention, true)
		}
	}
}

// sweepFiles deletes files directly in the log directory that belong to this logger
// (name contains the log name, matching extension) and were last written before the cutoff.
func (l *Logger) sweepFiles() {
	entries, err := os.ReadDir(l.directory)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			l.exceptionEntry(err, "Could not read log directory: "+l.directory, subjectRetention, true)
		}
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().In(l.location()).Before(l.cursor.cutoff) {
			continue
		}
		if !strings.Contains(entry.Name(), l.name) ||
			!strings.EqualFold(filepath.Ext(entry.Name()), l.extension) {
			continue
		}

		path := filepath.Join(l.directory, entry.Name())
		if err := os.Remove(path); err != nil {
			l.exceptionEntry(err, "Unable to delete old log file: "+path, subjectRetention, true)
			continue
		}
		if _, err := os.Stat(path); err == nil {
			l.internalEntry(Warning, subjectRetention, "Unable to delete old log file: "+path)
		}
	}
}
