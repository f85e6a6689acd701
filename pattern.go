package filelog

import (
	"strings"
	"time"
)

// patternProbe is the trial time every layout is formatted and parsed with.
var patternProbe = time.Date(2009, time.November, 17, 20, 34, 58, 651387237, time.UTC)

const (
	reservedNameChars = `<>:"/\|?*`
	reservedDirChars  = `<>"|?*`
)

// checkPattern trial-formats a Go time layout. The layout must contain at least one
// layout element and its output must parse back with the same layout.
func checkPattern(op, layout string) error {
	if strings.TrimSpace(layout) == "" {
		return newConfigError(op, layout, ErrInvalidDateTimePattern)
	}
	formatted := patternProbe.Format(layout)
	if formatted == layout {
		return newConfigError(op, layout, ErrInvalidDateTimePattern)
	}
	if _, err := time.Parse(layout, formatted); err != nil {
		return newConfigError(op, layout, ErrInvalidDateTimePattern)
	}
	return nil
}

// checkBucketPattern validates a date-bucket layout: a single path element that
// identifies a calendar day.
func checkBucketPattern(op, layout string) error {
	if err := checkPattern(op, layout); err != nil {
		return err
	}
	if strings.ContainsAny(layout, `/\`) {
		return newConfigError(op, layout, ErrInvalidDateTimePattern)
	}
	parsed, err := time.Parse(layout, patternProbe.Format(layout))
	if err != nil || parsed.Year() != patternProbe.Year() ||
		parsed.Month() != patternProbe.Month() || parsed.Day() != patternProbe.Day() {
		return newConfigError(op, layout, ErrInvalidDateTimePattern)
	}
	return nil
}

// checkName rejects empty names and names with filesystem-reserved characters.
func checkName(op, name string) error {
	if strings.TrimSpace(name) == "" {
		return newConfigError(op, name, ErrInvalidConfig)
	}
	if strings.ContainsAny(name, reservedNameChars) || hasControl(name) {
		return newConfigError(op, name, ErrInvalidPathCharacters)
	}
	return nil
}

// checkDirectory rejects empty directories and directories with reserved characters.
func checkDirectory(op, dir string) error {
	if strings.TrimSpace(dir) == "" {
		return newConfigError(op, dir, ErrInvalidConfig)
	}
	if strings.ContainsAny(dir, reservedDirChars) || hasControl(dir) {
		return newConfigError(op, dir, ErrInvalidPathCharacters)
	}
	return nil
}

func hasControl(s string) bool {
	for _, c := range s {
		if c < ' ' {
			return true
		}
	}
	return false
}

// normalizeExtension prefixes "." when missing.
func normalizeExtension(ext string) string {
	if ext == "" || ext[0] == '.' {
		return ext
	}
	return "." + ext
}
