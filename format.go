package filelog

import (
	"strings"
	"time"
)

// serializer assembles text log lines in a reusable byte buffer.
type serializer struct {
	buf []byte
}

// newSerializer creates a serializer with room for a typical line.
func newSerializer() *serializer {
	return &serializer{buf: make([]byte, 0, 256)}
}

// reset clears the serializer buffer for reuse.
func (s *serializer) reset() {
	s.buf = s.buf[:0]
}

// stamp writes "{date} {time} " using the configured layouts, or nothing when both
// stamps are disabled.
func (s *serializer) stamp(t time.Time, datePattern, timePattern string, withDate, withTime bool) {
	if !withDate && !withTime {
		return
	}
	if withDate {
		s.buf = t.AppendFormat(s.buf, datePattern)
	}
	if withTime {
		if withDate {
			s.buf = append(s.buf, ' ')
		}
		s.buf = t.AppendFormat(s.buf, timePattern)
	}
	s.buf = append(s.buf, ' ')
}

// label writes "<Name   > " with the name right-padded to width.
func (s *serializer) label(name string, width int) {
	s.buf = append(s.buf, '<')
	s.buf = append(s.buf, name...)
	for i := len(name); i < width; i++ {
		s.buf = append(s.buf, ' ')
	}
	s.buf = append(s.buf, '>', ' ')
}

// caller writes "[segment] ".
func (s *serializer) caller(segment string) {
	s.buf = append(s.buf, '[')
	s.buf = append(s.buf, segment...)
	s.buf = append(s.buf, ']', ' ')
}

// text writes the entry text.
func (s *serializer) text(text string) {
	s.buf = append(s.buf, text...)
}

func (s *serializer) String() string {
	return string(s.buf)
}

// formatEntry renders a leveled entry:
// "{date time }<Label> [{caller}] {text}". The caller holds the lock.
func (l *Logger) formatEntry(level *Level, segment, text string) string {
	s := l.line
	s.reset()
	s.stamp(l.clock(), l.datePattern, l.timePattern, l.includeDate, l.includeTime)
	if l.shortLabels {
		s.label(level.ShortName, l.registry.ShortPadding())
	} else {
		s.label(level.Name, l.registry.Padding())
	}
	s.caller(segment)
	s.text(text)
	return s.String()
}

// timestamp renders the stamp segment on its own, without the trailing space.
func (l *Logger) timestamp() string {
	s := l.line
	s.reset()
	s.stamp(l.clock(), l.datePattern, l.timePattern, l.includeDate, l.includeTime)
	return strings.TrimSuffix(s.String(), " ")
}

// padRight pads s with spaces to width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// splitNonBlank splits text on any line ending and drops blank lines.
func splitNonBlank(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
