package filelog

import (
	"fmt"
	"os"
	"os/user"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultExceptionMessage = "An exception occurred"
	defaultReportHeader     = "properties:"

	// maxErrorChain caps the number of links written for one exception report.
	maxErrorChain = 32
)

// Pair is one label/value line of a table or report.
type Pair struct {
	Label string
	Value string
}

// Echo writes text without stamp, label or caller. When indent is set the line is
// prefixed with the echo indent. A nil level uses the registry default.
func (l *Logger) Echo(text string, indent bool, level *Level) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.echo(text, indent, level)
}

// LineFeed writes an empty line gated by level.
func (l *Logger) LineFeed(level *Level) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.echo("", false, level)
}

// Table writes one justified "label: value" line per pair, gated by level.
func (l *Logger) Table(pairs []Pair, indent bool, level *Level) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.table(pairs, indent, level)
}

// Report writes header as a leveled entry followed by pairs as a table.
// An empty header is written as "properties:".
func (l *Logger) Report(header string, pairs []Pair, indent bool, level *Level) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if header == "" {
		header = defaultReportHeader
	}
	l.report(1, header, pairs, indent, level)
}

// ReportObject writes the exported string, integer and boolean fields of v as a
// report. An empty header is written as "{type} properties:".
func (l *Logger) ReportObject(v any, header string, indent bool, level *Level) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if header == "" {
		header = fmt.Sprintf("%s properties:", indirectType(v))
	}
	l.report(1, header, Properties(v), indent, level)
}

func (l *Logger) echo(text string, indent bool, level *Level) {
	if level == nil {
		level = l.registry.Default()
	}
	if !l.admits(level) {
		return
	}

	l.lastLevel = level
	if indent {
		text = strings.Repeat(" ", l.echoIndent) + text
	}
	l.writeMessage(text)
}

func (l *Logger) table(pairs []Pair, indent bool, level *Level) {
	if level == nil {
		level = l.registry.Default()
	}
	if !l.admits(level) {
		return
	}

	width := 0
	for _, p := range pairs {
		width = max(width, len(p.Label))
	}
	width++

	for _, p := range pairs {
		l.echo(padRight(p.Label, width)+": "+p.Value, indent, level)
	}
}

// report writes a header entry and a table. depth counts frames above the caller of
// report, as with entry.
func (l *Logger) report(depth int, header string, pairs []Pair, indent bool, level *Level) {
	if level == nil {
		level = l.registry.Default()
	}
	if !l.admits(level) {
		return
	}

	l.standardEntry(level, l.callerSegment(depth+1, ""), header)
	l.table(pairs, indent, level)
}

// Properties extracts the exported string, integer and boolean fields of a struct, or
// of the struct a pointer refers to, in declaration order. Other values yield nil.
func Properties(v any) []Pair {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	rt := rv.Type()
	var pairs []Pair
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := rv.Field(i)
		switch fv.Kind() {
		case reflect.String:
			pairs = append(pairs, Pair{Label: field.Name, Value: fv.String()})
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			pairs = append(pairs, Pair{Label: field.Name, Value: strconv.FormatInt(fv.Int(), 10)})
		case reflect.Bool:
			pairs = append(pairs, Pair{Label: field.Name, Value: strconv.FormatBool(fv.Bool())})
		}
	}
	return pairs
}

func indirectType(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// Exception writes err and, when includeInner is set, every error it wraps as one
// multi-line entry at exception level. An empty message is written as
// "An exception occurred".
func (l *Logger) Exception(err error, message string, includeInner bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.admits(Exception) {
		return
	}
	l.exceptionEntry(err, message, l.callerSegment(1, ""), includeInner)
}

// exceptionEntry writes an exception report under segment. The caller holds the lock.
func (l *Logger) exceptionEntry(err error, message, segment string, includeInner bool) {
	if !l.admits(Exception) {
		return
	}
	if message == "" {
		message = defaultExceptionMessage
	}
	text := message + ":\n" + l.chainText(err, includeInner)
	l.standardEntry(Exception, truncate(segment, l.maxCallerWidth), strings.TrimRight(text, "\n"))
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

type errorLink struct {
	text  string
	stack string
}

// errorChain flattens err into links, depth first. Consecutive links with the same
// text are collapsed, keeping the first stack trace found. The walk stops after
// maxErrorChain errors, collapsed or not, so cyclic chains terminate.
func errorChain(err error, includeInner bool) []errorLink {
	var links []errorLink
	visited := 0
	var walk func(e error)
	walk = func(e error) {
		if e == nil || visited >= maxErrorChain {
			return
		}
		visited++

		link := errorLink{text: e.Error()}
		if st, ok := e.(stackTracer); ok {
			link.stack = fmt.Sprintf("%+v", st.StackTrace())
		}
		if n := len(links); n > 0 && links[n-1].text == link.text {
			if links[n-1].stack == "" {
				links[n-1].stack = link.stack
			}
		} else {
			links = append(links, link)
		}

		if !includeInner {
			return
		}
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		case interface{ Cause() error }:
			walk(u.Cause())
		}
	}
	walk(err)
	return links
}

// chainText renders the links of err, indenting link n by n times the exception indent.
func (l *Logger) chainText(err error, includeInner bool) string {
	var b strings.Builder
	for n, link := range errorChain(err, includeInner) {
		indent := strings.Repeat(" ", n*l.exceptionIndent)
		if n > 0 {
			fmt.Fprintf(&b, "\n%sInner Exception #%d:\n", indent, n)
		}
		for _, line := range splitNonBlank(link.text) {
			b.WriteString(indent + line + "\n")
		}
		if l.exceptionStacks && link.stack != "" {
			for _, line := range splitNonBlank(link.stack) {
				b.WriteString(indent + line + "\n")
			}
		}
	}
	return b.String()
}

// Banner writes message between two border lines, surrounded by blank lines. An empty
// message is replaced by the process name, the invoking user and the current time.
func (l *Logger) Banner(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.disabled || l.level == None {
		return
	}
	if message == "" {
		message = fmt.Sprintf("%s -- invoked by %s -- %s", processName(), invokingUser(), l.bannerStamp())
	}

	border := strings.Repeat(l.bannerChar, l.bannerWidth)
	l.writeMessage("\n" + border + "\n" + message + "\n" + border + "\n")
}

func (l *Logger) bannerStamp() string {
	if stamp := l.timestamp(); stamp != "" {
		return stamp
	}
	return l.clock().Format(time.RFC3339)
}

// invokingUser returns the current user name, falling back to the environment.
func invokingUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	if name := os.Getenv("USERNAME"); name != "" {
		return name
	}
	return "unknown"
}

// Clear truncates the current log file. A file that does not exist yet is left
// alone; the message cache is not touched.
func (l *Logger) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.disabled || l.cursor.path == "" {
		return nil
	}
	if _, err := os.Stat(l.cursor.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return errors.Wrap(err, "failed to stat log file")
	}
	return errors.Wrap(os.Truncate(l.cursor.path, 0), "failed to clear log file")
}
