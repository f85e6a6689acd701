package filelog

import "fmt"

// LoggerInterface is the write surface of a Logger, for callers that accept any
// leveled logger.
type LoggerInterface interface {
	Critical(text string)
	Error(text string)
	Warning(text string)
	Info(text string)
	Verbose(text string)
	Diagnostic(text string)
	Log(level *Level, callingContext, text string)
	Exception(err error, message string, includeInner bool)
}

var _ LoggerInterface = (*Logger)(nil)

// Critical logs text at critical level.
// The entry is dropped if the threshold is below critical or the logger is disabled.
func (l *Logger) Critical(text string) {
	l.entry(Critical, 1, "", text)
}

// Error logs text at error level.
// The entry is dropped if the threshold is below error or the logger is disabled.
func (l *Logger) Error(text string) {
	l.entry(Error, 1, "", text)
}

// Warning logs text at warning level.
// The entry is dropped if the threshold is below warning or the logger is disabled.
func (l *Logger) Warning(text string) {
	l.entry(Warning, 1, "", text)
}

// Info logs text at info level.
// The entry is dropped if the threshold is below info or the logger is disabled.
func (l *Logger) Info(text string) {
	l.entry(Info, 1, "", text)
}

// Verbose logs text at verbose level.
func (l *Logger) Verbose(text string) {
	l.entry(Verbose, 1, "", text)
}

// Diagnostic logs text at diagnostic level.
func (l *Logger) Diagnostic(text string) {
	l.entry(Diagnostic, 1, "", text)
}

// Criticalf is Critical with fmt.Sprintf formatting.
func (l *Logger) Criticalf(format string, args ...any) {
	l.entry(Critical, 1, "", fmt.Sprintf(format, args...))
}

// Errorf is Error with fmt.Sprintf formatting.
func (l *Logger) Errorf(format string, args ...any) {
	l.entry(Error, 1, "", fmt.Sprintf(format, args...))
}

// Warningf is Warning with fmt.Sprintf formatting.
func (l *Logger) Warningf(format string, args ...any) {
	l.entry(Warning, 1, "", fmt.Sprintf(format, args...))
}

// Infof is Info with fmt.Sprintf formatting.
func (l *Logger) Infof(format string, args ...any) {
	l.entry(Info, 1, "", fmt.Sprintf(format, args...))
}

// Verbosef is Verbose with fmt.Sprintf formatting.
func (l *Logger) Verbosef(format string, args ...any) {
	l.entry(Verbose, 1, "", fmt.Sprintf(format, args...))
}

// Diagnosticf is Diagnostic with fmt.Sprintf formatting.
func (l *Logger) Diagnosticf(format string, args ...any) {
	l.entry(Diagnostic, 1, "", fmt.Sprintf(format, args...))
}

// Log writes text at level with an explicit calling context in place of the
// resolved function name. A nil level uses the registry default.
func (l *Logger) Log(level *Level, callingContext, text string) {
	if level == nil {
		level = l.registry.Default()
	}
	l.entry(level, 1, callingContext, text)
}

// Output writes text at level, resolving the caller calldepth frames up. A calldepth of 1
// names the caller of Output; wrappers add one per frame, as with the standard log package.
func (l *Logger) Output(calldepth int, level *Level, text string) {
	if level == nil {
		level = l.registry.Default()
	}
	l.entry(level, calldepth, "", text)
}
