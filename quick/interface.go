package quick

import (
	"fmt"
	"sync"

	"github.com/LixenWraith/filelog"
	"github.com/pkg/errors"
)

var (
	mu      sync.Mutex
	current *filelog.Logger
)

// instance returns the package logger, creating it with defaults on first use.
// It returns nil when the default configuration cannot be applied.
func instance() *filelog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if current == nil {
		l, err := filelog.New(nil)
		if err != nil {
			return nil
		}
		current = l
	}
	return current
}

// Critical logs a critical message.
func Critical(args ...any) {
	if l := instance(); l != nil {
		l.Output(2, filelog.Critical, fmt.Sprint(args...))
	}
}

// Error logs an error message.
// Message is dropped if the logger's level is below error.
func Error(args ...any) {
	if l := instance(); l != nil {
		l.Output(2, filelog.Error, fmt.Sprint(args...))
	}
}

// Warning logs a warning message.
// Message is dropped if the logger's level is below warning.
func Warning(args ...any) {
	if l := instance(); l != nil {
		l.Output(2, filelog.Warning, fmt.Sprint(args...))
	}
}

// Info logs an info message.
// Message is dropped if the logger's level is below info.
func Info(args ...any) {
	if l := instance(); l != nil {
		l.Output(2, filelog.Info, fmt.Sprint(args...))
	}
}

// Verbose logs a verbose message.
func Verbose(args ...any) {
	if l := instance(); l != nil {
		l.Output(2, filelog.Verbose, fmt.Sprint(args...))
	}
}

// Diagnostic logs a diagnostic message.
func Diagnostic(args ...any) {
	if l := instance(); l != nil {
		l.Output(2, filelog.Diagnostic, fmt.Sprint(args...))
	}
}

// Exception logs err and the errors it wraps.
func Exception(err error, message string) {
	if l := instance(); l != nil {
		l.Exception(err, message, true)
	}
}

// Message writes text without stamp, label or caller.
func Message(args ...any) {
	if l := instance(); l != nil {
		l.Echo(fmt.Sprint(args...), false, nil)
	}
}

// Banner writes a banner; an empty message writes the process banner.
func Banner(message string) {
	if l := instance(); l != nil {
		l.Banner(message)
	}
}

// Clear truncates the current log file.
func Clear() error {
	l := instance()
	if l == nil {
		return errors.New("logger initialization failed")
	}
	return l.Clear()
}

// Path returns the file the next message is written to.
func Path() string {
	if l := instance(); l != nil {
		return l.Path()
	}
	return ""
}

// Config changes the logger configuration with string statements.
// e.g. quick.Config("level=verbose", "directory=/var/log/app")
// Settings not named keep their current value. Buffered messages of the replaced
// logger are written before it is closed.
func Config(args ...string) error {
	if len(args) == 0 {
		return errors.New("no config provided")
	}

	mu.Lock()
	defer mu.Unlock()

	base := filelog.DefaultConfig()
	if current != nil {
		base = current.Config()
	}
	cfg, err := config(base, args...)
	if err != nil {
		return err
	}

	l, err := filelog.New(cfg)
	if err != nil {
		return err
	}
	if current != nil {
		current.SetBuffering(false)
		_ = current.Close()
	}
	current = l
	return nil
}

// Shutdown writes any buffered messages and releases the package logger.
// The next call creates a fresh logger with defaults.
func Shutdown() {
	mu.Lock()
	defer mu.Unlock()

	if current == nil {
		return
	}
	current.SetBuffering(false)
	_ = current.Close()
	current = nil
}
