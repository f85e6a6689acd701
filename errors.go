package filelog

import (
	"fmt"

	"github.com/pkg/errors"
)

// Configuration errors. They are only returned by construction, setters, level
// registration and config loading, never by a write.
var (
	ErrInvalidPathCharacters  = errors.New("invalid path characters")
	ErrInvalidDateTimePattern = errors.New("invalid date/time pattern")
	ErrDuplicateLevelName     = errors.New("duplicate level name")
	ErrInvalidConfig          = errors.New("invalid configuration")
)

// ConfigError wraps a configuration error with the operation and offending value.
type ConfigError struct {
	Op    string // setter or loader that rejected the value
	Value string // rejected value
	Err   error  // one of the Err* sentinels
}

func (e *ConfigError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("filelog %s %q: %v", e.Op, e.Value, e.Err)
	}
	return fmt.Sprintf("filelog %s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for op rejecting value.
func newConfigError(op, value string, err error) *ConfigError {
	return &ConfigError{
		Op:    op,
		Value: value,
		Err:   err,
	}
}

// IsInvalidPath reports whether err was caused by reserved characters in a name or directory.
func IsInvalidPath(err error) bool {
	return errors.Is(err, ErrInvalidPathCharacters)
}

// IsInvalidPattern reports whether err was caused by a rejected date/time layout.
func IsInvalidPattern(err error) bool {
	return errors.Is(err, ErrInvalidDateTimePattern)
}

// IsDuplicateLevel reports whether err was caused by a level name collision.
func IsDuplicateLevel(err error) bool {
	return errors.Is(err, ErrDuplicateLevelName)
}
