package filelog

import (
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Logger is a file logging engine. It owns its file cursor and message cache; nothing is
// shared between Logger instances except an optional Registry.
// All exported methods are safe for concurrent use.
type Logger struct {
	mu sync.Mutex

	registry *Registry
	now      func() time.Time
	callSite CallSiteFunc
	console  io.Writer
	colorize bool

	diag       *zap.Logger
	diagCloser io.Closer

	name          string
	directory     string
	extension     string
	datePattern   string
	timePattern   string
	bucketPattern string
	maxSize       int64 // bytes, 0 is unlimited
	retentionDays int
	storeByDate   bool
	utc           bool

	level        *Level
	consoleLevel *Level
	lastLevel    *Level

	buffering   bool
	consoleEcho bool
	disabled    bool

	includeCaller   bool
	includeDate     bool
	includeTime     bool
	shortLabels     bool
	exceptionStacks bool
	maxCallerWidth  int
	exceptionIndent int
	echoIndent      int
	bannerChar      string
	bannerWidth     int

	cache  *messageCache
	cursor fileCursor
	line   *serializer
}

// fileCursor tracks where the next entry goes.
type fileCursor struct {
	path   string    // resolved absolute file path
	index  int       // rotation index, starts at 1
	day    time.Time // current date bucket, midnight in the configured zone
	cutoff time.Time // entries older than this are eligible for retention
}

// Option customizes collaborators of a Logger at construction.
type Option func(*Logger)

// WithRegistry sets the level registry used to resolve level names and label padding.
func WithRegistry(r *Registry) Option {
	return func(l *Logger) {
		if r != nil {
			l.registry = r
		}
	}
}

// WithClock replaces time.Now, mainly for tests of day rollover and retention.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		if now != nil {
			l.now = now
		}
	}
}

// WithCallSite replaces the stack-based caller resolution.
func WithCallSite(fn CallSiteFunc) Option {
	return func(l *Logger) {
		if fn != nil {
			l.callSite = fn
		}
	}
}

// WithConsoleWriter sets the console mirror destination. Colors are used only when the
// writer is a terminal.
func WithConsoleWriter(w io.Writer) Option {
	return func(l *Logger) {
		if w != nil {
			l.console = w
		}
	}
}

// WithDiagnostics sets the logger that receives the engine's own I/O failures.
func WithDiagnostics(z *zap.Logger) Option {
	return func(l *Logger) {
		if z != nil {
			l.diag = z
		}
	}
}

// New creates a Logger from cfg merged with defaults. A nil cfg uses DefaultConfig.
// Invalid names, directories or patterns are rejected with a ConfigError.
func New(cfg *Config, opts ...Option) (*Logger, error) {
	l := &Logger{
		registry: DefaultRegistry(),
		now:      time.Now,
		callSite: defaultCallSite,
		console:  os.Stdout,
		line:     newSerializer(),
	}
	for _, opt := range opts {
		opt(l)
	}

	merged := mergeConfig(cfg)
	if err := l.apply(merged); err != nil {
		if l.diagCloser != nil {
			l.diagCloser.Close()
		}
		return nil, err
	}
	return l, nil
}

// apply validates cfg and initializes the logger state from it.
func (l *Logger) apply(cfg *Config) error {
	if err := checkName("New", cfg.Name); err != nil {
		return err
	}
	if err := checkDirectory("New", cfg.Directory); err != nil {
		return err
	}
	if err := checkPattern("New", cfg.DatePattern); err != nil {
		return err
	}
	if err := checkPattern("New", cfg.TimePattern); err != nil {
		return err
	}
	if err := checkBucketPattern("New", cfg.BucketPattern); err != nil {
		return err
	}

	l.name = cfg.Name
	l.directory = cfg.Directory
	l.extension = normalizeExtension(cfg.Extension)
	l.datePattern = cfg.DatePattern
	l.timePattern = cfg.TimePattern
	l.bucketPattern = cfg.BucketPattern
	if cfg.MaxSizeMB > 0 {
		l.maxSize = cfg.MaxSizeMB * bytesPerMB
	}
	l.retentionDays = abs(cfg.RetentionDays)
	l.storeByDate = cfg.StoreByDate
	l.utc = cfg.UTC

	l.level = l.registry.Select(cfg.Level)
	l.consoleLevel = l.registry.Select(cfg.ConsoleLevel)
	l.lastLevel = l.registry.Default()

	l.buffering = cfg.Buffering
	l.consoleEcho = cfg.Console
	l.disabled = cfg.Disabled

	l.includeCaller = !cfg.DisableCaller
	l.includeDate = !cfg.DisableDateStamp
	l.includeTime = !cfg.DisableTimeStamp
	l.shortLabels = cfg.ShortLabels
	l.exceptionStacks = cfg.ExceptionStacks
	l.maxCallerWidth = abs(cfg.MaxCallerWidth)
	l.exceptionIndent = abs(cfg.ExceptionIndent)
	l.echoIndent = abs(cfg.EchoIndent)
	l.bannerChar = cfg.BannerChar
	l.bannerWidth = abs(cfg.BannerWidth)

	l.colorize = isTerminal(l.console)
	if l.diag == nil {
		diag, closer, err := newDiagnostics(cfg)
		if err != nil {
			return err
		}
		l.diag, l.diagCloser = diag, closer
	}

	l.cache = newMessageCache(cfg.CacheCapacity)
	l.cursor = fileCursor{index: 1, day: dayOf(l.clock())}

	if l.disabled {
		return nil
	}

	l.resolvePath()
	if l.retentionDays > 0 {
		l.sweep()
	}
	return nil
}

// Close flushes and releases the diagnostics sink. Pending buffered entries stay in
// memory; turn buffering off first to persist them.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_ = l.diag.Sync()
	if l.diagCloser != nil {
		err := l.diagCloser.Close()
		l.diagCloser = nil
		return err
	}
	return nil
}

// clock returns the current time in the configured zone.
func (l *Logger) clock() time.Time {
	t := l.now()
	if l.utc {
		return t.UTC()
	}
	return t.Local()
}

// location returns the configured zone.
func (l *Logger) location() *time.Location {
	if l.utc {
		return time.UTC
	}
	return time.Local
}

// dayOf truncates t to midnight in its own location.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
