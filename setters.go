package filelog

import "strings"

// Runtime setters. Each one takes the logger lock, validates its argument and leaves
// the previous value in place when the argument is rejected. Setters that change where
// files live resolve the active path again before returning.

// SetName changes the base name of log files.
func (l *Logger) SetName(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := checkName("SetName", name); err != nil {
		return err
	}
	l.name = name
	l.relocate()
	return nil
}

// SetDirectory changes the log directory.
func (l *Logger) SetDirectory(dir string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := checkDirectory("SetDirectory", dir); err != nil {
		return err
	}
	l.directory = dir
	l.relocate()
	return nil
}

// SetExtension changes the log file extension. "." is prefixed when missing and an
// empty extension selects ".log".
func (l *Logger) SetExtension(ext string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ext = strings.TrimSpace(ext)
	if ext == "" {
		ext = DefaultExtension
	}
	if strings.ContainsAny(ext, reservedNameChars) || hasControl(ext) {
		return newConfigError("SetExtension", ext, ErrInvalidPathCharacters)
	}
	l.extension = normalizeExtension(ext)
	l.relocate()
	return nil
}

// SetDatePattern changes the Go layout of entry date stamps.
func (l *Logger) SetDatePattern(layout string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := checkPattern("SetDatePattern", layout); err != nil {
		return err
	}
	l.datePattern = layout
	return nil
}

// SetTimePattern changes the Go layout of entry time stamps.
func (l *Logger) SetTimePattern(layout string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := checkPattern("SetTimePattern", layout); err != nil {
		return err
	}
	l.timePattern = layout
	return nil
}

// SetBucketPattern changes the Go layout of date-bucket directory names.
func (l *Logger) SetBucketPattern(layout string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := checkBucketPattern("SetBucketPattern", layout); err != nil {
		return err
	}
	l.bucketPattern = layout
	if l.storeByDate {
		l.relocate()
	}
	return nil
}

// SetMaxSizeMB sets the rotation threshold in megabytes. Zero or less disables rotation.
func (l *Logger) SetMaxSizeMB(mb int64) {
	l.SetMaxSize(mb * bytesPerMB)
}

// SetMaxSize sets the rotation threshold in bytes. Zero or less disables rotation.
func (l *Logger) SetMaxSize(bytes int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if bytes < 0 {
		bytes = 0
	}
	l.maxSize = bytes
}

// SetRetentionDays sets how many days of logs are kept and sweeps at once when days
// is positive. Zero keeps everything.
func (l *Logger) SetRetentionDays(days int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.setRetention(days)
	if l.retentionDays > 0 && !l.disabled {
		l.sweep()
	}
}

// SetLevel sets the write threshold. None disables output; nil selects the registry default.
func (l *Logger) SetLevel(level *Level) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level == nil {
		level = l.registry.Default()
	}
	l.level = level
}

// SetLevelName sets the write threshold by name or short name. Unknown names select
// the registry default.
func (l *Logger) SetLevelName(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = l.registry.Select(name)
}

// SetBuffering switches between holding entries in memory and writing them to disk.
// Turning buffering off writes every held entry, oldest first, before returning.
func (l *Logger) SetBuffering(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.setBuffering(on)
}

// SetConsole enables or disables the console mirror.
func (l *Logger) SetConsole(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.consoleEcho = on
}

// SetConsoleLevel sets the console mirror threshold; nil selects the registry default.
func (l *Logger) SetConsoleLevel(level *Level) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level == nil {
		level = l.registry.Default()
	}
	l.consoleLevel = level
}

// SetIncludeCaller toggles the caller type name in the caller segment.
func (l *Logger) SetIncludeCaller(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.includeCaller = on
}

// SetIncludeDateStamp toggles the date stamp.
func (l *Logger) SetIncludeDateStamp(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.includeDate = on
}

// SetIncludeTimeStamp toggles the time stamp.
func (l *Logger) SetIncludeTimeStamp(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.includeTime = on
}

// SetUTC switches between UTC and local time. The current day is recomputed in the
// new zone and the path is resolved again.
func (l *Logger) SetUTC(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.utc == on {
		return
	}
	l.utc = on
	l.cursor.day = dayOf(l.clock())
	if l.retentionDays > 0 {
		l.cursor.cutoff = l.clock().AddDate(0, 0, -l.retentionDays)
	}
	l.relocate()
}

// SetStoreByDate toggles per-day subdirectories.
func (l *Logger) SetStoreByDate(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.storeByDate == on {
		return
	}
	l.storeByDate = on
	l.relocate()
}

// SetShortLabels toggles short level names in labels.
func (l *Logger) SetShortLabels(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.shortLabels = on
}

// SetMaxCallerWidth sets the truncation width of the caller segment.
func (l *Logger) SetMaxCallerWidth(width int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.maxCallerWidth = abs(width)
}

// SetExceptionIndent sets the spaces added per inner error depth.
func (l *Logger) SetExceptionIndent(width int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.exceptionIndent = abs(width)
}

// SetEchoIndent sets the spaces before indented echo and table lines.
func (l *Logger) SetEchoIndent(width int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.echoIndent = abs(width)
}

// SetBanner sets the banner border character and width. An empty char or a
// non-positive width keeps the default.
func (l *Logger) SetBanner(char string, width int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.bannerChar = getConfigValue(DefaultBannerChar, char)
	if width <= 0 {
		width = DefaultBannerWidth
	}
	l.bannerWidth = width
}

// relocate restarts the rotation index and resolves the active path again.
func (l *Logger) relocate() {
	if l.disabled {
		return
	}
	l.cursor.index = 1
	l.resolvePath()
}

// Path returns the absolute path of the file the next entry is written to.
func (l *Logger) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.cursor.path
}

// Level returns the write threshold.
func (l *Logger) Level() *Level {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.level
}

// LevelName returns the name, or the short name, of the write threshold.
func (l *Logger) LevelName(short bool) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if short {
		return l.level.ShortName
	}
	return l.level.Name
}

// Buffering reports whether entries are held in memory.
func (l *Logger) Buffering() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.buffering
}

// Config returns a snapshot of the current settings. The snapshot is a Config, so it
// carries that type's limits: byte sizes set through SetMaxSize are rounded up to whole
// MB, and zero widths or indents read back as defaults when the snapshot is passed to New.
func (l *Logger) Config() *Config {
	l.mu.Lock()
	defer l.mu.Unlock()

	maxSizeMB := int64(-1)
	if l.maxSize > 0 {
		maxSizeMB = (l.maxSize + bytesPerMB - 1) / bytesPerMB
	}

	return &Config{
		Name:             l.name,
		Directory:        l.directory,
		Extension:        l.extension,
		DatePattern:      l.datePattern,
		TimePattern:      l.timePattern,
		BucketPattern:    l.bucketPattern,
		MaxSizeMB:        maxSizeMB,
		RetentionDays:    l.retentionDays,
		StoreByDate:      l.storeByDate,
		UTC:              l.utc,
		Level:            l.level.Name,
		ConsoleLevel:     l.consoleLevel.Name,
		Console:          l.consoleEcho,
		Buffering:        l.buffering,
		CacheCapacity:    l.cache.capacity(),
		DisableCaller:    !l.includeCaller,
		DisableDateStamp: !l.includeDate,
		DisableTimeStamp: !l.includeTime,
		ShortLabels:      l.shortLabels,
		ExceptionStacks:  l.exceptionStacks,
		MaxCallerWidth:   l.maxCallerWidth,
		ExceptionIndent:  l.exceptionIndent,
		EchoIndent:       l.echoIndent,
		BannerChar:       l.bannerChar,
		BannerWidth:      l.bannerWidth,
		Disabled:         l.disabled,
	}
}
