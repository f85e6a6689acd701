package filelog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Defaults applied to zero-valued Config fields.
const (
	DefaultExtension       = ".log"
	DefaultDatePattern     = "01/02/2006"
	DefaultTimePattern     = "15:04:05.000"
	DefaultBucketPattern   = "02-Jan-2006"
	DefaultMaxSizeMB       = 5
	DefaultCacheCapacity   = 500
	DefaultMaxCallerWidth  = 20
	DefaultExceptionIndent = 3
	DefaultEchoIndent      = 10
	DefaultBannerChar      = "="
	DefaultBannerWidth     = 50
	DefaultDiagnosticsMB   = 10

	bytesPerMB = 1024 * 1024
)

// Config defines the logger configuration parameters.
// All fields can be configured via JSON, TOML or YAML files. A zero value selects the default.
type Config struct {
	Name          string `json:"name" toml:"name" yaml:"name"`                               // Base name for log files, defaults to the process name
	Directory     string `json:"directory" toml:"directory" yaml:"directory"`                // Directory to store log files, defaults to ./logs beside the executable
	Extension     string `json:"extension" toml:"extension" yaml:"extension"`                // Log file extension, "." is prefixed when missing
	DatePattern   string `json:"date_pattern" toml:"date_pattern" yaml:"date_pattern"`       // Go layout for entry date stamps
	TimePattern   string `json:"time_pattern" toml:"time_pattern" yaml:"time_pattern"`       // Go layout for entry time stamps
	BucketPattern string `json:"bucket_pattern" toml:"bucket_pattern" yaml:"bucket_pattern"` // Go layout for date-bucket directory names
	MaxSizeMB     int64  `json:"max_size_mb" toml:"max_size_mb" yaml:"max_size_mb"`          // Rotation threshold in MB, -1 for unlimited
	RetentionDays int    `json:"retention_days" toml:"retention_days" yaml:"retention_days"` // Days of logs to keep, 0 keeps everything
	StoreByDate   bool   `json:"store_by_date" toml:"store_by_date" yaml:"store_by_date"`    // Store files in per-day subdirectories
	UTC           bool   `json:"utc" toml:"utc" yaml:"utc"`                                  // Use UTC instead of local time

	Level         string `json:"level" toml:"level" yaml:"level"`                            // Threshold level name or short name
	ConsoleLevel  string `json:"console_level" toml:"console_level" yaml:"console_level"`    // Console mirror threshold
	Console       bool   `json:"console" toml:"console" yaml:"console"`                      // Mirror entries to the console
	Buffering     bool   `json:"buffering" toml:"buffering" yaml:"buffering"`                // Start with entries held in memory
	CacheCapacity int    `json:"cache_capacity" toml:"cache_capacity" yaml:"cache_capacity"` // Entries kept while buffering, oldest dropped first

	DisableCaller    bool `json:"disable_caller" toml:"disable_caller" yaml:"disable_caller"`             // Omit the caller type name
	DisableDateStamp bool `json:"disable_date_stamp" toml:"disable_date_stamp" yaml:"disable_date_stamp"` // Omit date stamps
	DisableTimeStamp bool `json:"disable_time_stamp" toml:"disable_time_stamp" yaml:"disable_time_stamp"` // Omit time stamps
	ShortLabels      bool `json:"short_labels" toml:"short_labels" yaml:"short_labels"`                   // Use short level names in labels
	ExceptionStacks  bool `json:"exception_stacks" toml:"exception_stacks" yaml:"exception_stacks"`       // Append stack traces carried by errors
	MaxCallerWidth   int  `json:"max_caller_width" toml:"max_caller_width" yaml:"max_caller_width"`       // Truncation width of the caller segment
	ExceptionIndent  int  `json:"exception_indent" toml:"exception_indent" yaml:"exception_indent"`       // Spaces per inner error depth
	EchoIndent       int  `json:"echo_indent" toml:"echo_indent" yaml:"echo_indent"`                      // Spaces before indented echo lines

	BannerChar  string `json:"banner_char" toml:"banner_char" yaml:"banner_char"`    // Banner border character
	BannerWidth int    `json:"banner_width" toml:"banner_width" yaml:"banner_width"` // Banner border width

	Disabled bool `json:"disabled" toml:"disabled" yaml:"disabled"` // Create a logger that writes nothing

	DiagnosticsFile      string `json:"diagnostics_file" toml:"diagnostics_file" yaml:"diagnostics_file"`                // File for the logger's own failures, stderr when empty
	DiagnosticsMaxSizeMB int    `json:"diagnostics_max_size_mb" toml:"diagnostics_max_size_mb" yaml:"diagnostics_max_size_mb"` // Rotation size of the diagnostics file
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() *Config {
	return &Config{
		Name:                 processName(),
		Directory:            defaultDirectory(),
		Extension:            DefaultExtension,
		DatePattern:          DefaultDatePattern,
		TimePattern:          DefaultTimePattern,
		BucketPattern:        DefaultBucketPattern,
		MaxSizeMB:            DefaultMaxSizeMB,
		Level:                Info.Name,
		ConsoleLevel:         Info.Name,
		CacheCapacity:        DefaultCacheCapacity,
		MaxCallerWidth:       DefaultMaxCallerWidth,
		ExceptionIndent:      DefaultExceptionIndent,
		EchoIndent:           DefaultEchoIndent,
		BannerChar:           DefaultBannerChar,
		BannerWidth:          DefaultBannerWidth,
		DiagnosticsMaxSizeMB: DefaultDiagnosticsMB,
	}
}

// mergeConfig fills zero-valued fields of cfg with defaults. Booleans are taken as given.
func mergeConfig(cfg *Config) *Config {
	defaults := DefaultConfig()
	if cfg == nil {
		return defaults
	}
	return &Config{
		Name:          getConfigValue(defaults.Name, cfg.Name),
		Directory:     getConfigValue(defaults.Directory, cfg.Directory),
		Extension:     getConfigValue(defaults.Extension, cfg.Extension),
		DatePattern:   getConfigValue(defaults.DatePattern, cfg.DatePattern),
		TimePattern:   getConfigValue(defaults.TimePattern, cfg.TimePattern),
		BucketPattern: getConfigValue(defaults.BucketPattern, cfg.BucketPattern),
		MaxSizeMB:     getConfigValue(defaults.MaxSizeMB, cfg.MaxSizeMB),
		RetentionDays: cfg.RetentionDays,
		StoreByDate:   cfg.StoreByDate,
		UTC:           cfg.UTC,

		Level:         getConfigValue(defaults.Level, cfg.Level),
		ConsoleLevel:  getConfigValue(defaults.ConsoleLevel, cfg.ConsoleLevel),
		Console:       cfg.Console,
		Buffering:     cfg.Buffering,
		CacheCapacity: getConfigValue(defaults.CacheCapacity, cfg.CacheCapacity),

		DisableCaller:    cfg.DisableCaller,
		DisableDateStamp: cfg.DisableDateStamp,
		DisableTimeStamp: cfg.DisableTimeStamp,
		ShortLabels:      cfg.ShortLabels,
		ExceptionStacks:  cfg.ExceptionStacks,
		MaxCallerWidth:   getConfigValue(defaults.MaxCallerWidth, cfg.MaxCallerWidth),
		ExceptionIndent:  getConfigValue(defaults.ExceptionIndent, cfg.ExceptionIndent),
		EchoIndent:       getConfigValue(defaults.EchoIndent, cfg.EchoIndent),

		BannerChar:  getConfigValue(defaults.BannerChar, cfg.BannerChar),
		BannerWidth: getConfigValue(defaults.BannerWidth, cfg.BannerWidth),

		Disabled: cfg.Disabled,

		DiagnosticsFile:      cfg.DiagnosticsFile,
		DiagnosticsMaxSizeMB: getConfigValue(defaults.DiagnosticsMaxSizeMB, cfg.DiagnosticsMaxSizeMB),
	}
}

// getConfigValue returns defaultVal if cfgVal equals the zero value for type T,
// otherwise returns cfgVal.
func getConfigValue[T comparable](defaultVal, cfgVal T) T {
	var zero T
	if cfgVal == zero {
		return defaultVal
	}
	return cfgVal
}

// LoadConfig reads a configuration file. The format follows the extension:
// .toml, .yaml/.yml or .json. A missing file yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".json":
		err = json.Unmarshal(data, cfg)
	default:
		return nil, newConfigError("LoadConfig", path, ErrInvalidConfig)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return mergeConfig(cfg), nil
}

// Save writes the configuration to path in the format given by its extension.
func (c *Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		data, err = toml.Marshal(c)
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	case ".json":
		data, err = json.MarshalIndent(c, "", "  ")
	default:
		return newConfigError("Save", path, ErrInvalidConfig)
	}
	if err != nil {
		return errors.Wrap(err, "encode config")
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "failed to create config directory")
		}
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "write config")
}

// processName returns the executable base name without extension.
func processName() string {
	base := filepath.Base(os.Args[0])
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" || base == "." {
		return "log"
	}
	return base
}

// defaultDirectory returns the logs directory beside the executable, or under the
// working directory when the executable path is unavailable.
func defaultDirectory() string {
	if exe, err := os.Executable(); err == nil {
		return filepath.Join(filepath.Dir(exe), "logs")
	}
	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, "logs")
	}
	return "logs"
}
