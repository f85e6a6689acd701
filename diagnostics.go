package filelog

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newDiagnostics builds the logger for the engine's own failures (directory creation,
// file writes, discarded buffer entries). It writes to stderr, or to a size-rotated
// file when cfg.DiagnosticsFile is set. The returned closer is nil for stderr.
func newDiagnostics(cfg *Config) (*zap.Logger, io.Closer, error) {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	var (
		sink   zapcore.WriteSyncer
		closer io.Closer
	)
	if cfg.DiagnosticsFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.DiagnosticsFile), 0755); err != nil {
			return nil, nil, errors.Wrap(err, "failed to create diagnostics directory")
		}
		rotator := &lumberjack.Logger{
			Filename:   cfg.DiagnosticsFile,
			MaxSize:    cfg.DiagnosticsMaxSizeMB,
			MaxBackups: 3,
			LocalTime:  !cfg.UTC,
		}
		sink = zapcore.AddSync(rotator)
		closer = rotator
	} else {
		sink = zapcore.Lock(os.Stderr)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), sink, zapcore.WarnLevel)
	return zap.New(core).Named("filelog").With(zap.String("log", cfg.Name)), closer, nil
}
