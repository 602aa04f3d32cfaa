// Package log provides structured logging for ztensor.
//
// Library code logs through the Logger interface with alternating key/value
// pairs; the default provider writes JSON through zerolog:
//
//	import "github.com/ezoic/ztensor/pkg/log"
//
//	logger := log.GetLoggerWithName("dense")
//	logger.Debug("Materialization started", log.OperationKey, log.OperationMaterialize)
//
// Programs pick the level once at startup with SetupLogger.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Level is a logging level.
type Level int8

// Supported levels, lowest first.
const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	Disabled
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "disabled"
	}
}

// ToLogLevel parses a level name. Unknown names map to InfoLevel.
func ToLogLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "disabled", "off", "none":
		return Disabled
	default:
		return InfoLevel
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

// Logger is the structured logger used across the library.
// Arguments after msg are alternating keys and values.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	// With returns a logger that adds keysAndValues to every entry.
	With(keysAndValues ...any) Logger
	// Enabled reports whether entries at level are written.
	Enabled(level Level) bool
}

// LoggerProvider creates loggers.
type LoggerProvider interface {
	GetLogger() Logger
	GetLoggerWithName(name string) Logger
	SetLevel(level Level)
}

// Field keys.
const (
	ComponentKey  = "component"
	OperationKey  = "operation"
	PhaseKey      = "phase"
	DurationMsKey = "duration_ms"
	ErrorKey      = "error"
	DimsKey       = "dims"
	ShapeKey      = "shape"
	ElementsKey   = "elements"
	WorkersKey    = "workers"
	PathKey       = "path"
)

// Operation values for OperationKey.
const (
	OperationMaterialize = "materialize"
	OperationConvert     = "convert"
	OperationRender      = "render"
)

// Phase values for PhaseKey.
const (
	PhaseValidation = "validation"
	PhaseEvaluation = "evaluation"
	PhaseOutput     = "output"
)

// zerologProvider is the default LoggerProvider.
type zerologProvider struct {
	mu   sync.RWMutex
	base zerolog.Logger
}

// NewZerologProvider returns a provider writing JSON to stderr.
func NewZerologProvider(level Level) LoggerProvider {
	return NewZerologProviderWithWriter(os.Stderr, level)
}

// NewZerologProviderWithWriter returns a provider writing JSON to w.
func NewZerologProviderWithWriter(w io.Writer, level Level) LoggerProvider {
	return &zerologProvider{
		base: zerolog.New(w).With().Timestamp().Logger().Level(level.zerolog()),
	}
}

func (p *zerologProvider) GetLogger() Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &zerologLogger{zl: p.base}
}

func (p *zerologProvider) GetLoggerWithName(name string) Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &zerologLogger{zl: p.base.With().Str("logger", name).Logger()}
}

func (p *zerologProvider) SetLevel(level Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.base = p.base.Level(level.zerolog())
}

type zerologLogger struct {
	zl zerolog.Logger
}

func (l *zerologLogger) Debug(msg string, keysAndValues ...any) {
	l.zl.Debug().Fields(normalize(keysAndValues)).Msg(msg)
}

func (l *zerologLogger) Info(msg string, keysAndValues ...any) {
	l.zl.Info().Fields(normalize(keysAndValues)).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, keysAndValues ...any) {
	l.zl.Warn().Fields(normalize(keysAndValues)).Msg(msg)
}

func (l *zerologLogger) Error(msg string, keysAndValues ...any) {
	l.zl.Error().Fields(normalize(keysAndValues)).Msg(msg)
}

func (l *zerologLogger) With(keysAndValues ...any) Logger {
	return &zerologLogger{zl: l.zl.With().Fields(normalize(keysAndValues)).Logger()}
}

func (l *zerologLogger) Enabled(level Level) bool {
	return level.zerolog() >= l.zl.GetLevel() && level != Disabled
}

// normalize turns keysAndValues into a field map. A trailing key without a
// value is kept under "!BADKEY"; non-string keys are formatted with %v.
func normalize(keysAndValues []any) map[string]any {
	fields := make(map[string]any, len(keysAndValues)/2+1)
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 == len(keysAndValues) {
			fields["!BADKEY"] = keysAndValues[i]
			break
		}
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		if err, isErr := keysAndValues[i+1].(error); isErr {
			fields[key] = err.Error()
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}

var (
	globalMu       sync.RWMutex
	globalProvider LoggerProvider = NewZerologProvider(InfoLevel)
)

// SetLoggerProvider replaces the global provider.
func SetLoggerProvider(p LoggerProvider) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalProvider = p
}

func provider() LoggerProvider {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalProvider
}

// SetupLogger sets the global level from its name ("debug", "info", ...).
func SetupLogger(level string) {
	provider().SetLevel(ToLogLevel(level))
}

// GetLogger returns a logger from the global provider.
func GetLogger() Logger {
	return provider().GetLogger()
}

// GetLoggerWithName returns a named logger from the global provider.
func GetLoggerWithName(name string) Logger {
	return provider().GetLoggerWithName(name)
}

// LogError logs err at error level with its detailed (%+v) form.
func LogError(err error, msg string, keysAndValues ...any) {
	if err == nil {
		return
	}
	kv := append([]any{ErrorKey, err.Error(), "detail", fmt.Sprintf("%+v", err)}, keysAndValues...)
	GetLogger().Error(msg, kv...)
}
