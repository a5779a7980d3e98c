package logs

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type contextKey string

// ContextKeyTraceID is the key under which the trace ID of an
// operation is kept in a context
const ContextKeyTraceID contextKey = "trace_id"

// GetTraceID returns the trace ID kept in the context, or
// 0 if there is none
func GetTraceID(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}

	id, _ := ctx.Value(ContextKeyTraceID).(int64)
	return id
}

// WithTraceID returns a copy of ctx that carries the trace ID
func WithTraceID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, ContextKeyTraceID, id)
}

// Fields collects the key value pairs attached to a log entry
type Fields interface {
	Add(key string, value interface{})
}

// Loggable is implemented by types that know how to describe
// themselves in a log entry
type Loggable interface {
	Log(fields Fields)
}

// MapFields is a Loggable made of a plain map
type MapFields map[string]interface{}

// Add implementation of Fields for MapFields
func (f MapFields) Add(key string, value interface{}) {
	f[key] = value
}

// Log implementation of Loggable for MapFields
func (f MapFields) Log(fields Fields) {
	for k, v := range f {
		fields.Add(k, v)
	}
}

// Logger is a leveled structured logger
type Logger interface {
	Debug(ctx context.Context, msg string, loggables ...Loggable)
	Info(ctx context.Context, msg string, loggables ...Loggable)
	Warn(ctx context.Context, msg string, loggables ...Loggable)
	Error(ctx context.Context, msg string, loggables ...Loggable)

	// ForClass returns a logger that tags every entry with the
	// layer and class that produced it
	ForClass(layer, class string) Logger
}

// LogrusLoggerProperties are the properties used to build
// a logrus backed Logger
type LogrusLoggerProperties struct {
	// Level is the lowest level that is written
	Level logrus.Level

	// Output is where entries are written. It defaults to stderr
	Output io.Writer
}

type logrusLogger struct {
	entry *logrus.Entry
}

// NewLogrus creates a Logger that writes JSON entries with logrus
func NewLogrus(props LogrusLoggerProperties) Logger {
	output := props.Output
	if output == nil {
		output = os.Stderr
	}

	logger := logrus.New()
	logger.SetLevel(props.Level)
	logger.SetOutput(output)
	logger.SetFormatter(&logrus.JSONFormatter{})

	return &logrusLogger{entry: logrus.NewEntry(logger)}
}

func (l *logrusLogger) ForClass(layer, class string) Logger {
	return &logrusLogger{entry: l.entry.WithFields(logrus.Fields{
		"layer": layer,
		"class": class,
	})}
}

func (l *logrusLogger) Debug(ctx context.Context, msg string, loggables ...Loggable) {
	l.log(ctx, logrus.DebugLevel, msg, loggables)
}

func (l *logrusLogger) Info(ctx context.Context, msg string, loggables ...Loggable) {
	l.log(ctx, logrus.InfoLevel, msg, loggables)
}

func (l *logrusLogger) Warn(ctx context.Context, msg string, loggables ...Loggable) {
	l.log(ctx, logrus.WarnLevel, msg, loggables)
}

func (l *logrusLogger) Error(ctx context.Context, msg string, loggables ...Loggable) {
	l.log(ctx, logrus.ErrorLevel, msg, loggables)
}

func (l *logrusLogger) log(ctx context.Context, level logrus.Level, msg string, loggables []Loggable) {
	if !l.entry.Logger.IsLevelEnabled(level) {
		return
	}

	fields := MapFields{}
	if id := GetTraceID(ctx); id != 0 {
		fields.Add(string(ContextKeyTraceID), id)
	}
	for _, loggable := range loggables {
		loggable.Log(fields)
	}

	l.entry.WithFields(logrus.Fields(fields)).Log(level, msg)
}
