// Package log provides a prefixed, coloured, levelled logger backed by logrus.
//
// Lines look like:
//
//	[MAZE] [INFO] maze generated run_id=... width=10
package log

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyPrefix = errors.New("logger prefix must not be empty")
	ErrNilWriter   = errors.New("logger writer must not be nil")
)

// Logger writes levelled messages tagged with a fixed prefix.
type Logger struct {
	entry *logrus.Entry
}

// Option configures a Logger.
type Option func(*options) error

type options struct {
	level     logrus.Level
	timestamp bool
}

// WithLevel sets the minimum level written, e.g. "debug" or "warning".
func WithLevel(level string) Option {
	return func(o *options) error {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}
		o.level = lvl
		return nil
	}
}

// WithTimestamp prefixes every line with an RFC 3339 timestamp.
func WithTimestamp(enabled bool) Option {
	return func(o *options) error {
		o.timestamp = enabled
		return nil
	}
}

// New creates a logger that writes to w, tagging lines with prefix in color.
func New(prefix, color string, w io.Writer, opts ...Option) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if w == nil {
		return nil, ErrNilWriter
	}

	o := &options{level: logrus.InfoLevel}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("configuring logger %s: %w", prefix, err)
		}
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(o.level)
	l.SetFormatter(&formatter{prefix: prefix, color: color, timestamp: o.timestamp})

	return &Logger{entry: logrus.NewEntry(l)}, nil
}

// WithField returns a logger that appends key=value to every line.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// WithFields returns a logger that appends every key=value pair to every line.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{entry: l.entry.WithFields(fields)}
}

func (l *Logger) Debug(msg string)   { l.entry.Debug(msg) }
func (l *Logger) Info(msg string)    { l.entry.Info(msg) }
func (l *Logger) Warning(msg string) { l.entry.Warning(msg) }
func (l *Logger) Error(msg string)   { l.entry.Error(msg) }

type formatter struct {
	prefix    string
	color     string
	timestamp bool
}

func (f *formatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	if f.timestamp {
		b.WriteString(e.Time.Format(time.RFC3339))
		b.WriteByte(' ')
	}

	if f.color != "" {
		fmt.Fprintf(&b, "%s[%s]%s ", f.color, f.prefix, config.ColorReset)
	} else {
		fmt.Fprintf(&b, "[%s] ", f.prefix)
	}

	level := strings.ToUpper(e.Level.String())
	if c := levelColor(e.Level); c != "" && f.color != "" {
		fmt.Fprintf(&b, "%s[%s]%s ", c, level, config.LogColorReset)
	} else {
		fmt.Fprintf(&b, "[%s] ", level)
	}
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelColor(level logrus.Level) string {
	switch level {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return config.LogErrorColor
	case logrus.WarnLevel:
		return config.LogWarningColor
	case logrus.InfoLevel:
		return config.LogInfoColor
	}
	return ""
}
