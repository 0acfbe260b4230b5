package internal

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

var (
	once   sync.Once
	logger *logrus.Logger
)

// GetLogger returns the process-wide csmentor logger. Level and format start
// at warn/text and are adjusted once config is loaded.
func GetLogger() *logrus.Logger {
	once.Do(func() {
		logger = logrus.New()
		logger.Out = os.Stdout
		logger.SetLevel(logrus.WarnLevel)
		logger.SetFormatter(newFormatter(LogFormatText))
	})

	return logger
}

func SetLogLevel(level logrus.Level) {
	GetLogger().SetLevel(level)
}

// SetLogFormat switches between text and JSON output. Unknown formats fall back to text.
func SetLogFormat(format string) {
	GetLogger().SetFormatter(newFormatter(format))
}

func newFormatter(format string) logrus.Formatter {
	if strings.EqualFold(format, LogFormatJSON) {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{
		FullTimestamp: true,
		PadLevelText:  true,
	}
}

// LeveledLogger is the key/value logging interface retryablehttp expects.
type LeveledLogger interface {
	Error(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

var _ LeveledLogger = &LeveledLogrus{}

// LeveledLogrus adapts a logrus.Logger to LeveledLogger so QA server retries
// show up in the service log with their url and attempt fields.
type LeveledLogrus struct {
	*logrus.Logger
}

func NewLeveledLogrus(l *logrus.Logger) *LeveledLogrus {
	return &LeveledLogrus{l}
}

// fields pairs up keysAndValues. A trailing key without a value is dropped.
func (l *LeveledLogrus) fields(keysAndValues ...interface{}) logrus.Fields {
	fields := make(logrus.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}

func (l *LeveledLogrus) Error(msg string, keysAndValues ...interface{}) {
	l.WithFields(l.fields(keysAndValues...)).Error(msg)
}

func (l *LeveledLogrus) Info(msg string, keysAndValues ...interface{}) {
	l.WithFields(l.fields(keysAndValues...)).Info(msg)
}

func (l *LeveledLogrus) Debug(msg string, keysAndValues ...interface{}) {
	l.WithFields(l.fields(keysAndValues...)).Debug(msg)
}

func (l *LeveledLogrus) Warn(msg string, keysAndValues ...interface{}) {
	l.WithFields(l.fields(keysAndValues...)).Warn(msg)
}
