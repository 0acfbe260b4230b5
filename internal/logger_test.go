package internal

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLeveledLogrusFields(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.Out = &buf
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})

	leveled := NewLeveledLogrus(l)
	leveled.Warn("retrying request", "url", "http://localhost/qa", "attempt", 2, "dangling")

	out := buf.String()
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, `msg="retrying request"`)
	assert.Contains(t, out, "url=\"http://localhost/qa\"")
	assert.Contains(t, out, "attempt=2")
	assert.NotContains(t, out, "dangling")
}

func TestGetLoggerSingleton(t *testing.T) {
	assert.Same(t, GetLogger(), GetLogger())

	SetLogLevel(logrus.DebugLevel)
	assert.Equal(t, logrus.DebugLevel, GetLogger().GetLevel())
	SetLogLevel(logrus.WarnLevel)
}

func TestSetLogFormat(t *testing.T) {
	t.Cleanup(func() { SetLogFormat(LogFormatText) })

	SetLogFormat("JSON")
	assert.IsType(t, &logrus.JSONFormatter{}, GetLogger().Formatter)

	SetLogFormat("logfmt")
	assert.IsType(t, &logrus.TextFormatter{}, GetLogger().Formatter)
}
