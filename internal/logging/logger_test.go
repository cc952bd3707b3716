package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, WARN)

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.Error("shown %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN  logger_test.go")
	assert.Contains(t, out, "shown 3")
	assert.Contains(t, out, "ERROR logger_test.go")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, ERROR)
	l.SetLevel(DEBUG)

	l.Debug("riffle %d of %d", 1, 7)

	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "riffle 1 of 7")
}

func TestFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, INFO)
	l.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }

	l.Info("built pile")

	assert.Regexp(t, `^\[2024-03-01 12:30:00\.000\] INFO  logger_test\.go:\d+: built pile\n$`, buf.String())
}
