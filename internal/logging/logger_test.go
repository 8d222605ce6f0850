package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewDisabled(t *testing.T) {
	for _, level := range []string{"", "off", "OFF", "loud"} {
		var buf bytes.Buffer
		log := New(level, &buf)
		log.Error("should not appear")
		assert.Empty(t, buf.String(), level)
	}
}

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)
	log.Info("hidden")
	log.Warn("shown", zap.String("query", "remote"))
	_ = log.Sync()

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "remote")
}

func TestNewDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(" DEBUG ", &buf)
	log.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}
