package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-calendar/internal/config"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&config.ConfigLogger{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)

	log.WithField("note_id", "n1").Debug("note changed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "note changed", entry["msg"])
	assert.Equal(t, "n1", entry["note_id"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNew_RejectsUnknownSettings(t *testing.T) {
	_, err := New(&config.ConfigLogger{Level: "loud"}, nil)
	assert.Error(t, err)

	_, err = New(&config.ConfigLogger{Level: "info", Format: "xml"}, nil)
	assert.Error(t, err)
}

func TestSetLevel(t *testing.T) {
	log := logrus.New()

	require.NoError(t, SetLevel(log, "warn"))
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	require.NoError(t, SetLevel(log, ""))
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	assert.Error(t, SetLevel(log, "nope"))
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
