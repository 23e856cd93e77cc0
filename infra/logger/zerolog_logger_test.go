package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLoggerMethods(t *testing.T) {
	assert.NoError(t, os.Setenv("APP_ENV", "dev"))
	defer func() { assert.NoError(t, os.Unsetenv("APP_ENV")) }()
	l := NewZerologLogger("test")
	if l == nil {
		t.Fatalf("nil logger")
	}
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Warnf("warn")
	l.Errorf("error")
}

func TestZerologLoggerWithAddsField(t *testing.T) {
	SetLevel("debug")
	defer SetLevel("info")
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "dispatch").With("run_id", "r1")
	l.Debugw("placed", map[string]any{"order_id": "a"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dispatch", entry["component"])
	assert.Equal(t, "r1", entry["run_id"])
	assert.Equal(t, "a", entry["order_id"])
	assert.Equal(t, "placed", entry["message"])
}

func TestSetLevel(t *testing.T) {
	defer SetLevel("info")
	SetLevel("warn")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	SetLevel("bogus")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestNopLoggerWith(t *testing.T) {
	var l Logger = NopLogger{}
	assert.NotNil(t, l.With("k", "v"))
}
