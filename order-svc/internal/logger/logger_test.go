package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "order-svc", "info")

	log.Debug("dropped")
	log.Info("order placed", "order_id", 7)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "order placed", record["msg"])
	assert.Equal(t, "order-svc", record["service"])
	assert.Contains(t, record, "hostname")
	assert.EqualValues(t, 7, record["order_id"])
}

func TestErr(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "order-svc", "error")

	log.Error("rollback failed", Err(errors.New("conn closed")))

	var record struct {
		Error struct {
			Msg   string `json:"msg"`
			Stack string `json:"stack"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "conn closed", record.Error.Msg)
	assert.NotEmpty(t, record.Error.Stack)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}
