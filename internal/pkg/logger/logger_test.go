package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogger_ErrorIncludesContextFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: ParseLevel("debug"), Output: buf})

	ctx := log.WithOrderID(context.Background(), "order-123")
	ctx = log.WithUserID(ctx, "user-7")

	log.Error(ctx, "line items write failed", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, `"order_id":"order-123"`)
	assert.Contains(t, out, `"user_id":"user-7"`)
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, `"service":"test"`)
}

func TestLogger_WithFieldsDoesNotLeakIntoParentContext(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Output: buf})

	parent := context.Background()
	_ = log.WithFields(parent, map[string]any{"job": "orphan_sweep"})

	log.Info(parent, "plain")

	assert.NotContains(t, buf.String(), "orphan_sweep")
}

func TestLogger_LevelFiltersDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: zerolog.InfoLevel, Output: buf})

	log.Debug(context.Background(), "hidden")

	assert.Empty(t, buf.String())
}

func TestParseLevel_Defaults(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("invalid"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
}
