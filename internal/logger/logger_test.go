package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture redirects l to a buffer and returns a func decoding the single
// JSON line written so far.
func capture(t *testing.T, l *Logger) func() map[string]any {
	t.Helper()

	buf := &bytes.Buffer{}
	l.Logger = l.Output(buf)

	return func() map[string]any {
		t.Helper()
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log line: %q", buf.String())
		return entry
	}
}

func TestNewLogger_Fields(t *testing.T) {
	l := NewLogger("web")
	require.NotNil(t, l)
	line := capture(t, l)

	l.Info().Msg("started")

	entry := line()
	assert.Equal(t, "web", entry["role"])
	assert.Equal(t, "started", entry["message"])
	assert.Contains(t, entry, zerolog.TimestampFieldName)
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewConsoleLogger(t *testing.T) {
	l := NewConsoleLogger("devserver")
	require.NotNil(t, l)

	buf := &bytes.Buffer{}
	l.Logger = l.Output(zerolog.ConsoleWriter{Out: buf, NoColor: true})
	l.Info().Str("addr", ":5174").Msg("listening")

	out := buf.String()
	assert.Contains(t, out, "listening")
	assert.Contains(t, out, "addr=:5174")
	assert.Contains(t, out, "role=devserver")
}

func TestSetLevel(t *testing.T) {
	l := NewLogger("level")
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		level   string
		want    zerolog.Level
		wantErr bool
	}{
		{level: "warn", want: zerolog.WarnLevel},
		{level: "error", want: zerolog.ErrorLevel},
		{level: "chatty", want: zerolog.ErrorLevel, wantErr: true},
		{level: "debug", want: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			err := l.SetLevel(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestSetLevel_FiltersEntries(t *testing.T) {
	l := NewLogger("filter")
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	buf := &bytes.Buffer{}
	l.Logger = l.Output(buf)
	require.NoError(t, l.SetLevel("warn"))

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	buf := &bytes.Buffer{}
	l.Logger = l.Output(buf)
	l.Error().Msg("discarded")

	assert.Empty(t, buf.String())
}

func TestChildLoggers(t *testing.T) {
	parent := NewLogger("web")

	t.Run("child keeps parent fields", func(t *testing.T) {
		line := capture(t, parent)
		child := parent.GetChildLogger()
		assert.NotSame(t, parent, child)

		child.Info().Msg("child")
		assert.Equal(t, "web", line()["role"])
	})

	t.Run("component tag", func(t *testing.T) {
		line := capture(t, parent)
		parent.WithComponent("api").Info().Msg("tagged")

		entry := line()
		assert.Equal(t, "api", entry["component"])
		assert.Equal(t, "web", entry["role"])
	})

	t.Run("parent is not tagged", func(t *testing.T) {
		line := capture(t, parent)
		_ = parent.WithComponent("proxy")
		parent.Info().Msg("untagged")

		assert.NotContains(t, line(), "component")
	})
}

func TestFromContext(t *testing.T) {
	t.Run("attached logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		zl := zerolog.New(buf).With().Str("trace_id", "abc").Logger()

		l := FromContext(zl.WithContext(context.Background()))
		l.Info().Msg("scoped")

		assert.Contains(t, buf.String(), `"trace_id":"abc"`)
	})

	t.Run("nothing attached", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})
}

func TestFromRequest(t *testing.T) {
	buf := &bytes.Buffer{}
	zl := zerolog.New(buf).With().Str("trace_id", "req-1").Logger()

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	assert.NotNil(t, FromRequest(req))

	req = req.WithContext(zl.WithContext(req.Context()))
	FromRequest(req).Info().Msg("handled")

	assert.Contains(t, buf.String(), `"trace_id":"req-1"`)
}
