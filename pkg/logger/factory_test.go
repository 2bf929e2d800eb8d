package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brform/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("defaults to JSON at info level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Debug("hidden")
		assert.Zero(t, buf.Len())

		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "brform")))
		log.Info("hello")
		assert.Equal(t, "brform", decode(t, buf)["svc"])
	})

	t.Run("level option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("hidden")
		assert.Zero(t, buf.Len())
	})
}

func TestWithEnvironment(t *testing.T) {
	tests := []struct {
		env       string
		debugSeen bool
		json      bool
		wantEnv   string
	}{
		{env: "development", debugSeen: true, json: false, wantEnv: "development"},
		{env: "", debugSeen: true, json: false, wantEnv: "development"},
		{env: "prod", debugSeen: false, json: true, wantEnv: "production"},
		{env: "staging", debugSeen: false, json: true, wantEnv: "staging"},
	}

	for _, tt := range tests {
		t.Run(tt.wantEnv+"/"+tt.env, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := logger.New(logger.WithOutput(buf), logger.WithEnvironment(tt.env, "brform"))

			log.Debug("debug")
			assert.Equal(t, tt.debugSeen, buf.Len() > 0)
			buf.Reset()

			log.Info("info")
			if tt.json {
				entry := decode(t, buf)
				assert.Equal(t, "brform", entry["service"])
				assert.Equal(t, tt.wantEnv, entry["env"])
			} else {
				assert.Contains(t, buf.String(), "service=brform")
				assert.Contains(t, buf.String(), "env="+tt.wantEnv)
			}
		})
	}
}

type ctxKey struct{}

func TestContextExtraction(t *testing.T) {
	t.Run("context value", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("request_id", ctxKey{}))

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.InfoContext(ctx, "hello")
		assert.Equal(t, "req-1", decode(t, buf)["request_id"])
	})

	t.Run("missing value adds nothing", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("request_id", ctxKey{}))

		log.InfoContext(context.Background(), "hello")
		assert.NotContains(t, decode(t, buf), "request_id")
	})

	t.Run("extractors survive With and WithGroup", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				return slog.String("lang", "pt"), true
			}),
		)

		log.With("component", "form").InfoContext(context.Background(), "hello")
		entry := decode(t, buf)
		assert.Equal(t, "pt", entry["lang"])
		assert.Equal(t, "form", entry["component"])

		buf.Reset()
		log.WithGroup("g").InfoContext(context.Background(), "hello", "k", "v")
		group, ok := decode(t, buf)["g"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "v", group["k"])
		assert.Equal(t, "pt", group["lang"])
	})
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
