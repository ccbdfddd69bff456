package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"WARN", false}, // case-insensitive
		{"", false},     // empty defaults to info
		{"verbose", true},
		{"trace", true},
	}

	for _, tc := range tests {
		t.Run("level "+tc.level, func(t *testing.T) {
			log, err := Setup(tc.level)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, log)
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := parseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = parseLevel("ERROR")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, level)

	_, err = parseLevel("loud")
	require.Error(t, err)
}

func TestContextLogger(t *testing.T) {
	base := slog.Default().With("component", "test")

	t.Run("round trip through context", func(t *testing.T) {
		ctx := WithLogger(context.Background(), base)
		assert.Same(t, base, FromContext(ctx))
		assert.Same(t, base, FromContextOrDefault(ctx, nil))
	})

	t.Run("empty context falls back to default", func(t *testing.T) {
		ctx := context.Background()
		assert.Same(t, slog.Default(), FromContext(ctx))
	})

	t.Run("fallback logger wins over default", func(t *testing.T) {
		ctx := context.Background()
		assert.Same(t, base, FromContextOrDefault(ctx, base))
	})
}
