package logging_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/peelmis/logging"
)

func TestInit_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	ctx, err := logging.Init(context.Background(),
		logging.WithLogLevel("info"),
		logging.WithLogFormat(logging.LogFormatJSON),
		logging.WithOutputPaths(path),
	)
	require.NoError(t, err)

	l := ctxzap.Extract(ctx)
	l.Debug("hidden")
	l.Info("round", zap.Int("frontier", 3))
	_ = l.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "round", entry["msg"])
	assert.EqualValues(t, 3, entry["frontier"])
}

func TestInit_Levels(t *testing.T) {
	cases := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"nonsense", zapcore.DebugLevel},
	}
	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			ctx, err := logging.Init(context.Background(),
				logging.WithLogLevel(tc.level),
				logging.WithLogFormat(logging.LogFormatConsole),
				logging.WithOutputPaths(filepath.Join(t.TempDir(), "x.log")),
			)
			require.NoError(t, err)
			l := ctxzap.Extract(ctx)
			assert.True(t, l.Core().Enabled(tc.want))
			if tc.want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tc.want-1))
			}
		})
	}
}

func TestInit_BadPath(t *testing.T) {
	_, err := logging.Init(context.Background(),
		logging.WithOutputPaths(filepath.Join(t.TempDir(), "missing", "dir", "x.log")))
	assert.Error(t, err)
}

func TestExtract_WithoutInit(t *testing.T) {
	// Library code relies on a usable no-op logger when nothing is attached.
	l := ctxzap.Extract(context.Background())
	require.NotNil(t, l)
	l.Info("dropped")
}
