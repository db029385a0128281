package logging

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlogLoggerWritesLevelsAndAttrs(t *testing.T) {
	var sb strings.Builder
	log := NewTextLogger(&sb, slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "k", "v")
	log.Info(ctx, "inf")
	log.Warn(ctx, "wrn")
	log.Error(ctx, "err")

	out := sb.String()
	require.Contains(t, out, "level=DEBUG")
	require.Contains(t, out, "msg=dbg")
	require.Contains(t, out, "k=v")
	require.Contains(t, out, "level=INFO")
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "level=ERROR")
}

func TestSlogLoggerWithAddsPersistentFields(t *testing.T) {
	var sb strings.Builder
	log := NewTextLogger(&sb, slog.LevelInfo)

	child := log.With("component", "session")
	child.Info(context.Background(), "loaded")

	require.Contains(t, sb.String(), "component=session")
}
