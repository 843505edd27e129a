package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestContextValuesAccumulate(t *testing.T) {
	ctx := WithBuildID(context.Background(), "b-1")
	ctx = WithStage(ctx, "materialize")
	ctx = WithTrigger(ctx, "watch")

	assert.Equal(t, LogContext{BuildID: "b-1", Stage: "materialize", Trigger: "watch"}, GetContext(ctx))
}

func TestStageOverridesPrevious(t *testing.T) {
	ctx := WithStage(context.Background(), "prepare")
	ctx = WithStage(ctx, "sidebar")
	assert.Equal(t, "sidebar", GetContext(ctx).Stage)
}

func TestEmptyContext(t *testing.T) {
	assert.Equal(t, LogContext{}, GetContext(context.Background()))
}

func TestLogLinesCarryContext(t *testing.T) {
	buf := captureLogs(t)
	ctx := WithStage(WithBuildID(context.Background(), "b-42"), "scaffold")

	InfoContext(ctx, "Writing assets", slog.Int("count", 3))
	DebugContext(ctx, "detail")
	WarnContext(context.Background(), "bare")

	out := buf.String()
	assert.Contains(t, out, `msg="Writing assets" build_id=b-42 stage=scaffold count=3`)
	assert.Contains(t, out, "level=DEBUG msg=detail build_id=b-42")
	assert.Contains(t, out, "level=WARN msg=bare\n")
}

func TestErrorContext(t *testing.T) {
	buf := captureLogs(t)
	ErrorContext(WithBuildID(context.Background(), "b-7"), "failed")
	assert.Contains(t, buf.String(), "level=ERROR msg=failed build_id=b-7")
}
