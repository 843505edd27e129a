package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation", err: ValidationError("bad rule").Build(), expected: 2},
		{name: "config", err: ConfigError("bad config").Build(), expected: 7},
		{name: "filesystem", err: FileSystemError("copy failed").Build(), expected: 11},
		{name: "template", err: TemplateError("missing asset").Build(), expected: 11},
		{name: "runtime", err: RuntimeError("watcher died").Build(), expected: 12},
		{name: "internal", err: InternalError("bug").Build(), expected: 10},
		{name: "wrapped classified", err: fmt.Errorf("outer: %w", BuildError("stage failed").Build()), expected: 11},
		{name: "plain error", err: stderrors.New("boom"), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adapter.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, nil)
	verbose := NewCLIErrorAdapter(true, nil)

	fsErr := WrapError(stderrors.New("permission denied"), CategoryFileSystem, "copy file failed").Build()

	assert.Equal(t, "", quiet.FormatError(nil))
	assert.Equal(t, "Error: copy file failed: permission denied", quiet.FormatError(fsErr))
	assert.Equal(t, fsErr.Error(), verbose.FormatError(fsErr))
	assert.Equal(t, "Internal error occurred (use -v for details)", quiet.FormatError(InternalError("bug").Build()))
	assert.Equal(t, "Error: boom", quiet.FormatError(stderrors.New("boom")))
}
