package logger_test

import (
	"errors"
	"testing"

	"github.com/ld55/taskgen/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	t.Parallel()

	inner := zerr.With(zerr.New("path not found"), "field", "ninja_path")
	outer := zerr.Wrap(inner, "task generation failed")

	entries := logger.CollectErrorEntries(outer)
	assert.Len(t, entries, 2)
	assert.Equal(t, "task generation failed", entries[0].Message)
	assert.Equal(t, "path not found", entries[1].Message)
	assert.Equal(t, "ninja_path", entries[1].Metadata["field"])

	entries = logger.CollectErrorEntries(errors.New("plain"))
	assert.Equal(t, []logger.ErrorEntry{{Message: "plain"}}, entries)

	assert.Empty(t, logger.CollectErrorEntries(nil))
}

func TestFormatErrorEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name: "three entries",
			entries: []logger.ErrorEntry{
				{Message: "first"},
				{Message: "second"},
				{Message: "third"},
			},
			want: "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"path": "emsdk", "field": "sdk_path"}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      field: sdk_path\n      path: emsdk",
		},
		{
			name:    "multiline message",
			entries: []logger.ErrorEntry{{Message: "line1\nline2"}},
			want:    "Error: line1\n       line2",
		},
		{
			name:    "empty entries",
			entries: []logger.ErrorEntry{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
