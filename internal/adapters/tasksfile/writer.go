// Package tasksfile writes the editor's tasks.json.
package tasksfile

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/ld55/taskgen/internal/core/domain"
	"go.trai.ch/zerr"
)

const indent = "    "

// Writer implements ports.TaskListWriter using a JSON file.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Encode renders list exactly as Write stores it.
func Encode(list domain.TaskList) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Commands chain steps with "&&".
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(list); err != nil {
		return nil, zerr.Wrap(err, domain.ErrTasksMarshalFailed.Error())
	}
	return buf.Bytes(), nil
}

// Write serializes list to <root>/.vscode/tasks.json, creating the directory
// when needed. An existing file with the same digest is not rewritten, so the
// editor's file watcher does not reload identical tasks.
func (w *Writer) Write(root string, list domain.TaskList) (domain.WriteResult, error) {
	data, err := Encode(list)
	if err != nil {
		return domain.WriteResult{}, err
	}

	path, err := filepath.Abs(filepath.Join(root, domain.DefaultTasksPath()))
	if err != nil {
		return domain.WriteResult{}, zerr.With(zerr.Wrap(err, domain.ErrTasksWriteFailed.Error()), "root", root)
	}

	digest := xxhash.Sum64(data)
	if existing, err := os.ReadFile(path); err == nil && len(existing) == len(data) && xxhash.Sum64(existing) == digest { //nolint:gosec // Same path as the write below
		return domain.WriteResult{Path: path, Digest: digest, Size: len(data), Unchanged: true}, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return domain.WriteResult{}, zerr.With(zerr.Wrap(err, domain.ErrTasksDirCreateFailed.Error()), "path", dir)
	}

	//nolint:gosec // Path is derived from the project root given on the command line
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return domain.WriteResult{}, zerr.With(zerr.Wrap(err, domain.ErrTasksWriteFailed.Error()), "path", path)
	}

	return domain.WriteResult{
		Path:   path,
		Digest: digest,
		Size:   len(data),
	}, nil
}
