package generator

import "github.com/ld55/taskgen/internal/core/domain"

// Decorator transforms a generated task.
type Decorator func(domain.Task) domain.Task

// WithStatusBar attaches a status-bar shortcut with the given label.
// An empty label leaves the task untouched.
func WithStatusBar(label string) Decorator {
	return func(t domain.Task) domain.Task {
		if label == "" {
			return t
		}
		t.Options = &domain.TaskOptions{StatusBar: domain.StatusBar{Hide: false, Label: label}}
		return t
	}
}

// AsShell marks the task as executed by the editor's shell.
func AsShell(t domain.Task) domain.Task {
	t.Type = domain.TaskTypeShell
	return t
}
