package domain

// Task is one entry of the editor's task-runner configuration.
// The label is both the display name and the key other tasks depend on.
type Task struct {
	Label     string       `json:"label"`
	Command   string       `json:"command"`
	DependsOn []string     `json:"dependsOn,omitempty"`
	Options   *TaskOptions `json:"options,omitempty"`
	Type      string       `json:"type,omitempty"`
}

// TaskOptions holds editor-specific presentation settings.
type TaskOptions struct {
	StatusBar StatusBar `json:"statusbar"`
}

// StatusBar places a shortcut for the task in the editor's status bar.
type StatusBar struct {
	Hide  bool   `json:"hide"`
	Label string `json:"label"`
}

// StatusBarLabel returns the status-bar label, or "" when the task has none.
func (t Task) StatusBarLabel() string {
	if t.Options == nil {
		return ""
	}
	return t.Options.StatusBar.Label
}

// TaskList is the document written to the tasks file.
type TaskList struct {
	Version string `json:"version"`
	Tasks   []Task `json:"tasks"`
}

// NewTaskList returns an empty list with the current schema version.
func NewTaskList() TaskList {
	return TaskList{Version: TasksVersion, Tasks: []Task{}}
}

// Labels returns the task labels in order.
func (l TaskList) Labels() []string {
	labels := make([]string, len(l.Tasks))
	for i, t := range l.Tasks {
		labels[i] = t.Label
	}
	return labels
}

// Find returns the task with the given label.
func (l TaskList) Find(label string) (Task, bool) {
	for _, t := range l.Tasks {
		if t.Label == label {
			return t, true
		}
	}
	return Task{}, false
}

// DanglingDependency is a dependsOn entry that names no task in the list.
type DanglingDependency struct {
	Task      string
	DependsOn string
}

// DanglingDependencies returns every dependsOn reference that does not
// resolve to a label in the list, in task order.
func (l TaskList) DanglingDependencies() []DanglingDependency {
	known := make(map[string]struct{}, len(l.Tasks))
	for _, t := range l.Tasks {
		known[t.Label] = struct{}{}
	}

	var dangling []DanglingDependency
	for _, t := range l.Tasks {
		for _, dep := range t.DependsOn {
			if _, ok := known[dep]; !ok {
				dangling = append(dangling, DanglingDependency{Task: t.Label, DependsOn: dep})
			}
		}
	}
	return dangling
}

// CommandIssue reports a generated command the target shell cannot parse.
type CommandIssue struct {
	Task    string
	Command string
	Message string
}

// WriteResult describes a written tasks file.
type WriteResult struct {
	// Path is the absolute path of the tasks file.
	Path string
	// Digest is the xxhash64 of the bytes written.
	Digest uint64
	// Size is the number of bytes written.
	Size int
	// Unchanged reports that the file already held these bytes and was left alone.
	Unchanged bool
}
