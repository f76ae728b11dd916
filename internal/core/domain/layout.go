package domain

import "path/filepath"

const (
	// SettingsFileName is the name of the optional settings file in the project root.
	SettingsFileName = "taskgen.yaml"

	// EditorDirName is the name of the editor settings directory.
	EditorDirName = ".vscode"

	// TasksFileName is the name of the generated task-runner configuration.
	TasksFileName = "tasks.json"

	// TasksVersion is the schema version written into the tasks file.
	TasksVersion = "2.0.0"

	// TaskTypeShell is the execution type of every generated task.
	TaskTypeShell = "shell"

	// WebServerPort is the port used by the local HTTP server for web builds.
	WebServerPort = 8000

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultTasksPath returns the tasks file path relative to the project root.
// It joins .vscode and tasks.json.
func DefaultTasksPath() string {
	return filepath.Join(EditorDirName, TasksFileName)
}
