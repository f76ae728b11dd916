package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidArguments is returned when the command line does not match "[release|debug|web]".
	ErrInvalidArguments = zerr.New("invalid arguments")

	// ErrUnknownAlias is returned when a build alias cannot be parsed.
	ErrUnknownAlias = zerr.New("unknown build alias")

	// ErrInvalidPlatform is returned when a platform name is not one of windows or linux.
	ErrInvalidPlatform = zerr.New("invalid platform, expected 'windows' or 'linux'")

	// ErrInvalidBuildType is returned when a build type is not one of debug or release.
	ErrInvalidBuildType = zerr.New("invalid build type, expected 'debug' or 'release'")

	// ErrMissingPath is returned when a path required by the web toolchain does not exist.
	ErrMissingPath = zerr.New("path not found")

	// ErrPathStatFailed is returned when stating a path fails for a reason other than absence.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read settings file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse settings file")

	// ErrSettingsResolutionFailed is returned when settings cannot be resolved from defaults and overrides.
	ErrSettingsResolutionFailed = zerr.New("failed to resolve settings")

	// ErrDanglingDependency is returned in strict mode when a task depends on a label missing from the list.
	ErrDanglingDependency = zerr.New("task depends on a label that is not generated")

	// ErrInvalidCommand is returned in strict mode when a generated command is not valid shell syntax.
	ErrInvalidCommand = zerr.New("generated command is not valid shell syntax")

	// ErrTasksMarshalFailed is returned when the task list cannot be encoded as JSON.
	ErrTasksMarshalFailed = zerr.New("failed to marshal task list")

	// ErrTasksDirCreateFailed is returned when the editor settings directory cannot be created.
	ErrTasksDirCreateFailed = zerr.New("failed to create tasks directory")

	// ErrTasksWriteFailed is returned when the tasks file cannot be written.
	ErrTasksWriteFailed = zerr.New("failed to write tasks file")

	// ErrGenerationFailed is returned when a generation run fails.
	ErrGenerationFailed = zerr.New("task generation failed")
)
