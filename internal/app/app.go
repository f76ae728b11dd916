// Package app implements the application layer for taskgen.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/ld55/taskgen/internal/core/domain"
	"github.com/ld55/taskgen/internal/core/ports"
	"github.com/ld55/taskgen/internal/engine/generator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader  ports.SettingsLoader
	checker ports.PathChecker
	writer  ports.TaskListWriter
	linter  ports.CommandLinter
	logger  ports.Logger
	plan    func(domain.Settings) []generator.Entry
}

// New creates a new App instance.
func New(
	loader ports.SettingsLoader,
	checker ports.PathChecker,
	writer ports.TaskListWriter,
	linter ports.CommandLinter,
	log ports.Logger,
) *App {
	return &App{
		loader:  loader,
		checker: checker,
		writer:  writer,
		linter:  linter,
		logger:  log,
		plan:    generator.Plan,
	}
}

// WithPlan replaces the task plan. Used by tests to exercise the checks
// that generated plans never trip.
func (a *App) WithPlan(plan func(domain.Settings) []generator.Entry) *App {
	a.plan = plan
	return a
}

// GenerateOptions configures one generation run.
type GenerateOptions struct {
	// Root is the project root the tasks file is written under.
	Root string
	// ConfigPath selects a settings file. Empty uses taskgen.yaml in Root if present.
	ConfigPath string
	// Alias is the build alias from the command line, if any.
	Alias *domain.Alias
	// Platform forces the target platform instead of the host's.
	Platform *domain.Platform
	// Strict turns dangling dependencies and unparsable commands into errors.
	Strict bool
}

// Generate resolves settings, builds the task list and writes the tasks file.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) (domain.WriteResult, error) {
	settings, err := a.resolve(opts)
	if err != nil {
		return domain.WriteResult{}, zerr.Wrap(err, domain.ErrSettingsResolutionFailed.Error())
	}

	list := generator.Assemble(settings, a.plan(settings))

	if err := a.check(settings, list, opts.Strict); err != nil {
		return domain.WriteResult{}, err
	}

	if err := ctx.Err(); err != nil {
		return domain.WriteResult{}, zerr.Wrap(err, domain.ErrGenerationFailed.Error())
	}

	res, err := a.writer.Write(opts.Root, list)
	if err != nil {
		return domain.WriteResult{}, err
	}

	if res.Unchanged {
		a.logger.Info(fmt.Sprintf("%s is up to date (%d tasks for alias %s, digest %016x)",
			res.Path, len(list.Tasks), settings.Alias(), res.Digest))
		return res, nil
	}

	a.logger.Info(fmt.Sprintf("wrote %d tasks for alias %s (%s, %s) to %s, digest %016x",
		len(list.Tasks), settings.Alias(), settings.Platform, settings.BuildFolder(), res.Path, res.Digest))
	return res, nil
}

func (a *App) resolve(opts GenerateOptions) (domain.Settings, error) {
	base, err := a.loader.Load(opts.Root, opts.ConfigPath)
	if err != nil {
		return domain.Settings{}, err
	}

	var overrides domain.SettingsOverrides
	if opts.Alias != nil {
		overrides = opts.Alias.Overrides()
	}
	if opts.Platform != nil {
		overrides.Platform = opts.Platform
	}

	settings, err := domain.ResolveSettings(base, overrides, a.statUnder(opts.Root))
	if err != nil {
		return domain.Settings{}, err
	}
	settings.GeneratorFlags = generatorFlags(settings, opts)
	return settings, nil
}

// generatorFlags repeats the flags of this run that change the output, so the
// switch-alias task keeps the same platform and settings file. The task runs
// in the project root, so the settings path is made relative to it.
func generatorFlags(s domain.Settings, opts GenerateOptions) string {
	var flags []string
	if opts.Platform != nil {
		flags = append(flags, "--platform", opts.Platform.String())
	}
	if opts.ConfigPath != "" {
		flags = append(flags, "-c", quoteArg(s.NativePath(filepath.ToSlash(relativeTo(opts.Root, opts.ConfigPath)))))
	}
	return strings.Join(flags, " ")
}

func relativeTo(root, path string) string {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return path
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return absPath
	}
	return rel
}

// quoteArg double-quotes arguments with spaces. cmd.exe and bash both accept it.
func quoteArg(arg string) string {
	if strings.ContainsAny(arg, " \t") {
		return `"` + arg + `"`
	}
	return arg
}

// statUnder resolves relative toolchain paths against root. Bare command
// names missing there are handed to the checker as is, which looks them up in PATH.
func (a *App) statUnder(root string) domain.StatFunc {
	return func(path string) (fs.FileInfo, error) {
		if filepath.IsAbs(path) {
			return a.checker.Stat(path)
		}

		joined := filepath.Join(root, path)
		info, err := a.checker.Stat(joined)
		if err != nil && errors.Is(err, fs.ErrNotExist) && joined != path && !strings.ContainsAny(path, `/\`) {
			return a.checker.Stat(path)
		}
		return info, err
	}
}

func (a *App) check(s domain.Settings, list domain.TaskList, strict bool) error {
	for _, d := range list.DanglingDependencies() {
		if strict {
			err := zerr.With(domain.ErrDanglingDependency, "task", d.Task)
			return zerr.With(err, "depends_on", d.DependsOn)
		}
		a.logger.Warn(fmt.Sprintf("task %q depends on %q, which is not generated", d.Task, d.DependsOn))
	}

	for _, issue := range a.linter.Lint(s.Platform, list) {
		if strict {
			err := zerr.With(domain.ErrInvalidCommand, "task", issue.Task)
			return zerr.With(err, "reason", issue.Message)
		}
		a.logger.Warn(fmt.Sprintf("task %q: %s", issue.Task, issue.Message))
	}
	return nil
}

// Components holds the resolved top-level dependencies of the process.
type Components struct {
	App    *App
	Logger ports.Logger
}
