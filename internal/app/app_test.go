package app_test

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/ld55/taskgen/internal/app"
	"github.com/ld55/taskgen/internal/core/domain"
	"github.com/ld55/taskgen/internal/core/ports/mocks"
	"github.com/ld55/taskgen/internal/engine/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type appTestMocks struct {
	loader  *mocks.MockSettingsLoader
	checker *mocks.MockPathChecker
	writer  *mocks.MockTaskListWriter
	linter  *mocks.MockCommandLinter
	logger  *mocks.MockLogger
}

// setupAppTest creates an App and its mocks.
func setupAppTest(t *testing.T) (*app.App, appTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appTestMocks{
		loader:  mocks.NewMockSettingsLoader(ctrl),
		checker: mocks.NewMockPathChecker(ctrl),
		writer:  mocks.NewMockTaskListWriter(ctrl),
		linter:  mocks.NewMockCommandLinter(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}
	a := app.New(m.loader, m.checker, m.writer, m.linter, m.logger)
	return a, m
}

func aliasPtr(a domain.Alias) *domain.Alias { return &a }

func platformPtr(p domain.Platform) *domain.Platform { return &p }

func TestApp_Generate_Desktop(t *testing.T) {
	t.Parallel()
	a, m := setupAppTest(t)

	m.loader.EXPECT().Load("/project", "").Return(domain.DefaultSettings("linux"), nil)
	m.linter.EXPECT().Lint(domain.PlatformLinux, gomock.Any()).Return(nil)

	var written domain.TaskList
	m.writer.EXPECT().Write("/project", gomock.Any()).DoAndReturn(
		func(_ string, list domain.TaskList) (domain.WriteResult, error) {
			written = list
			return domain.WriteResult{Path: "/project/.vscode/tasks.json", Digest: 42, Size: 100}, nil
		},
	)
	m.logger.EXPECT().Info("wrote 13 tasks for alias release (linux, build/release) to /project/.vscode/tasks.json, digest 000000000000002a")

	res, err := a.Generate(context.Background(), app.GenerateOptions{
		Root:  "/project",
		Alias: aliasPtr(domain.AliasRelease),
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(42), res.Digest)
	assert.Contains(t, written.Labels(), generator.LabelCopyAssets)
	assert.NotContains(t, written.Labels(), generator.LabelServeWeb)
}

func TestApp_Generate_SwitchTaskKeepsFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts app.GenerateOptions
		want string
	}{
		{
			name: "no flags",
			opts: app.GenerateOptions{Root: "/project", Alias: aliasPtr(domain.AliasRelease)},
			want: "taskgen web",
		},
		{
			name: "platform",
			opts: app.GenerateOptions{
				Root:     "/project",
				Alias:    aliasPtr(domain.AliasRelease),
				Platform: platformPtr(domain.PlatformWindows),
			},
			want: "taskgen web --platform windows",
		},
		{
			name: "settings file relative to root",
			opts: app.GenerateOptions{
				Root:       "/project",
				ConfigPath: "/project/cfg/win settings.yaml",
				Alias:      aliasPtr(domain.AliasDebug),
				Platform:   platformPtr(domain.PlatformWindows),
			},
			want: `taskgen release --platform windows -c "cfg\win settings.yaml"`,
		},
		{
			name: "settings file on linux",
			opts: app.GenerateOptions{Root: "/project", ConfigPath: "/project/ci/taskgen.yaml"},
			want: "taskgen release -c ci/taskgen.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, m := setupAppTest(t)

			m.loader.EXPECT().Load("/project", tt.opts.ConfigPath).Return(domain.DefaultSettings("linux"), nil)
			m.linter.EXPECT().Lint(gomock.Any(), gomock.Any()).Return(nil)
			m.logger.EXPECT().Info(gomock.Any())

			var written domain.TaskList
			m.writer.EXPECT().Write("/project", gomock.Any()).DoAndReturn(
				func(_ string, list domain.TaskList) (domain.WriteResult, error) {
					written = list
					return domain.WriteResult{}, nil
				},
			)

			_, err := a.Generate(context.Background(), tt.opts)
			require.NoError(t, err)

			task, ok := written.Find(generator.LabelSwitchAlias)
			require.True(t, ok)
			assert.Equal(t, tt.want, task.Command)
		})
	}
}

func TestApp_Generate_UnchangedFileLogsDigest(t *testing.T) {
	t.Parallel()
	a, m := setupAppTest(t)

	m.loader.EXPECT().Load("/project", "").Return(domain.DefaultSettings("windows"), nil)
	m.linter.EXPECT().Lint(domain.PlatformWindows, gomock.Any()).Return(nil)
	m.writer.EXPECT().Write("/project", gomock.Any()).Return(domain.WriteResult{
		Path:      "/project/.vscode/tasks.json",
		Digest:    0xdeadbeef,
		Size:      100,
		Unchanged: true,
	}, nil)
	m.logger.EXPECT().Info("/project/.vscode/tasks.json is up to date (13 tasks for alias debug, digest 00000000deadbeef)")

	res, err := a.Generate(context.Background(), app.GenerateOptions{Root: "/project"})
	require.NoError(t, err)
	assert.True(t, res.Unchanged)
}

func TestApp_Generate_WebValidatesPathsUnderRoot(t *testing.T) {
	t.Parallel()
	a, m := setupAppTest(t)

	fsys := fstest.MapFS{
		"emsdk":       {Mode: fs.ModeDir},
		"tools/ninja": {Data: []byte{}},
	}
	stat := func(path string) (fs.FileInfo, error) {
		rel, err := filepath.Rel("/project", path)
		if err != nil {
			return nil, err
		}
		return fs.Stat(fsys, filepath.ToSlash(rel))
	}

	base := domain.DefaultSettings("windows")
	base.Web.NinjaPath = "tools/ninja"

	m.loader.EXPECT().Load("/project", "custom.yaml").Return(base, nil)
	m.checker.EXPECT().Stat(filepath.Join("/project", "emsdk")).DoAndReturn(stat)
	m.checker.EXPECT().Stat(filepath.Join("/project", "tools", "ninja")).DoAndReturn(stat)
	m.linter.EXPECT().Lint(domain.PlatformLinux, gomock.Any()).Return(nil)
	m.writer.EXPECT().Write("/project", gomock.Any()).DoAndReturn(
		func(_ string, list domain.TaskList) (domain.WriteResult, error) {
			assert.Contains(t, list.Labels(), generator.LabelServeWeb)
			assert.NotContains(t, list.Labels(), generator.LabelCopyConfig)
			return domain.WriteResult{}, nil
		},
	)
	m.logger.EXPECT().Info(gomock.Any())

	_, err := a.Generate(context.Background(), app.GenerateOptions{
		Root:       "/project",
		ConfigPath: "custom.yaml",
		Alias:      aliasPtr(domain.AliasWeb),
		Platform:   platformPtr(domain.PlatformLinux),
	})
	require.NoError(t, err)
}

func TestApp_Generate_BareToolNameFallsBackToChecker(t *testing.T) {
	t.Parallel()
	a, m := setupAppTest(t)

	base := domain.DefaultSettings("linux")
	base.Web.Enabled = true
	base.Web.SDKPath = "/opt/emsdk"

	m.loader.EXPECT().Load("/project", "").Return(base, nil)
	m.checker.EXPECT().Stat("/opt/emsdk").Return(fstest.MapFS{"d": {Mode: fs.ModeDir}}.Stat("d"))
	m.checker.EXPECT().Stat(filepath.Join("/project", "ninja")).Return(nil, fs.ErrNotExist)
	m.checker.EXPECT().Stat("ninja").Return(fstest.MapFS{"ninja": {}}.Stat("ninja"))
	m.linter.EXPECT().Lint(gomock.Any(), gomock.Any()).Return(nil)
	m.writer.EXPECT().Write(gomock.Any(), gomock.Any()).Return(domain.WriteResult{}, nil)
	m.logger.EXPECT().Info(gomock.Any())

	_, err := a.Generate(context.Background(), app.GenerateOptions{Root: "/project"})
	require.NoError(t, err)
}

func TestApp_Generate_MissingSDKFailsBeforeWriting(t *testing.T) {
	t.Parallel()
	a, m := setupAppTest(t)

	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(domain.DefaultSettings("linux"), nil)
	m.checker.EXPECT().Stat(gomock.Any()).Return(nil, fs.ErrNotExist).AnyTimes()
	// No writer, linter or logger calls are expected.

	_, err := a.Generate(context.Background(), app.GenerateOptions{
		Root:  "/project",
		Alias: aliasPtr(domain.AliasWeb),
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSettingsResolutionFailed.Error())
	assert.ErrorContains(t, err, domain.ErrMissingPath.Error())
}

func TestApp_Generate_LoaderError(t *testing.T) {
	t.Parallel()
	a, m := setupAppTest(t)

	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(domain.Settings{}, domain.ErrConfigParseFailed)

	_, err := a.Generate(context.Background(), app.GenerateOptions{Root: "."})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

// danglingPlan configures a web build without the build-folder removal task.
func danglingPlan(s domain.Settings) []generator.Entry {
	var plan []generator.Entry
	for _, e := range generator.Plan(s) {
		if e.Generate(s).Label != generator.LabelRemoveBuildFolder {
			plan = append(plan, e)
		}
	}
	return plan
}

func TestApp_Generate_DanglingDependencyWarns(t *testing.T) {
	t.Parallel()
	a, m := setupAppTest(t)
	a.WithPlan(danglingPlan)

	base := domain.DefaultSettings("linux")
	base.Web.SDKPath, base.Web.NinjaPath = "/opt/emsdk", "/usr/bin/ninja"

	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(base, nil)
	m.checker.EXPECT().Stat("/opt/emsdk").Return(fstest.MapFS{"d": {Mode: fs.ModeDir}}.Stat("d"))
	m.checker.EXPECT().Stat("/usr/bin/ninja").Return(fstest.MapFS{"ninja": {}}.Stat("ninja"))
	m.logger.EXPECT().Warn(`task "010. Configure" depends on "002. Remove build folder", which is not generated`)
	m.linter.EXPECT().Lint(gomock.Any(), gomock.Any()).Return(nil)
	m.writer.EXPECT().Write(gomock.Any(), gomock.Any()).Return(domain.WriteResult{}, nil)
	m.logger.EXPECT().Info(gomock.Any())

	_, err := a.Generate(context.Background(), app.GenerateOptions{Root: "/project", Alias: aliasPtr(domain.AliasWeb)})
	require.NoError(t, err)
}

func TestApp_Generate_DanglingDependencyStrict(t *testing.T) {
	t.Parallel()
	a, m := setupAppTest(t)
	a.WithPlan(danglingPlan)

	base := domain.DefaultSettings("linux")
	base.Web.SDKPath, base.Web.NinjaPath = "/opt/emsdk", "/usr/bin/ninja"

	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(base, nil)
	m.checker.EXPECT().Stat("/opt/emsdk").Return(fstest.MapFS{"d": {Mode: fs.ModeDir}}.Stat("d"))
	m.checker.EXPECT().Stat("/usr/bin/ninja").Return(fstest.MapFS{"ninja": {}}.Stat("ninja"))

	_, err := a.Generate(context.Background(), app.GenerateOptions{
		Root:   "/project",
		Alias:  aliasPtr(domain.AliasWeb),
		Strict: true,
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDanglingDependency.Error())
}

func TestApp_Generate_LintIssues(t *testing.T) {
	t.Parallel()

	issues := []domain.CommandIssue{{Task: "020. + Build", Command: "x", Message: "1:5: reached EOF"}}

	t.Run("warns", func(t *testing.T) {
		t.Parallel()
		a, m := setupAppTest(t)

		m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(domain.DefaultSettings("linux"), nil)
		m.linter.EXPECT().Lint(gomock.Any(), gomock.Any()).Return(issues)
		m.logger.EXPECT().Warn(`task "020. + Build": 1:5: reached EOF`)
		m.writer.EXPECT().Write(gomock.Any(), gomock.Any()).Return(domain.WriteResult{}, nil)
		m.logger.EXPECT().Info(gomock.Any())

		_, err := a.Generate(context.Background(), app.GenerateOptions{Root: "."})
		require.NoError(t, err)
	})

	t.Run("strict fails", func(t *testing.T) {
		t.Parallel()
		a, m := setupAppTest(t)

		m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(domain.DefaultSettings("linux"), nil)
		m.linter.EXPECT().Lint(gomock.Any(), gomock.Any()).Return(issues)

		_, err := a.Generate(context.Background(), app.GenerateOptions{Root: ".", Strict: true})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrInvalidCommand.Error())
	})
}

func TestApp_Generate_CancelledContextSkipsWrite(t *testing.T) {
	t.Parallel()
	a, m := setupAppTest(t)

	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(domain.DefaultSettings("windows"), nil)
	m.linter.EXPECT().Lint(gomock.Any(), gomock.Any()).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Generate(ctx, app.GenerateOptions{Root: "."})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestApp_Generate_WriterError(t *testing.T) {
	t.Parallel()
	a, m := setupAppTest(t)

	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(domain.DefaultSettings("windows"), nil)
	m.linter.EXPECT().Lint(gomock.Any(), gomock.Any()).Return(nil)
	m.writer.EXPECT().Write(gomock.Any(), gomock.Any()).Return(domain.WriteResult{}, domain.ErrTasksWriteFailed)

	_, err := a.Generate(context.Background(), app.GenerateOptions{Root: "."})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTasksWriteFailed.Error())
}
