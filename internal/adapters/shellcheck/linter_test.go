package shellcheck_test

import (
	"testing"

	"github.com/ld55/taskgen/internal/adapters/shellcheck"
	"github.com/ld55/taskgen/internal/core/domain"
	"github.com/ld55/taskgen/internal/engine/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinter_GeneratedLinuxCommandsParse(t *testing.T) {
	t.Parallel()

	linter := shellcheck.NewLinter()
	for _, alias := range domain.SelectableAliases() {
		s := domain.DefaultSettings("linux").Apply(alias.Overrides())
		s.Web.SDKPath = "/opt/emsdk"
		s.Web.NinjaPath = "/usr/bin/ninja"

		assert.Empty(t, linter.Lint(domain.PlatformLinux, generator.Generate(s)), alias)
	}
}

func TestLinter_ReportsInvalidCommands(t *testing.T) {
	t.Parallel()

	list := domain.NewTaskList()
	list.Tasks = append(list.Tasks,
		domain.Task{Label: "ok", Command: "cmake --build build/debug -- -k 0"},
		domain.Task{Label: "unterminated", Command: `echo "done`},
		domain.Task{Label: "dangling pipe", Command: "make &&"},
	)

	issues := shellcheck.NewLinter().Lint(domain.PlatformLinux, list)
	require.Len(t, issues, 2)
	assert.Equal(t, "unterminated", issues[0].Task)
	assert.Equal(t, `echo "done`, issues[0].Command)
	assert.NotEmpty(t, issues[0].Message)
	assert.Equal(t, "dangling pipe", issues[1].Task)
}

func TestLinter_SkipsWindows(t *testing.T) {
	t.Parallel()

	list := domain.NewTaskList()
	list.Tasks = append(list.Tasks, domain.Task{Label: "bad", Command: `echo "done`})

	assert.Empty(t, shellcheck.NewLinter().Lint(domain.PlatformWindows, list))
}
