// Package generator turns resolved settings into the editor's task list.
package generator

import "github.com/ld55/taskgen/internal/core/domain"

// Entry pairs a generator with the status-bar label of its task.
type Entry struct {
	Generate  Generator
	StatusBar string
}

// Plan returns the ordered entries for s. Conditional inclusion is decided
// here and nowhere else.
func Plan(s domain.Settings) []Entry {
	plan := []Entry{
		{Generate: SwitchAlias, StatusBar: SwitchAliasStatusBar(s)},
		{Generate: RemoveVcpkgFolders},
		{Generate: RemoveBuildFolder},
		{Generate: GitSubmoduleUpdate},
		{Generate: InstallVcpkg},
		{Generate: ClearConsole},
		{Generate: Configure},
		{Generate: Build, StatusBar: StatusBarBuild},
	}

	if !s.Web.Enabled {
		plan = append(plan,
			Entry{Generate: CopyConfig},
			Entry{Generate: CopyAssets},
			Entry{Generate: BuildAndRun, StatusBar: StatusBarRun},
		)
	}

	plan = append(plan, Entry{Generate: Pack, StatusBar: StatusBarPack})

	if s.Web.Enabled {
		return append(plan,
			Entry{Generate: ServeWeb, StatusBar: StatusBarServe},
			Entry{Generate: OpenBrowser},
		)
	}
	return append(plan, Entry{Generate: Run})
}

// Assemble runs every entry of plan in order and decorates the results.
func Assemble(s domain.Settings, plan []Entry) domain.TaskList {
	list := domain.NewTaskList()
	for _, e := range plan {
		task := AsShell(WithStatusBar(e.StatusBar)(e.Generate(s)))
		list.Tasks = append(list.Tasks, task)
	}
	return list
}

// Generate is Assemble over Plan.
func Generate(s domain.Settings) domain.TaskList {
	return Assemble(s, Plan(s))
}
