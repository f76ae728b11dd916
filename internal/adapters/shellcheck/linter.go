// Package shellcheck verifies that generated commands are valid shell syntax.
package shellcheck

import (
	"strings"

	"github.com/ld55/taskgen/internal/core/domain"
	"mvdan.cc/sh/v3/syntax"
)

// Linter implements ports.CommandLinter with the mvdan.cc/sh parser.
type Linter struct{}

// NewLinter creates a new Linter.
func NewLinter() *Linter {
	return &Linter{}
}

// Lint parses every command of list as bash. Windows commands run under
// cmd.exe, which has no parser here, and are not checked.
func (l *Linter) Lint(platform domain.Platform, list domain.TaskList) []domain.CommandIssue {
	if platform != domain.PlatformLinux {
		return nil
	}

	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))

	var issues []domain.CommandIssue
	for _, task := range list.Tasks {
		if _, err := parser.Parse(strings.NewReader(task.Command), task.Label); err != nil {
			issues = append(issues, domain.CommandIssue{
				Task:    task.Label,
				Command: task.Command,
				Message: err.Error(),
			})
		}
	}
	return issues
}
