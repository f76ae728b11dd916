package ports

import "github.com/ld55/taskgen/internal/core/domain"

// CommandLinter defines the interface for checking generated shell commands.
//
//go:generate mockgen -source=linter.go -destination=mocks/mock_linter.go -package=mocks
type CommandLinter interface {
	// Lint returns the commands in list that the platform's shell cannot parse.
	Lint(platform domain.Platform, list domain.TaskList) []domain.CommandIssue
}
