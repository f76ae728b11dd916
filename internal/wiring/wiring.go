// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/ld55/taskgen/internal/adapters/config"
	_ "github.com/ld55/taskgen/internal/adapters/fs"
	_ "github.com/ld55/taskgen/internal/adapters/logger"
	_ "github.com/ld55/taskgen/internal/adapters/shellcheck"
	_ "github.com/ld55/taskgen/internal/adapters/tasksfile"
	// Register app nodes.
	_ "github.com/ld55/taskgen/internal/app"
)
