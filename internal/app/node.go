package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ld55/taskgen/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"github.com/ld55/taskgen/internal/adapters/fs"         //nolint:depguard // Wired in app layer
	"github.com/ld55/taskgen/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"github.com/ld55/taskgen/internal/adapters/shellcheck" //nolint:depguard // Wired in app layer
	"github.com/ld55/taskgen/internal/adapters/tasksfile"  //nolint:depguard // Wired in app layer
	"github.com/ld55/taskgen/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.NodeID,
			tasksfile.NodeID,
			shellcheck.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	checker, err := graft.Dep[ports.PathChecker](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.TaskListWriter](ctx)
	if err != nil {
		return nil, err
	}

	linter, err := graft.Dep[ports.CommandLinter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, checker, writer, linter, log), nil
}
