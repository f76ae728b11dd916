package shellcheck

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ld55/taskgen/internal/core/ports"
)

// NodeID is the unique identifier for the command linter Graft node.
const NodeID graft.ID = "adapter.command_linter"

func init() {
	graft.Register(graft.Node[ports.CommandLinter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CommandLinter, error) {
			return NewLinter(), nil
		},
	})
}
