package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ld55/taskgen/internal/core/ports"
)

// NodeID is the unique identifier for the path checker Graft node.
const NodeID graft.ID = "adapter.fs.checker"

func init() {
	graft.Register(graft.Node[ports.PathChecker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathChecker, error) {
			return NewChecker(), nil
		},
	})
}
