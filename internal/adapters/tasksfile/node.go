package tasksfile

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ld55/taskgen/internal/core/ports"
)

// NodeID is the unique identifier for the tasks file writer Graft node.
const NodeID graft.ID = "adapter.tasks_file_writer"

func init() {
	graft.Register(graft.Node[ports.TaskListWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TaskListWriter, error) {
			return NewWriter(), nil
		},
	})
}
