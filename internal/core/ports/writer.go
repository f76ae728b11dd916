package ports

import "github.com/ld55/taskgen/internal/core/domain"

// TaskListWriter defines the interface for persisting the generated task list.
//
//go:generate mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type TaskListWriter interface {
	// Write serializes the list into the tasks file under root, replacing any existing file.
	Write(root string, list domain.TaskList) (domain.WriteResult, error)
}
