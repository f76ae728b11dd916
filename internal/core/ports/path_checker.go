package ports

import "io/fs"

// PathChecker defines the interface for inspecting toolchain paths.
//
//go:generate mockgen -source=path_checker.go -destination=mocks/mock_path_checker.go -package=mocks
type PathChecker interface {
	// Stat returns file info for the given path.
	Stat(path string) (fs.FileInfo, error)
}
