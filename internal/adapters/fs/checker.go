// Package fs inspects the toolchain paths named in the settings.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"os/exec"
	"strings"
)

// Checker implements ports.PathChecker on the OS filesystem.
type Checker struct {
	lookPath func(file string) (string, error)
}

// NewChecker creates a new Checker.
func NewChecker() *Checker {
	return &Checker{lookPath: exec.LookPath}
}

// Stat returns file info for path. A bare command name such as "ninja"
// that does not exist relative to the working directory is looked up in PATH.
func (c *Checker) Stat(path string) (iofs.FileInfo, error) {
	info, err := os.Stat(path)
	if err == nil || !errors.Is(err, iofs.ErrNotExist) || !isBareName(path) {
		return info, err
	}

	resolved, lookErr := c.lookPath(path)
	if lookErr != nil {
		return nil, err
	}
	return os.Stat(resolved)
}

func isBareName(path string) bool {
	return path != "" && !strings.ContainsAny(path, `/\`)
}
