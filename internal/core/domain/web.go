package domain

import (
	"errors"
	"io/fs"

	"go.trai.ch/zerr"
)

// StatFunc reports file information for a path, like os.Stat.
type StatFunc func(path string) (fs.FileInfo, error)

// Validate checks that the Emscripten SDK directory and the ninja binary exist.
// Disabled web settings are always valid.
func (w WebSettings) Validate(stat StatFunc) error {
	if !w.Enabled {
		return nil
	}

	if err := requirePath(stat, "sdk_path", w.SDKPath, true); err != nil {
		return err
	}
	return requirePath(stat, "ninja_path", w.NinjaPath, false)
}

func requirePath(stat StatFunc, field, path string, wantDir bool) error {
	info, err := stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.With(ErrMissingPath, "field", field), "path", path)
		}
		return zerr.With(zerr.Wrap(err, ErrPathStatFailed.Error()), "path", path)
	}
	if wantDir && !info.IsDir() {
		return zerr.With(zerr.With(ErrMissingPath, "field", field), "path", path)
	}
	return nil
}
