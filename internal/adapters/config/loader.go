// Package config loads the optional taskgen.yaml settings file.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"runtime"

	"github.com/ld55/taskgen/internal/core/domain"
	"github.com/ld55/taskgen/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
	// GOOS selects the default platform.
	GOOS string
}

// NewLoader creates a new Loader reading from the OS filesystem for the host platform.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS(), GOOS: runtime.GOOS}
}

// Load returns the defaults for the loader's GOOS overlaid with the settings file.
// With an empty path the file is looked up in root and may be absent.
func (l *Loader) Load(root, path string) (domain.Settings, error) {
	settings := domain.DefaultSettings(l.GOOS)

	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, domain.SettingsFileName)
	}

	if _, err := l.FS.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return settings, nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file SettingsFile
	if err := l.readAndUnmarshalYAML(path, &file); err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}

	settings, err := apply(settings, &file)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}

	l.Logger.Info("loaded settings from " + path)
	return settings, nil
}

func (l *Loader) readAndUnmarshalYAML(path string, target *SettingsFile) error {
	content, err := l.FS.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

func apply(s domain.Settings, f *SettingsFile) (domain.Settings, error) {
	if f.Platform != nil {
		p, err := domain.ParsePlatform(*f.Platform)
		if err != nil {
			return domain.Settings{}, err
		}
		s.Platform = p
	}
	if f.BuildType != nil {
		bt, err := domain.ParseBuildType(*f.BuildType)
		if err != nil {
			return domain.Settings{}, err
		}
		s.BuildType = bt
	}

	setString(&s.Compiler, f.Compiler)
	setString(&s.MakeTool, f.MakeTool)
	setString(&s.ToolchainFile, f.ToolchainFile)
	setString(&s.ExecutableName, f.ExecutableName)
	setString(&s.GeneratorCommand, f.GeneratorCommand)
	setBool(&s.StopOnFirstError, f.StopOnFirstError)
	setBool(&s.ExportCompileCommands, f.ExportCompileCommands)

	if f.Web != nil {
		setBool(&s.Web.Enabled, f.Web.Enabled)
		setString(&s.Web.SDKPath, f.Web.SDKPath)
		setString(&s.Web.Compiler, f.Web.Compiler)
		setString(&s.Web.NinjaPath, f.Web.NinjaPath)
	}
	return s, nil
}

func setString(dst, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst, src *bool) {
	if src != nil {
		*dst = *src
	}
}
