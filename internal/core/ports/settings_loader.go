package ports

import "github.com/ld55/taskgen/internal/core/domain"

// SettingsLoader defines the interface for building the base settings of a run.
//
//go:generate mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load returns the built-in defaults overlaid with the settings file.
	// An empty path selects the default file in root, which may be absent.
	// A non-empty path must exist.
	Load(root, path string) (domain.Settings, error)
}
