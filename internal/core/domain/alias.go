package domain

import "go.trai.ch/zerr"

// Alias is a short name for a (platform, build type, web) combination.
type Alias string

const (
	// AliasCustom names any combination without a dedicated alias.
	AliasCustom Alias = "custom"
	// AliasDebug is a desktop debug build.
	AliasDebug Alias = "debug"
	// AliasRelease is a desktop release build.
	AliasRelease Alias = "release"
	// AliasWeb is a debug build for the browser.
	AliasWeb Alias = "web"
)

// SelectableAliases returns the aliases accepted on the command line.
func SelectableAliases() []Alias {
	return []Alias{AliasRelease, AliasDebug, AliasWeb}
}

// ParseAlias parses a command line alias. "custom" is not selectable.
func ParseAlias(s string) (Alias, error) {
	for _, a := range SelectableAliases() {
		if string(a) == s {
			return a, nil
		}
	}
	return "", zerr.With(ErrUnknownAlias, "alias", s)
}

// Next returns the alias the switch task moves to.
// The cycle is custom -> debug -> release -> web -> debug.
func (a Alias) Next() Alias {
	switch a {
	case AliasCustom, AliasWeb:
		return AliasDebug
	case AliasDebug:
		return AliasRelease
	case AliasRelease:
		return AliasWeb
	}
	panic(zerr.With(ErrUnknownAlias, "alias", string(a)))
}

// Overrides returns the settings overrides selected by the alias.
// The platform is never part of an alias.
func (a Alias) Overrides() SettingsOverrides {
	var (
		buildType BuildType
		web       bool
	)
	switch a {
	case AliasDebug:
		buildType, web = BuildTypeDebug, false
	case AliasRelease:
		buildType, web = BuildTypeRelease, false
	case AliasWeb:
		buildType, web = BuildTypeDebug, true
	case AliasCustom:
		return SettingsOverrides{}
	default:
		panic(zerr.With(ErrUnknownAlias, "alias", string(a)))
	}
	return SettingsOverrides{BuildType: &buildType, Web: &web}
}

type aliasKey struct {
	platform  Platform
	buildType BuildType
	web       bool
}

var aliases = map[aliasKey]Alias{
	{PlatformWindows, BuildTypeDebug, false}:   AliasDebug,
	{PlatformWindows, BuildTypeRelease, false}: AliasRelease,
	{PlatformWindows, BuildTypeDebug, true}:    AliasWeb,
	{PlatformLinux, BuildTypeDebug, false}:     AliasDebug,
	{PlatformLinux, BuildTypeRelease, false}:   AliasRelease,
	{PlatformLinux, BuildTypeDebug, true}:      AliasWeb,
}

// Alias returns the alias describing s, or AliasCustom when none matches.
func (s Settings) Alias() Alias {
	if a, ok := aliases[aliasKey{s.Platform, s.BuildType, s.Web.Enabled}]; ok {
		return a
	}
	return AliasCustom
}
