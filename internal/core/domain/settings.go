package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// Platform is the operating system the generated commands target.
type Platform int

const (
	// PlatformWindows targets cmd.exe and the MSVC-style vcpkg triplet.
	PlatformWindows Platform = iota
	// PlatformLinux targets a POSIX shell.
	PlatformLinux
)

// Platforms returns every supported platform.
func Platforms() []Platform {
	return []Platform{PlatformWindows, PlatformLinux}
}

// PlatformForOS maps a GOOS value to the platform generated commands should target.
func PlatformForOS(goos string) Platform {
	if goos == "windows" {
		return PlatformWindows
	}
	return PlatformLinux
}

// ParsePlatform parses the text form of a platform.
func ParsePlatform(s string) (Platform, error) {
	for _, p := range Platforms() {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, zerr.With(ErrInvalidPlatform, "platform", s)
}

func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return "windows"
	case PlatformLinux:
		return "linux"
	}
	panic(unmapped("platform", int(p)))
}

// BuildType is the CMake build configuration.
type BuildType int

const (
	// BuildTypeDebug builds with debug information and no optimizations.
	BuildTypeDebug BuildType = iota
	// BuildTypeRelease builds an optimized binary.
	BuildTypeRelease
)

// BuildTypes returns every supported build type.
func BuildTypes() []BuildType {
	return []BuildType{BuildTypeDebug, BuildTypeRelease}
}

// ParseBuildType parses the text form of a build type.
func ParseBuildType(s string) (BuildType, error) {
	for _, bt := range BuildTypes() {
		if strings.EqualFold(s, bt.String()) {
			return bt, nil
		}
	}
	return 0, zerr.With(ErrInvalidBuildType, "build_type", s)
}

func (b BuildType) String() string {
	switch b {
	case BuildTypeDebug:
		return "debug"
	case BuildTypeRelease:
		return "release"
	}
	panic(unmapped("build type", int(b)))
}

// Settings describes one generation run. It is built once, passed by value,
// and never mutated afterwards.
type Settings struct {
	Platform              Platform
	BuildType             BuildType
	Compiler              string
	MakeTool              string
	ToolchainFile         string
	StopOnFirstError      bool
	ExportCompileCommands bool
	ExecutableName        string
	// GeneratorCommand is how the switch-alias task re-invokes this tool.
	GeneratorCommand string
	// GeneratorFlags are appended after the alias when the switch-alias task
	// re-invokes this tool, e.g. "--platform windows". Empty when the run used
	// no flags that change the output.
	GeneratorFlags string
	Web            WebSettings
}

// WebSettings configures the Emscripten toolchain used for browser builds.
type WebSettings struct {
	Enabled   bool
	SDKPath   string
	Compiler  string
	NinjaPath string
}

// SettingsOverrides are the values a caller may force on top of the defaults.
// Nil fields leave the current value untouched.
type SettingsOverrides struct {
	Platform  *Platform
	BuildType *BuildType
	Web       *bool
}

// DefaultSettings returns the built-in settings for a host running goos.
func DefaultSettings(goos string) Settings {
	return Settings{
		Platform:              PlatformForOS(goos),
		BuildType:             BuildTypeDebug,
		Compiler:              "clang++",
		MakeTool:              "Ninja",
		ToolchainFile:         "vcpkg/scripts/buildsystems/vcpkg.cmake",
		StopOnFirstError:      true,
		ExportCompileCommands: true,
		ExecutableName:        "LD55_Hungry_Portals",
		GeneratorCommand:      "taskgen",
		Web: WebSettings{
			Enabled:   false,
			SDKPath:   "emsdk",
			Compiler:  "em++",
			NinjaPath: "ninja",
		},
	}
}

// Apply returns a copy of s with the non-nil overrides applied.
func (s Settings) Apply(o SettingsOverrides) Settings {
	if o.Platform != nil {
		s.Platform = *o.Platform
	}
	if o.BuildType != nil {
		s.BuildType = *o.BuildType
	}
	if o.Web != nil {
		s.Web.Enabled = *o.Web
	}
	return s
}

// ResolveSettings applies overrides to base and validates the result.
// It fails before any task is generated when the web toolchain is missing.
func ResolveSettings(base Settings, o SettingsOverrides, stat StatFunc) (Settings, error) {
	s := base.Apply(o)
	if err := s.Web.Validate(stat); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// BuildFolder returns the CMake binary directory relative to the project root.
func (s Settings) BuildFolder() string {
	switch s.BuildType {
	case BuildTypeDebug:
		if s.Web.Enabled {
			return "build/debug_web"
		}
		return "build/debug"
	case BuildTypeRelease:
		if s.Web.Enabled {
			return "build/release_web"
		}
		return "build/release"
	}
	panic(unmapped("build type", int(s.BuildType)))
}

// BuildTypeName returns the CMAKE_BUILD_TYPE value.
func (s Settings) BuildTypeName() string {
	switch s.BuildType {
	case BuildTypeDebug:
		return "Debug"
	case BuildTypeRelease:
		return "Release"
	}
	panic(unmapped("build type", int(s.BuildType)))
}

// Triplet returns the vcpkg target triplet.
func (s Settings) Triplet() string {
	if s.Web.Enabled {
		return "wasm32-emscripten"
	}
	switch s.Platform {
	case PlatformWindows:
		return "x64-windows"
	case PlatformLinux:
		return "x64-linux"
	}
	panic(unmapped("platform", int(s.Platform)))
}

// CompilerName returns the C++ compiler handed to CMake.
func (s Settings) CompilerName() string {
	if s.Web.Enabled {
		return s.Web.Compiler
	}
	return s.Compiler
}

// SetupEnv returns the shell prefix that activates the Emscripten SDK.
// It is empty for desktop builds and ends with "&& " otherwise.
func (s Settings) SetupEnv() string {
	if !s.Web.Enabled {
		return ""
	}
	switch s.Platform {
	case PlatformWindows:
		return "call " + s.NativePath(s.Web.SDKPath+"/emsdk_env.bat") + " && "
	case PlatformLinux:
		return "source " + s.Web.SDKPath + "/emsdk_env.sh && "
	}
	panic(unmapped("platform", int(s.Platform)))
}

// VcpkgExtraArgs returns the CMake arguments that select the vcpkg triplet
// and, for web builds, chain-load the Emscripten toolchain.
func (s Settings) VcpkgExtraArgs() string {
	if !s.Web.Enabled {
		return "-DVCPKG_TARGET_TRIPLET=" + s.Triplet()
	}
	return fmt.Sprintf(
		"-DVCPKG_CHAINLOAD_TOOLCHAIN_FILE=%s/upstream/emscripten/cmake/Modules/Platform/Emscripten.cmake -DVCPKG_TARGET_TRIPLET=%s -DCMAKE_MAKE_PROGRAM=%s",
		s.Web.SDKPath, s.Triplet(), s.Web.NinjaPath,
	)
}

// PythonPath returns the interpreter used to run the collaborator scripts.
func (s Settings) PythonPath() string {
	switch s.Platform {
	case PlatformWindows:
		return "python"
	case PlatformLinux:
		return "python3"
	}
	panic(unmapped("platform", int(s.Platform)))
}

// ArchiverPath returns the 7-Zip executable.
func (s Settings) ArchiverPath() string {
	switch s.Platform {
	case PlatformWindows:
		return `C:\Program Files\7-Zip\7z.exe`
	case PlatformLinux:
		return "7z"
	}
	panic(unmapped("platform", int(s.Platform)))
}

// ExecutableFile returns the file name of the game binary.
func (s Settings) ExecutableFile() string {
	switch s.Platform {
	case PlatformWindows:
		return s.ExecutableName + ".exe"
	case PlatformLinux:
		return s.ExecutableName
	}
	panic(unmapped("platform", int(s.Platform)))
}

// NativePath rewrites a slash-separated path for the target shell.
func (s Settings) NativePath(path string) string {
	switch s.Platform {
	case PlatformWindows:
		return strings.ReplaceAll(path, "/", `\`)
	case PlatformLinux:
		return path
	}
	panic(unmapped("platform", int(s.Platform)))
}

// WebLabel returns the collaborator argument naming the build flavour.
func (s Settings) WebLabel() string {
	if s.Web.Enabled {
		return "web"
	}
	return "desktop"
}

func unmapped(kind string, value int) error {
	return zerr.With(zerr.New("unmapped "+kind), "value", value)
}
