package generator

import (
	"fmt"
	"strings"

	"github.com/ld55/taskgen/internal/core/domain"
)

// Generator builds one task from the run's settings. Generators are pure.
type Generator func(domain.Settings) domain.Task

const (
	workspaceFolder = "${workspaceFolder}"
	vcpkgRepo       = "https://github.com/microsoft/vcpkg"
	packScript      = "scripts/pack_binaries.py"
	renameScript    = "scripts/rename_to_index_html.py"
)

// SwitchAlias regenerates the tasks file for the alias following the current one.
func SwitchAlias(s domain.Settings) domain.Task {
	return domain.Task{
		Label:   LabelSwitchAlias,
		Command: strings.TrimSpace(s.GeneratorCommand + " " + string(s.Alias().Next()) + " " + s.GeneratorFlags),
	}
}

// SwitchAliasStatusBar is the status-bar label of the switch task.
func SwitchAliasStatusBar(s domain.Settings) string {
	return "Alias: " + string(s.Alias())
}

func RemoveVcpkgFolders(s domain.Settings) domain.Task {
	return domain.Task{
		Label:   LabelRemoveVcpkgFolders,
		Command: removeDirs(s.Platform, "vcpkg", "vcpkg_installed"),
	}
}

func RemoveBuildFolder(s domain.Settings) domain.Task {
	return domain.Task{
		Label:   LabelRemoveBuildFolder,
		Command: removeDirs(s.Platform, "build"),
	}
}

func GitSubmoduleUpdate(domain.Settings) domain.Task {
	return domain.Task{
		Label:   LabelSubmoduleUpdate,
		Command: "git submodule update --init --recursive",
	}
}

// InstallVcpkg clones vcpkg next to the sources, bootstraps it and installs
// the manifest dependencies for the current triplet.
func InstallVcpkg(s domain.Settings) domain.Task {
	var bootstrap string
	switch s.Platform {
	case domain.PlatformWindows:
		bootstrap = `.\vcpkg\bootstrap-vcpkg.bat && .\vcpkg\vcpkg`
	case domain.PlatformLinux:
		bootstrap = "./vcpkg/bootstrap-vcpkg.sh && ./vcpkg/vcpkg"
	default:
		panic(fmt.Sprintf("unmapped platform %d", s.Platform))
	}
	return domain.Task{
		Label:   LabelInstallVcpkg,
		Command: fmt.Sprintf("git clone %s && %s install --triplet=%s", vcpkgRepo, bootstrap, s.Triplet()),
	}
}

func ClearConsole(s domain.Settings) domain.Task {
	cmd := "clear"
	if s.Platform == domain.PlatformWindows {
		cmd = "cls"
	}
	return domain.Task{Label: LabelClearConsole, Command: cmd}
}

// Configure runs the CMake configure step. Web builds always start from an
// empty build folder since reconfiguring in place with the Emscripten
// toolchain leaves a broken cache.
func Configure(s domain.Settings) domain.Task {
	var b strings.Builder
	b.WriteString(s.SetupEnv())
	fmt.Fprintf(&b, "cmake -S . -B %s -DCMAKE_BUILD_TYPE=%s -G%s -DCMAKE_CXX_COMPILER=%s -DCMAKE_TOOLCHAIN_FILE=%s %s",
		s.BuildFolder(),
		s.BuildTypeName(),
		s.MakeTool,
		s.CompilerName(),
		s.NativePath(s.ToolchainFile),
		s.VcpkgExtraArgs(),
	)
	if s.ExportCompileCommands {
		b.WriteString(" -DCMAKE_EXPORT_COMPILE_COMMANDS=ON")
	}

	t := domain.Task{Label: LabelConfigure, Command: b.String()}
	if s.Web.Enabled {
		t.DependsOn = []string{LabelRemoveBuildFolder}
	}
	return t
}

// Build compiles the configured tree. For web it also renames the generated
// page to index.html.
func Build(s domain.Settings) domain.Task {
	cmd := s.SetupEnv() + "cmake --build " + s.BuildFolder()
	if s.StopOnFirstError {
		cmd += " -- -k 0"
	}
	if s.Web.Enabled {
		cmd += fmt.Sprintf(" && %s %s %s %s", s.PythonPath(), renameScript, workspaceFolder, s.BuildFolder())
	}
	return domain.Task{
		Label:     LabelBuild,
		Command:   cmd,
		DependsOn: []string{LabelConfigure},
	}
}

func CopyConfig(s domain.Settings) domain.Task {
	return domain.Task{
		Label:     LabelCopyConfig,
		Command:   fmt.Sprintf("cmake -E copy config.json %s/src/config.json", s.BuildFolder()),
		DependsOn: []string{LabelBuild},
	}
}

func CopyAssets(s domain.Settings) domain.Task {
	return domain.Task{
		Label:     LabelCopyAssets,
		Command:   fmt.Sprintf("cmake -E copy_directory assets %s/src/assets", s.BuildFolder()),
		DependsOn: []string{LabelCopyConfig},
	}
}

// BuildAndRun starts the game once the build and its data files are in place.
func BuildAndRun(s domain.Settings) domain.Task {
	return domain.Task{
		Label:     LabelBuildAndRun,
		Command:   executablePath(s),
		DependsOn: []string{LabelCopyAssets},
	}
}

// Pack archives the build output with the packing script. Web builds have
// no copy steps and are packed straight after the build.
func Pack(s domain.Settings) domain.Task {
	archive := s.ExecutableName + "_" + s.BuildTypeName()
	after := LabelCopyAssets
	if s.Web.Enabled {
		archive += "_web"
		after = LabelBuild
	}
	return domain.Task{
		Label: LabelPack,
		Command: fmt.Sprintf(`%s %s "%s" %s %s %s %s`,
			s.PythonPath(), packScript, s.ArchiverPath(), workspaceFolder, s.BuildFolder(), archive, s.WebLabel()),
		DependsOn: []string{after},
	}
}

// Run starts the last debug build without rebuilding.
func Run(s domain.Settings) domain.Task {
	debug := s
	debug.BuildType = domain.BuildTypeDebug
	debug.Web.Enabled = false
	return domain.Task{Label: LabelRun, Command: executablePath(debug)}
}

func ServeWeb(s domain.Settings) domain.Task {
	return domain.Task{
		Label:   LabelServeWeb,
		Command: fmt.Sprintf("%s -m http.server %d --directory %s/src", s.PythonPath(), domain.WebServerPort, s.BuildFolder()),
	}
}

func OpenBrowser(s domain.Settings) domain.Task {
	opener := "xdg-open"
	if s.Platform == domain.PlatformWindows {
		opener = "start"
	}
	return domain.Task{
		Label:   LabelOpenBrowser,
		Command: fmt.Sprintf("%s http://localhost:%d/index.html", opener, domain.WebServerPort),
	}
}

func removeDirs(p domain.Platform, dirs ...string) string {
	switch p {
	case domain.PlatformWindows:
		return "rmdir /s /q " + strings.Join(dirs, " ")
	case domain.PlatformLinux:
		return "rm -rf " + strings.Join(dirs, " ")
	}
	panic(fmt.Sprintf("unmapped platform %d", p))
}

func executablePath(s domain.Settings) string {
	return fmt.Sprintf("%s/%s/src/%s", workspaceFolder, s.BuildFolder(), s.ExecutableFile())
}
