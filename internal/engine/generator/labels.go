package generator

// Task labels. The numeric prefix orders tasks in the editor's picker and
// the full label is the key other tasks reference in dependsOn.
const (
	LabelSwitchAlias        = "000. Switch build alias"
	LabelRemoveVcpkgFolders = "001. Remove vcpkg folders"
	LabelRemoveBuildFolder  = "002. Remove build folder"
	LabelSubmoduleUpdate    = "003. Git submodule update"
	LabelInstallVcpkg       = "004. Install vcpkg as subfolder"
	LabelClearConsole       = "005. Clear console"
	LabelConfigure          = "010. Configure"
	LabelBuild              = "020. + Build"
	LabelCopyConfig         = "030. + Copy config.json"
	LabelCopyAssets         = "040. + Copy assets"
	LabelBuildAndRun        = "050. + Run"
	LabelPack               = "060. + Pack"
	LabelRun                = "070. Run"
	LabelServeWeb           = "080. Serve web build"
	LabelOpenBrowser        = "090. Open in browser"
)

// Status-bar labels.
const (
	StatusBarBuild = "Build"
	StatusBarRun   = "Run"
	StatusBarPack  = "Pack"
	StatusBarServe = "Serve"
)

// DesktopOnlyLabels returns the labels generated only when web is disabled.
func DesktopOnlyLabels() []string {
	return []string{LabelCopyConfig, LabelCopyAssets, LabelBuildAndRun, LabelRun}
}

// WebOnlyLabels returns the labels generated only when web is enabled.
func WebOnlyLabels() []string {
	return []string{LabelServeWeb, LabelOpenBrowser}
}
