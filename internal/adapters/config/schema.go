package config

// SettingsFile represents the structure of the taskgen.yaml settings file.
// Every field is optional; absent fields keep the built-in default.
type SettingsFile struct {
	Platform              *string  `yaml:"platform"`
	BuildType             *string  `yaml:"buildType"`
	Compiler              *string  `yaml:"compiler"`
	MakeTool              *string  `yaml:"makeTool"`
	ToolchainFile         *string  `yaml:"toolchainFile"`
	StopOnFirstError      *bool    `yaml:"stopOnFirstError"`
	ExportCompileCommands *bool    `yaml:"exportCompileCommands"`
	ExecutableName        *string  `yaml:"executableName"`
	GeneratorCommand      *string  `yaml:"generatorCommand"`
	Web                   *WebFile `yaml:"web"`
}

// WebFile represents the web section of the settings file.
type WebFile struct {
	Enabled   *bool   `yaml:"enabled"`
	SDKPath   *string `yaml:"sdkPath"`
	Compiler  *string `yaml:"compiler"`
	NinjaPath *string `yaml:"ninjaPath"`
}
