package config

// Config is the contents of a .repogen.yml file.
type Config struct {
	// Project describes the library the files are generated for.
	Project ProjectConfig `yaml:"project"`
	// Output controls where and how files are written.
	Output OutputConfig `yaml:"output"`
	// Files lists the generators to run. Empty means all of them.
	Files []string `yaml:"files,omitempty"`
	// BuildSettings are extra xcconfig settings merged over the presets.
	// Values are strings, numbers, booleans or lists of strings.
	BuildSettings map[string]any `yaml:"build_settings,omitempty"`
}

// ProjectConfig holds the project metadata shared by the generators.
type ProjectConfig struct {
	Name         string           `yaml:"name"`
	Summary      string           `yaml:"summary,omitempty"`
	Description  string           `yaml:"description,omitempty"`
	Author       string           `yaml:"author,omitempty"`
	Email        string           `yaml:"email,omitempty"`
	Homepage     string           `yaml:"homepage,omitempty"`
	Repository   string           `yaml:"repository,omitempty"`
	BundlePrefix string           `yaml:"bundle_prefix,omitempty"`
	License      string           `yaml:"license"`
	Year         int              `yaml:"year,omitempty"`
	Version      string           `yaml:"version"`
	SwiftVersion string           `yaml:"swift_version,omitempty"`
	Platforms    []PlatformConfig `yaml:"platforms,omitempty"`
	Pods         []PodConfig      `yaml:"pods,omitempty"`
}

// PlatformConfig is a deployment target such as ios 13.0.
type PlatformConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// PodConfig is a CocoaPods dependency.
type PodConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version,omitempty"`
	Git     string `yaml:"git,omitempty"`
	Branch  string `yaml:"branch,omitempty"`
	Path    string `yaml:"path,omitempty"`
}

// OutputConfig represents output settings.
type OutputConfig struct {
	// Root anchors relative file locations. Empty means the repository
	// root found by walking up from the working directory.
	Root string `yaml:"root,omitempty"`
	// Indent is the number of spaces per indentation level.
	Indent int `yaml:"indent"`
	// Overwrite is the overwrite policy: do-not-write, override or skip.
	Overwrite string `yaml:"overwrite"`
	// TrimTrailingSpaces removes spaces before line breaks.
	TrimTrailingSpaces bool `yaml:"trim_trailing_spaces"`
	// CollapseBlankLines reduces runs of blank lines to one.
	CollapseBlankLines bool `yaml:"collapse_blank_lines"`
	// FinalNewline terminates every file with a line break.
	FinalNewline bool `yaml:"final_newline"`
	// IntermediateDirs creates missing parent directories.
	IntermediateDirs bool `yaml:"intermediate_dirs"`
}
