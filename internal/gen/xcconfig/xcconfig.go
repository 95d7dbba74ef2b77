// Package xcconfig generates Xcode build configuration files.
package xcconfig

import (
	"github.com/tacogips/repogen/internal/buildsettings"
	"github.com/tacogips/repogen/internal/gen"
	"github.com/tacogips/repogen/internal/text"
	"github.com/tacogips/repogen/internal/textfile"
)

// Extension is appended to the caller supplied name.
const Extension = ".xcconfig"

// File is an .xcconfig file.
type File struct {
	gen.Options

	Comment  string
	Includes []string
	Settings *buildsettings.Settings
}

// New returns an empty configuration file.
func New(opts gen.Options) *File {
	return &File{Options: opts, Settings: buildsettings.New()}
}

// BaseFramework is the preset shared by every configuration of a
// framework target.
func BaseFramework(opts gen.Options, productName, bundleID, swiftVersion, deploymentTarget string) (*File, error) {
	if gen.Blank(productName) {
		return nil, textfile.InvalidParametersError("xcconfig.product_name", "must not be blank")
	}
	f := New(opts)
	f.Comment = "Base settings for " + productName
	f.Settings.
		Set("PRODUCT_NAME", buildsettings.String(productName)).
		Set("PRODUCT_BUNDLE_IDENTIFIER", buildsettings.String(bundleID)).
		Set("INFOPLIST_FILE", buildsettings.String("Sources/Info.plist")).
		Set("DEFINES_MODULE", buildsettings.Bool(true)).
		Set("SKIP_INSTALL", buildsettings.Bool(true)).
		Set("APPLICATION_EXTENSION_API_ONLY", buildsettings.Bool(true)).
		Set("LD_RUNPATH_SEARCH_PATHS", buildsettings.List("$(inherited)", "@executable_path/Frameworks", "@loader_path/Frameworks")).
		Set("CURRENT_PROJECT_VERSION", buildsettings.Number(1))
	if swiftVersion != "" {
		f.Settings.Set("SWIFT_VERSION", buildsettings.String(swiftVersion))
	}
	if deploymentTarget != "" {
		f.Settings.Set("IPHONEOS_DEPLOYMENT_TARGET", buildsettings.String(deploymentTarget))
	}
	return f, nil
}

// Debug is the preset for the Debug configuration including base.
func Debug(opts gen.Options, base string) *File {
	f := New(opts)
	f.Includes = []string{base}
	f.Settings.
		Set("SWIFT_OPTIMIZATION_LEVEL", buildsettings.String("-Onone")).
		Set("SWIFT_ACTIVE_COMPILATION_CONDITIONS", buildsettings.List("DEBUG")).
		Set("ENABLE_TESTABILITY", buildsettings.Bool(true)).
		Set("ONLY_ACTIVE_ARCH", buildsettings.Bool(true))
	return f
}

// Release is the preset for the Release configuration including base.
func Release(opts gen.Options, base string) *File {
	f := New(opts)
	f.Includes = []string{base}
	f.Settings.
		Set("SWIFT_OPTIMIZATION_LEVEL", buildsettings.String("-O")).
		Set("SWIFT_COMPILATION_MODE", buildsettings.String("wholemodule")).
		Set("ENABLE_TESTABILITY", buildsettings.Bool(false)).
		Set("VALIDATE_PRODUCT", buildsettings.Bool(true))
	return f
}

// Override merges settings on top of the file's own, last write winning.
func (f *File) Override(s *buildsettings.Settings) *File {
	f.Settings.Merge(s)
	return f
}

// Extension implements textfile.NamedFile.
func (f *File) Extension() string {
	return Extension
}

// Content implements textfile.Model.
func (f *File) Content() text.IndentedText {
	b := f.Buffer()
	if f.Comment != "" {
		b.Line("// " + f.Comment)
		b.Blank()
	}
	for _, inc := range f.Includes {
		b.Linef("#include %q", inc)
	}
	if len(f.Includes) > 0 {
		b.Blank()
	}
	for _, key := range f.Settings.Keys() {
		v, _ := f.Settings.Get(key)
		b.Linef("%s = %s", key, v.Render())
	}
	return b.Text()
}
