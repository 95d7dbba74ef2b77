package app

import (
	"path"
	"strings"

	"github.com/tacogips/repogen/internal/config"
	"github.com/tacogips/repogen/internal/gen/fastlane"
	"github.com/tacogips/repogen/internal/gen/gitignore"
	"github.com/tacogips/repogen/internal/gen/license"
	"github.com/tacogips/repogen/internal/gen/pages"
	"github.com/tacogips/repogen/internal/gen/plist"
	"github.com/tacogips/repogen/internal/gen/podfile"
	"github.com/tacogips/repogen/internal/gen/podspec"
	"github.com/tacogips/repogen/internal/gen/readme"
	"github.com/tacogips/repogen/internal/gen/swiftlint"
	"github.com/tacogips/repogen/internal/gen/xcconfig"
	"github.com/tacogips/repogen/internal/textfile"
)

// ConfigsDir holds the generated xcconfig files.
const ConfigsDir = "Configs"

// Builder prepares the write of one file from the configuration.
type Builder func(cfg *config.Config, opts []textfile.Option) (*textfile.PendingFile, error)

// Entry is a named generator.
type Entry struct {
	Name        string
	Description string
	Build       Builder
}

var registry = []Entry{
	{"gitignore", ".gitignore for a Swift framework", buildGitignore},
	{"license", "LICENSE text", buildLicense},
	{"readme", "README.md with badges and install instructions", buildReadme},
	{"podspec", "<name>.podspec", buildPodspec},
	{"podfile", "Podfile with a test target", buildPodfile},
	{"fastlane", "fastlane/Fastfile with test, lint and release lanes", buildFastlane},
	{"swiftlint", ".swiftlint.yml", buildSwiftlint},
	{"pages", "docs/_config.yml for GitHub Pages", buildPages},
	{"plist", "Sources/Info.plist", buildPlist},
	{"xcconfig-base", "Configs/Base.xcconfig", buildXcconfigBase},
	{"xcconfig-debug", "Configs/Debug.xcconfig", buildXcconfigDebug},
	{"xcconfig-release", "Configs/Release.xcconfig", buildXcconfigRelease},
}

// Entries returns every registered generator in generation order.
func Entries() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds a generator by name, ignoring case.
func Lookup(name string) (Entry, bool) {
	for _, e := range registry {
		if strings.EqualFold(e.Name, strings.TrimSpace(name)) {
			return e, true
		}
	}
	return Entry{}, false
}

func primaryPlatform(cfg *config.Config) config.PlatformConfig {
	if len(cfg.Project.Platforms) > 0 {
		return cfg.Project.Platforms[0]
	}
	return config.PlatformConfig{Name: "ios"}
}

func holder(cfg *config.Config) string {
	if cfg.Project.Author != "" {
		return cfg.Project.Author
	}
	return cfg.Project.Name
}

func repository(cfg *config.Config) string {
	if cfg.Project.Repository != "" {
		return cfg.Project.Repository
	}
	return path.Join(holder(cfg), cfg.Project.Name)
}

func buildGitignore(_ *config.Config, opts []textfile.Option) (*textfile.PendingFile, error) {
	return textfile.ForFixed(gitignore.ForFramework(), opts...), nil
}

func buildLicense(cfg *config.Config, opts []textfile.Option) (*textfile.PendingFile, error) {
	l, err := license.New(cfg.GenOptions(), cfg.Project.License, holder(cfg), cfg.Project.Year)
	if err != nil {
		return nil, err
	}
	return textfile.ForFixed(l, opts...), nil
}

func buildReadme(cfg *config.Config, opts []textfile.Option) (*textfile.PendingFile, error) {
	p := cfg.Project
	r, err := readme.ForLibrary(cfg.GenOptions(), p.Name, p.Description, repository(cfg), p.Version, p.License)
	if err != nil {
		return nil, err
	}
	if p.Author != "" {
		author := p.Author
		if p.Email != "" {
			author += ", " + p.Email
		}
		r.Author = author
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return textfile.ForFixed(r, opts...), nil
}

func buildPodspec(cfg *config.Config, opts []textfile.Option) (*textfile.PendingFile, error) {
	p := cfg.Project
	s, err := podspec.New(cfg.GenOptions(), p.Name, p.Version)
	if err != nil {
		return nil, err
	}
	s.Summary = p.Summary
	s.Description = p.Description
	s.Homepage = p.Homepage
	if p.License != "" {
		s.License = p.License
	}
	s.Author = p.Author
	s.AuthorEmail = p.Email
	s.SourceURL = "https://github.com/" + repository(cfg) + ".git"
	s.SwiftVersion = p.SwiftVersion
	for _, pl := range p.Platforms {
		s.Platforms = append(s.Platforms, podspec.Platform{Name: pl.Name, Version: pl.Version})
	}
	for _, pod := range p.Pods {
		s.Dependencies = append(s.Dependencies, podspec.Dependency{Name: pod.Name, Version: pod.Version})
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return textfile.ForNamed(s, p.Name, opts...), nil
}

func buildPodfile(cfg *config.Config, opts []textfile.Option) (*textfile.PendingFile, error) {
	pl := primaryPlatform(cfg)
	pods := make([]podfile.Pod, 0, len(cfg.Project.Pods))
	for _, pod := range cfg.Project.Pods {
		pods = append(pods, podfile.Pod{
			Name:    pod.Name,
			Version: pod.Version,
			Git:     pod.Git,
			Branch:  pod.Branch,
			Path:    pod.Path,
		})
	}
	f := podfile.ForLibrary(cfg.GenOptions(), cfg.Project.Name, pl.Name, pl.Version, pods...)
	return textfile.ForFixed(f, opts...), nil
}

func buildFastlane(cfg *config.Config, opts []textfile.Option) (*textfile.PendingFile, error) {
	f := fastlane.ForFramework(cfg.GenOptions(), primaryPlatform(cfg).Name, cfg.Project.Name)
	return textfile.ForFixed(f, opts...), nil
}

func buildSwiftlint(cfg *config.Config, opts []textfile.Option) (*textfile.PendingFile, error) {
	return textfile.ForFixed(swiftlint.Default(cfg.GenOptions()), opts...), nil
}

func buildPages(cfg *config.Config, opts []textfile.Option) (*textfile.PendingFile, error) {
	c, err := pages.Default(cfg.GenOptions(), cfg.Project.Name, cfg.Project.Summary)
	if err != nil {
		return nil, err
	}
	return textfile.ForFixed(c, opts...), nil
}

func buildPlist(cfg *config.Config, opts []textfile.Option) (*textfile.PendingFile, error) {
	f, err := plist.ForFramework(cfg.GenOptions(), cfg.Project.BundlePrefix, cfg.Project.Name, cfg.Project.Version)
	if err != nil {
		return nil, err
	}
	return textfile.ForNamed(f, "Info", append(opts, textfile.WithDir("Sources"))...), nil
}

func buildXcconfigBase(cfg *config.Config, opts []textfile.Option) (*textfile.PendingFile, error) {
	p := cfg.Project
	bundleID, err := plist.BundleIdentifier(p.BundlePrefix, p.Name)
	if err != nil {
		return nil, err
	}
	f, err := xcconfig.BaseFramework(cfg.GenOptions(), p.Name, bundleID, p.SwiftVersion, deploymentTarget(cfg, "ios"))
	if err != nil {
		return nil, err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	f.Override(settings)
	return textfile.ForNamed(f, "Base", append(opts, textfile.WithDir(ConfigsDir))...), nil
}

func buildXcconfigDebug(cfg *config.Config, opts []textfile.Option) (*textfile.PendingFile, error) {
	f := xcconfig.Debug(cfg.GenOptions(), "Base"+xcconfig.Extension)
	return textfile.ForNamed(f, "Debug", append(opts, textfile.WithDir(ConfigsDir))...), nil
}

func buildXcconfigRelease(cfg *config.Config, opts []textfile.Option) (*textfile.PendingFile, error) {
	f := xcconfig.Release(cfg.GenOptions(), "Base"+xcconfig.Extension)
	return textfile.ForNamed(f, "Release", append(opts, textfile.WithDir(ConfigsDir))...), nil
}

func deploymentTarget(cfg *config.Config, platform string) string {
	for _, pl := range cfg.Project.Platforms {
		if strings.EqualFold(pl.Name, platform) {
			return pl.Version
		}
	}
	return ""
}
