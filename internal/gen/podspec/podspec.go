// Package podspec generates CocoaPods .podspec files.
package podspec

import (
	"regexp"
	"strings"

	"github.com/tacogips/repogen/internal/gen"
	"github.com/tacogips/repogen/internal/text"
	"github.com/tacogips/repogen/internal/textfile"
)

// Extension is appended to the caller supplied name.
const Extension = ".podspec"

// Dependency is an `s.dependency` line.
type Dependency struct {
	Name    string
	Version string
}

func (d Dependency) line(v string) string {
	if d.Version == "" {
		return v + ".dependency " + gen.Quote(d.Name)
	}
	return v + ".dependency " + gen.Quote(d.Name) + ", " + gen.Quote(d.Version)
}

// Platform is a deployment target.
type Platform struct {
	Name    string
	Version string
}

// Subspec is a nested `s.subspec` block.
type Subspec struct {
	Name         string
	SourceFiles  string
	Frameworks   []string
	Dependencies []Dependency
	Subspecs     []Subspec
}

var nonIdent = regexp.MustCompile(`[^a-z0-9_]`)

// variable returns the block parameter name used for the subspec.
func (s Subspec) variable() string {
	v := nonIdent.ReplaceAllString(strings.ToLower(s.Name), "")
	if v == "" || (v[0] >= '0' && v[0] <= '9') || v == "s" {
		return "ss"
	}
	return v
}

func (s Subspec) render(b *text.Buffer, parent string) {
	v := s.variable()
	if v == parent {
		v += "_" + v
	}
	b.Linef("%s.subspec %s do |%s|", parent, gen.Quote(s.Name), v)
	b.Block(func() {
		if s.SourceFiles != "" {
			b.Linef("%s.source_files = %s", v, gen.Quote(s.SourceFiles))
		}
		if len(s.Frameworks) > 0 {
			b.Linef("%s.frameworks = %s", v, quoteAll(s.Frameworks))
		}
		for _, d := range s.Dependencies {
			b.Line(d.line(v))
		}
		for _, nested := range s.Subspecs {
			nested.render(b, v)
		}
	})
	b.Line("end")
}

// Spec is a podspec. Name and Version are required.
type Spec struct {
	gen.Options

	Name         string
	Version      string
	Summary      string
	Description  string
	Homepage     string
	License      string
	Author       string
	AuthorEmail  string
	SourceURL    string
	SwiftVersion string
	Platforms    []Platform
	SourceFiles  string
	Frameworks   []string
	Dependencies []Dependency
	Subspecs     []Subspec
}

// New creates a spec and validates its required fields.
func New(opts gen.Options, name, version string) (*Spec, error) {
	s := &Spec{
		Options:     opts,
		Name:        name,
		Version:     version,
		License:     "MIT",
		SourceFiles: "Sources/**/*.swift",
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate reports blank required fields.
func (s *Spec) Validate() error {
	if gen.Blank(s.Name) {
		return textfile.InvalidParametersError("podspec.name", "must not be blank")
	}
	if gen.Blank(s.Version) {
		return textfile.InvalidParametersError("podspec.version", "must not be blank")
	}
	for _, p := range s.Platforms {
		if gen.Blank(p.Name) || gen.Blank(p.Version) {
			return textfile.InvalidParametersError("podspec.platforms", "platform name and version must not be blank")
		}
	}
	return nil
}

// Extension implements textfile.NamedFile.
func (s *Spec) Extension() string {
	return Extension
}

// Content implements textfile.Model.
func (s *Spec) Content() text.IndentedText {
	b := s.Buffer()
	b.Line("Pod::Spec.new do |s|")
	b.Block(func() {
		b.Line("s.name = " + gen.Quote(s.Name))
		b.Line("s.version = " + gen.Quote(s.Version))
		if s.Summary != "" {
			b.Line("s.summary = " + gen.Quote(s.Summary))
		}
		if s.Description != "" {
			b.Line("s.description = <<-DESC")
			b.Block(func() { b.Line(strings.TrimSpace(s.Description)) })
			b.Line("DESC")
		}
		if s.Homepage != "" {
			b.Line("s.homepage = " + gen.Quote(s.Homepage))
		}
		if s.License != "" {
			b.Linef("s.license = { :type => %s, :file => 'LICENSE' }", gen.Quote(s.License))
		}
		if s.Author != "" {
			b.Linef("s.author = { %s => %s }", gen.Quote(s.Author), gen.Quote(s.AuthorEmail))
		}
		if s.SourceURL != "" {
			b.Linef("s.source = { :git => %s, :tag => s.version.to_s }", gen.Quote(s.SourceURL))
		}
		if s.SwiftVersion != "" {
			b.Line("s.swift_version = " + gen.Quote(s.SwiftVersion))
		}

		if len(s.Platforms) > 0 {
			b.Blank()
			for _, p := range s.Platforms {
				b.Linef("s.%s.deployment_target = %s", p.Name, gen.Quote(p.Version))
			}
		}

		b.Blank()
		if s.SourceFiles != "" {
			b.Line("s.source_files = " + gen.Quote(s.SourceFiles))
		}
		if len(s.Frameworks) > 0 {
			b.Line("s.frameworks = " + quoteAll(s.Frameworks))
		}
		for _, d := range s.Dependencies {
			b.Line(d.line("s"))
		}

		for _, sub := range s.Subspecs {
			b.Blank()
			sub.render(b, "s")
		}
	})
	b.Line("end")
	return b.Text()
}

func quoteAll(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = gen.Quote(item)
	}
	return strings.Join(quoted, ", ")
}
