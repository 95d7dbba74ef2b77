// Package podfile generates CocoaPods Podfiles.
package podfile

import (
	"strings"

	"github.com/tacogips/repogen/internal/gen"
	"github.com/tacogips/repogen/internal/text"
)

// FileName is the intrinsic name of the generated file.
const FileName = "Podfile"

// Pod is one dependency line.
type Pod struct {
	Name    string
	Version string
	Git     string
	Branch  string
	Path    string
}

// Render writes the pod declaration.
func (p Pod) Render(ind text.Indentation) text.IndentedText {
	parts := []string{"pod " + gen.Quote(p.Name)}
	switch {
	case p.Path != "":
		parts = append(parts, ":path => "+gen.Quote(p.Path))
	case p.Git != "":
		parts = append(parts, ":git => "+gen.Quote(p.Git))
		if p.Branch != "" {
			parts = append(parts, ":branch => "+gen.Quote(p.Branch))
		}
	case p.Version != "":
		parts = append(parts, gen.Quote(p.Version))
	}
	return text.IndentedText{{Indent: ind, Content: strings.Join(parts, ", ")}}
}

// Target is a target block. Nested targets inherit the enclosing pods.
type Target struct {
	Name               string
	Pods               []Pod
	Targets            []Target
	InheritSearchPaths bool
}

// Render writes the target block with its pods and nested targets one
// level deeper.
func (t Target) Render(ind text.Indentation) text.IndentedText {
	b := text.NewBufferAt(ind)
	b.Linef("target %s do", gen.Quote(t.Name))
	b.Block(func() {
		if t.InheritSearchPaths {
			b.Line("inherit! :search_paths")
		}
		for _, p := range t.Pods {
			b.AppendPiece(p)
		}
		for _, nested := range t.Targets {
			if b.Len() > 1 {
				b.Blank()
			}
			b.AppendPiece(nested)
		}
	})
	b.Line("end")
	return b.Text()
}

// File is a Podfile.
type File struct {
	gen.Options

	Platform        string
	PlatformVersion string
	UseFrameworks   bool
	Workspace       string
	Sources         []string
	Targets         []Target
}

// New creates an empty Podfile for platform.
func New(opts gen.Options, platform, version string) *File {
	return &File{Options: opts, Platform: platform, PlatformVersion: version, UseFrameworks: true}
}

// ForLibrary is the preset for a library with a unit test target nested
// in the main target.
func ForLibrary(opts gen.Options, name, platform, version string, pods ...Pod) *File {
	f := New(opts, platform, version)
	f.Workspace = name
	f.AddTarget(Target{
		Name: name,
		Pods: pods,
		Targets: []Target{
			{Name: name + "Tests", InheritSearchPaths: true},
		},
	})
	return f
}

// AddTarget appends a target block.
func (f *File) AddTarget(t Target) *File {
	f.Targets = append(f.Targets, t)
	return f
}

// FileName implements textfile.FixedNameFile.
func (f *File) FileName() string {
	return FileName
}

// Content implements textfile.Model.
func (f *File) Content() text.IndentedText {
	b := f.Buffer()
	for _, s := range f.Sources {
		b.Line("source " + gen.Quote(s))
	}
	if len(f.Sources) > 0 {
		b.Blank()
	}
	if f.Platform != "" {
		if f.PlatformVersion != "" {
			b.Linef("platform :%s, %s", f.Platform, gen.Quote(f.PlatformVersion))
		} else {
			b.Linef("platform :%s", f.Platform)
		}
	}
	if f.UseFrameworks {
		b.Line("use_frameworks!")
	}
	if f.Workspace != "" {
		b.Line("workspace " + gen.Quote(f.Workspace))
	}
	for _, t := range f.Targets {
		b.Blank()
		b.AppendPiece(t)
	}
	return b.Text()
}
