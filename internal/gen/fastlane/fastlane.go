// Package fastlane generates fastlane Fastfiles.
package fastlane

import (
	"strconv"

	"github.com/tacogips/repogen/internal/gen"
	"github.com/tacogips/repogen/internal/text"
)

// FileName is the intrinsic location of the generated file.
const FileName = "fastlane/Fastfile"

// Lane is one lane definition.
type Lane struct {
	Name        string
	Description string
	Private     bool
	Actions     []string
}

// Render writes the lane with its description and body.
func (l Lane) Render(ind text.Indentation) text.IndentedText {
	b := text.NewBufferAt(ind)
	if l.Description != "" {
		b.Line("desc " + strconv.Quote(l.Description))
	}
	keyword := "lane"
	if l.Private {
		keyword = "private_lane"
	}
	b.Linef("%s :%s do", keyword, l.Name)
	b.Block(func() {
		b.Lines(l.Actions...)
	})
	b.Line("end")
	return b.Text()
}

// File is a Fastfile with one platform block.
type File struct {
	gen.Options

	Platform  string
	BeforeAll []string
	Lanes     []Lane
}

// New creates an empty Fastfile for platform.
func New(opts gen.Options, platform string) *File {
	return &File{Options: opts, Platform: platform}
}

// ForFramework is the preset with test, lint and release lanes for a
// framework built from scheme and published as pod name.
func ForFramework(opts gen.Options, platform, scheme string) *File {
	f := New(opts, platform)
	f.AddLane(Lane{
		Name:        "test",
		Description: "Runs all the tests",
		Actions:     []string{"scan(scheme: " + strconv.Quote(scheme) + ", clean: true)"},
	})
	f.AddLane(Lane{
		Name:        "lint",
		Description: "Lints sources and the podspec",
		Actions: []string{
			"swiftlint(strict: true)",
			"pod_lib_lint(allow_warnings: false)",
		},
	})
	f.AddLane(Lane{
		Name:        "release",
		Description: "Tags the current version and pushes the pod",
		Actions: []string{
			"ensure_git_status_clean",
			"version = version_get_podspec",
			`add_git_tag(tag: version)`,
			"push_git_tags",
			"pod_push(allow_warnings: false)",
		},
	})
	return f
}

// AddLane appends a lane.
func (f *File) AddLane(l Lane) *File {
	f.Lanes = append(f.Lanes, l)
	return f
}

// FileName implements textfile.FixedNameFile.
func (f *File) FileName() string {
	return FileName
}

// Content implements textfile.Model.
func (f *File) Content() text.IndentedText {
	b := f.Buffer()
	b.Linef("default_platform(:%s)", f.Platform)
	b.Blank()
	b.Linef("platform :%s do", f.Platform)
	b.Block(func() {
		if len(f.BeforeAll) > 0 {
			b.Line("before_all do")
			b.Block(func() { b.Lines(f.BeforeAll...) })
			b.Line("end")
		}
		for i, l := range f.Lanes {
			if i > 0 || len(f.BeforeAll) > 0 {
				b.Blank()
			}
			b.AppendPiece(l)
		}
	})
	b.Line("end")
	return b.Text()
}
