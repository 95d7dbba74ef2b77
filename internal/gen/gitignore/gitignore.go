// Package gitignore generates .gitignore files from named sections.
package gitignore

import (
	"fmt"

	"github.com/tacogips/repogen/internal/text"
)

// FileName is the intrinsic name of the generated file.
const FileName = ".gitignore"

// Section is a predefined group of ignore patterns.
type Section int

const (
	MacOS Section = iota
	Xcode
	SwiftPM
	CocoaPods
	Carthage
	Fastlane
)

var sectionTitles = map[Section]string{
	MacOS:     "macOS",
	Xcode:     "Xcode",
	SwiftPM:   "Swift Package Manager",
	CocoaPods: "CocoaPods",
	Carthage:  "Carthage",
	Fastlane:  "fastlane",
}

var sectionPatterns = map[Section][]string{
	MacOS: {".DS_Store", ".AppleDouble", ".LSOverride", "._*"},
	Xcode: {
		"build/",
		"DerivedData/",
		"*.moved-aside",
		"*.xccheckout",
		"*.xcscmblueprint",
		"xcuserdata/",
		"*.xcuserstate",
		"*.hmap",
		"*.ipa",
		"*.dSYM.zip",
		"*.dSYM",
	},
	SwiftPM:   {".build/", ".swiftpm/", "Packages/", "Package.resolved"},
	CocoaPods: {"Pods/"},
	Carthage:  {"Carthage/Build/", "Carthage/Checkouts/"},
	Fastlane: {
		"fastlane/report.xml",
		"fastlane/Preview.html",
		"fastlane/screenshots/**/*.png",
		"fastlane/test_output",
	},
}

// Title returns the section heading.
func (s Section) Title() string {
	if t, ok := sectionTitles[s]; ok {
		return t
	}
	return fmt.Sprintf("Section(%d)", int(s))
}

// Patterns returns the ignore patterns of the section.
func (s Section) Patterns() []string {
	return append([]string(nil), sectionPatterns[s]...)
}

// Render writes a comment heading followed by one pattern per line.
func (s Section) Render(ind text.Indentation) text.IndentedText {
	return Custom{Title: s.Title(), Patterns: sectionPatterns[s]}.Render(ind)
}

// ParseSection maps a section title or lowercase key to a Section.
func ParseSection(name string) (Section, bool) {
	switch name {
	case "macos", "macOS":
		return MacOS, true
	case "xcode", "Xcode":
		return Xcode, true
	case "swiftpm", "spm":
		return SwiftPM, true
	case "cocoapods", "CocoaPods":
		return CocoaPods, true
	case "carthage", "Carthage":
		return Carthage, true
	case "fastlane":
		return Fastlane, true
	}
	return 0, false
}

// Custom is a caller defined section.
type Custom struct {
	Title    string
	Patterns []string
}

// Render writes the optional heading and the patterns.
func (c Custom) Render(ind text.Indentation) text.IndentedText {
	b := text.NewBufferAt(ind)
	if c.Title != "" {
		b.Line("# " + c.Title)
	}
	b.Lines(c.Patterns...)
	return b.Text()
}

// File is a .gitignore made of sections separated by blank lines.
type File struct {
	sections []text.Piece
}

// New creates a file from sections in output order.
func New(sections ...text.Piece) *File {
	return &File{sections: sections}
}

// ForFramework is the preset for a framework repository distributed with
// Carthage and SwiftPM.
func ForFramework() *File {
	return New(MacOS, Xcode, SwiftPM, Carthage, Fastlane)
}

// ForApp is the preset for an application repository using CocoaPods.
func ForApp() *File {
	return New(MacOS, Xcode, SwiftPM, CocoaPods, Fastlane)
}

// Add appends sections.
func (f *File) Add(sections ...text.Piece) *File {
	f.sections = append(f.sections, sections...)
	return f
}

// FileName implements textfile.FixedNameFile.
func (f *File) FileName() string {
	return FileName
}

// Content implements textfile.Model.
func (f *File) Content() text.IndentedText {
	b := text.NewBuffer("")
	b.AppendPiece(text.Separated(f.sections...))
	return b.Text()
}
