// Package readme generates README.md files.
package readme

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tacogips/repogen/internal/gen"
	"github.com/tacogips/repogen/internal/text"
	"github.com/tacogips/repogen/internal/textfile"
)

// FileName is the intrinsic name of the generated file.
const FileName = "README.md"

var titleCaser = cases.Title(language.Und, cases.NoLower)

// Badge is a shields.io badge.
type Badge struct {
	Subject string
	Status  string
	Color   string
	Link    string
}

// NewBadge validates and returns a badge. Subject, status and color must
// not be blank.
func NewBadge(subject, status, color, link string) (Badge, error) {
	b := Badge{Subject: subject, Status: status, Color: color, Link: link}
	if err := b.Validate(); err != nil {
		return Badge{}, err
	}
	return b, nil
}

// Validate reports blank required fields.
func (b Badge) Validate() error {
	switch {
	case gen.Blank(b.Subject):
		return textfile.InvalidParametersError("badge.subject", "must not be blank")
	case gen.Blank(b.Status):
		return textfile.InvalidParametersError("badge.status", "must not be blank")
	case gen.Blank(b.Color):
		return textfile.InvalidParametersError("badge.color", "must not be blank")
	}
	return nil
}

// escapeBadge applies the shields.io static badge escaping: dashes and
// underscores are doubled, everything else is path escaped.
func escapeBadge(s string) string {
	s = strings.ReplaceAll(s, "-", "--")
	s = strings.ReplaceAll(s, "_", "__")
	return url.PathEscape(s)
}

// ImageURL returns the static badge image URL.
func (b Badge) ImageURL() string {
	return "https://img.shields.io/badge/" +
		escapeBadge(b.Subject) + "-" + escapeBadge(b.Status) + "-" + escapeBadge(b.Color) + ".svg"
}

// Markdown returns the badge image, linked when Link is set.
func (b Badge) Markdown() string {
	img := "![" + b.Subject + "](" + b.ImageURL() + ")"
	if b.Link == "" {
		return img
	}
	return "[" + img + "](" + b.Link + ")"
}

// InstallMethod renders installation instructions for one package manager.
type InstallMethod interface {
	text.Piece
	Title() string
}

// CocoaPods installs through a Podfile entry.
type CocoaPods struct {
	Pod     string
	Version string
}

// Title implements InstallMethod.
func (CocoaPods) Title() string { return "CocoaPods" }

// Render implements text.Piece.
func (c CocoaPods) Render(ind text.Indentation) text.IndentedText {
	line := "pod " + gen.Quote(c.Pod)
	if c.Version != "" {
		line += ", " + gen.Quote("~> "+c.Version)
	}
	return codeBlock(ind, "ruby", line)
}

// Carthage installs through a Cartfile entry.
type Carthage struct {
	Repository string
	Version    string
}

// Title implements InstallMethod.
func (Carthage) Title() string { return "Carthage" }

// Render implements text.Piece.
func (c Carthage) Render(ind text.Indentation) text.IndentedText {
	line := `github "` + c.Repository + `"`
	if c.Version != "" {
		line += ` ~> ` + c.Version
	}
	return codeBlock(ind, "", line)
}

// SwiftPM installs through a Package.swift dependency.
type SwiftPM struct {
	URL     string
	Version string
}

// Title implements InstallMethod.
func (SwiftPM) Title() string { return "Swift Package Manager" }

// Render implements text.Piece.
func (s SwiftPM) Render(ind text.Indentation) text.IndentedText {
	from := s.Version
	if from == "" {
		from = "1.0.0"
	}
	return codeBlock(ind, "swift", `.package(url: "`+s.URL+`", from: "`+from+`")`)
}

func codeBlock(ind text.Indentation, lang string, body string) text.IndentedText {
	b := text.NewBufferAt(ind)
	b.Line("```" + lang)
	b.Line(body)
	b.Line("```")
	return b.Text()
}

// Section is a free form second level section.
type Section struct {
	Title string
	Body  string
}

// Render writes the heading and body.
func (s Section) Render(ind text.Indentation) text.IndentedText {
	b := text.NewBufferAt(ind)
	b.Line("## " + s.Title)
	b.Blank()
	b.Line(strings.TrimSpace(s.Body))
	return b.Text()
}

// Readme is a README.md.
type Readme struct {
	gen.Options

	Title        string
	Description  string
	Badges       []Badge
	Installation []InstallMethod
	Sections     []Section
	License      string
	Author       string
}

// New creates a readme titled title.
func New(opts gen.Options, title, description string) *Readme {
	return &Readme{Options: opts, Title: title, Description: description}
}

// ForLibrary is the preset for an open source library published to
// CocoaPods, Carthage and SwiftPM from a GitHub repository "owner/name".
func ForLibrary(opts gen.Options, name, description, repository, version, license string) (*Readme, error) {
	r := New(opts, name, description)
	r.License = license
	badges := [][3]string{
		{"platform", "ios", "lightgrey"},
		{"license", license, "blue"},
	}
	if version != "" {
		badges = append(badges, [3]string{"pod", "v" + version, "brightgreen"})
	}
	for _, spec := range badges {
		if err := r.AddBadge(spec[0], spec[1], spec[2], ""); err != nil {
			return nil, err
		}
	}
	r.Installation = []InstallMethod{
		CocoaPods{Pod: name, Version: version},
		Carthage{Repository: repository, Version: version},
		SwiftPM{URL: "https://github.com/" + repository + ".git", Version: version},
	}
	return r, nil
}

// AddBadge validates and appends a badge.
func (r *Readme) AddBadge(subject, status, color, link string) error {
	b, err := NewBadge(subject, status, color, link)
	if err != nil {
		return err
	}
	r.Badges = append(r.Badges, b)
	return nil
}

// Validate reports a blank title or any badge edited into an invalid state
// after it was added.
func (r *Readme) Validate() error {
	if gen.Blank(r.Title) {
		return textfile.InvalidParametersError("readme.title", "must not be blank")
	}
	for _, b := range r.Badges {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FileName implements textfile.FixedNameFile.
func (r *Readme) FileName() string {
	return FileName
}

// Content implements textfile.Model.
func (r *Readme) Content() text.IndentedText {
	b := r.Buffer()
	b.Line("# " + titleCaser.String(r.Title))

	if len(r.Badges) > 0 {
		b.Blank()
		badges := make([]string, len(r.Badges))
		for i, badge := range r.Badges {
			badges[i] = badge.Markdown()
		}
		b.Line(strings.Join(badges, "\n"))
	}

	if r.Description != "" {
		b.Blank()
		b.Line(strings.TrimSpace(r.Description))
	}

	if len(r.Installation) > 0 {
		b.Blank()
		b.Line("## Installation")
		for _, m := range r.Installation {
			b.Blank()
			b.Line("### " + m.Title())
			b.Blank()
			b.AppendPiece(m)
		}
	}

	for _, s := range r.Sections {
		b.Blank()
		b.AppendPiece(s)
	}

	if r.License != "" {
		b.Blank()
		b.AppendPiece(Section{
			Title: "License",
			Body:  titleCaser.String(r.Title) + " is available under the " + r.License + " license. See the LICENSE file for more info.",
		})
	}

	if r.Author != "" {
		b.Blank()
		b.AppendPiece(Section{Title: "Author", Body: r.Author})
	}
	return b.Text()
}
