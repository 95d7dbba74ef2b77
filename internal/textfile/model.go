// Package textfile binds rendered file models to filesystem locations and
// writes them under a configurable overwrite policy.
package textfile

import (
	"github.com/tacogips/repogen/internal/text"
)

// Model is anything that renders to file content. Content must be pure:
// calling it twice on an unmodified model yields identical lines.
type Model interface {
	Content() text.IndentedText
}

// FixedNameFile is a model whose file name is intrinsic to its type, such as
// ".gitignore" or "fastlane/Fastfile". The name is relative.
type FixedNameFile interface {
	Model
	FileName() string
}

// NamedFile is a model whose name is supplied by the caller when the write
// is prepared, such as "<product>.podspec". Extension includes the dot and
// may be empty.
type NamedFile interface {
	Model
	Extension() string
}

// Render returns the flat string form of m.
func Render(m Model) string {
	return m.Content().String()
}

// targetKind distinguishes the two naming strategies.
type targetKind int

const (
	intrinsicName targetKind = iota
	suppliedName
)

// Target is the file name part of a pending write: either the name a fixed
// model carries or the one the caller supplied.
type Target struct {
	kind targetKind
	name string
}

// Name returns the relative file name of the target.
func (t Target) Name() string {
	return t.name
}

// Intrinsic reports whether the name came from the model type itself.
func (t Target) Intrinsic() bool {
	return t.kind == intrinsicName
}
