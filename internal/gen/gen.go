// Package gen holds settings shared by every file generator.
package gen

import (
	"strings"

	"github.com/tacogips/repogen/internal/text"
)

// Options are passed to generator constructors instead of package level
// defaults.
type Options struct {
	// IndentUnit is the text of one indent level. Empty means
	// text.DefaultIndentWidth spaces.
	IndentUnit string
}

// DefaultOptions returns options with a four space indent.
func DefaultOptions() Options {
	return Options{IndentUnit: strings.Repeat(" ", text.DefaultIndentWidth)}
}

// WithIndentWidth returns options using width spaces per level.
func WithIndentWidth(width int) Options {
	return Options{IndentUnit: text.Spaces(width).Unit()}
}

// Unit returns the effective indent unit.
func (o Options) Unit() string {
	if o.IndentUnit == "" {
		return strings.Repeat(" ", text.DefaultIndentWidth)
	}
	return o.IndentUnit
}

// Width returns the indent width in columns, counting a tab as one.
func (o Options) Width() int {
	return len(o.Unit())
}

// Buffer returns a fresh buffer using the configured unit.
func (o Options) Buffer() *text.Buffer {
	return text.NewBuffer(o.Unit())
}

var rubyQuoter = strings.NewReplacer(`\`, `\\`, "'", `\'`)

// Quote wraps s in a single-quoted Ruby string literal, as the Podfile and
// podspec DSLs expect. Backslashes and quotes are escaped.
func Quote(s string) string {
	return "'" + rubyQuoter.Replace(s) + "'"
}

// Blank reports whether s is empty after trimming whitespace.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
