// Package text provides indentation-aware text composition shared by every
// file generator.
package text

import "strings"

// DefaultIndentWidth is the number of spaces used for one indent level when
// no explicit unit is configured.
const DefaultIndentWidth = 4

// Indentation tracks a nesting depth and the text of a single indent level.
// The unit never changes after construction; the depth never goes below zero.
type Indentation struct {
	unit  string
	level int
}

// NewIndentation creates an Indentation at depth zero using unit for each level.
func NewIndentation(unit string) *Indentation {
	return &Indentation{unit: unit}
}

// Spaces returns an Indentation whose unit is n spaces.
// A non-positive n falls back to DefaultIndentWidth.
func Spaces(n int) *Indentation {
	if n <= 0 {
		n = DefaultIndentWidth
	}
	return NewIndentation(strings.Repeat(" ", n))
}

// Tabs returns an Indentation whose unit is a single tab.
func Tabs() *Indentation {
	return NewIndentation("\t")
}

// Unit returns the text of one indent level.
func (i Indentation) Unit() string {
	return i.unit
}

// Level returns the current depth.
func (i Indentation) Level() int {
	return i.level
}

// Increase moves one level deeper.
func (i *Indentation) Increase() {
	i.level++
}

// Decrease moves one level out. It is a no-op at depth zero.
func (i *Indentation) Decrease() {
	if i.level > 0 {
		i.level--
	}
}

// Nest runs body one level deeper and restores the previous depth on every
// exit path, including an error return or a panic. Depth changes made by body
// are discarded, so an unbalanced body cannot leak into the caller.
func (i *Indentation) Nest(body func() error) error {
	prev := i.level
	i.Increase()
	defer func() { i.level = prev }()
	return body()
}

// String renders the indentation prefix for the current depth.
func (i Indentation) String() string {
	return strings.Repeat(i.unit, i.level)
}

// Snapshot returns a copy frozen at the current depth.
func (i *Indentation) Snapshot() Indentation {
	return Indentation{unit: i.unit, level: i.level}
}

// Deeper returns a copy n levels deeper than i. Negative n saturates at zero.
func (i Indentation) Deeper(n int) Indentation {
	level := i.level + n
	if level < 0 {
		level = 0
	}
	return Indentation{unit: i.unit, level: level}
}

// Equal reports whether both unit and depth match.
func (i Indentation) Equal(other Indentation) bool {
	return i.unit == other.unit && i.level == other.level
}
