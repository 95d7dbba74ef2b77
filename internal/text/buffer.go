package text

import "fmt"

// Buffer accumulates IndentedText under a live indentation cursor. Every
// generator composes its output through one.
type Buffer struct {
	text   IndentedText
	indent *Indentation
}

// NewBuffer creates an empty buffer at depth zero using unit per level.
func NewBuffer(unit string) *Buffer {
	return &Buffer{indent: NewIndentation(unit)}
}

// NewBufferWith creates an empty buffer that shares ind as its cursor.
func NewBufferWith(ind *Indentation) *Buffer {
	if ind == nil {
		ind = Spaces(DefaultIndentWidth)
	}
	return &Buffer{indent: ind}
}

// NewBufferAt creates an empty buffer whose cursor starts at a copy of ind.
// Pieces use it to render nested structures relative to where they are
// placed.
func NewBufferAt(ind Indentation) *Buffer {
	cur := ind
	return &Buffer{indent: &cur}
}

// Indentation returns the live cursor. Changes to it affect subsequent
// appends only.
func (b *Buffer) Indentation() *Indentation {
	return b.indent
}

// Line appends s, split on newlines, at the current depth.
func (b *Buffer) Line(s string) *Buffer {
	b.text = append(b.text, FromString(s, b.indent.Snapshot())...)
	return b
}

// Linef formats according to a format specifier and appends the result.
func (b *Buffer) Linef(format string, args ...any) *Buffer {
	return b.Line(fmt.Sprintf(format, args...))
}

// Lines appends every element of ss as its own line.
func (b *Buffer) Lines(ss ...string) *Buffer {
	for _, s := range ss {
		b.Line(s)
	}
	return b
}

// Blank appends an empty line.
func (b *Buffer) Blank() *Buffer {
	b.text = append(b.text, Line{Indent: b.indent.Snapshot()})
	return b
}

// AppendText appends precomputed lines unchanged.
func (b *Buffer) AppendText(t IndentedText) *Buffer {
	b.text = append(b.text, t...)
	return b
}

// AppendPiece renders p at the current depth and appends the result.
func (b *Buffer) AppendPiece(p Piece) *Buffer {
	if p == nil {
		return b
	}
	b.text = append(b.text, p.Render(b.indent.Snapshot())...)
	return b
}

// Indent moves the cursor one level deeper.
func (b *Buffer) Indent() *Buffer {
	b.indent.Increase()
	return b
}

// Outdent moves the cursor one level out, saturating at zero.
func (b *Buffer) Outdent() *Buffer {
	b.indent.Decrease()
	return b
}

// Nest runs body one level deeper and restores the previous depth
// afterwards, whatever body returns or however it moved the cursor.
func (b *Buffer) Nest(body func() error) error {
	return b.indent.Nest(body)
}

// Block is Nest for bodies that cannot fail.
func (b *Buffer) Block(body func()) *Buffer {
	_ = b.indent.Nest(func() error {
		body()
		return nil
	})
	return b
}

// Len returns the number of lines accumulated so far.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Text returns a copy of the accumulated lines.
func (b *Buffer) Text() IndentedText {
	return b.text.Clone()
}

// String renders the accumulated lines.
func (b *Buffer) String() string {
	return b.text.String()
}
