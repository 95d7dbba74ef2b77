package text

import "strings"

// Line is one physical output line together with the indentation it was
// appended at.
type Line struct {
	Indent  Indentation
	Content string
}

// String renders the line as its indentation prefix followed by its content.
func (l Line) String() string {
	return l.Indent.String() + l.Content
}

// IndentedText is an ordered sequence of lines. Insertion order is output
// order; lines are never edited or removed once appended.
type IndentedText []Line

// FromString splits s on newlines and stamps every resulting line with ind.
func FromString(s string, ind Indentation) IndentedText {
	parts := strings.Split(s, "\n")
	out := make(IndentedText, 0, len(parts))
	for _, p := range parts {
		out = append(out, Line{Indent: ind, Content: p})
	}
	return out
}

// Append returns t with lines added at the end.
func (t IndentedText) Append(lines ...Line) IndentedText {
	return append(t, lines...)
}

// Concat returns a new sequence holding the lines of t followed by the lines
// of other. Neither operand is modified.
func (t IndentedText) Concat(other IndentedText) IndentedText {
	out := make(IndentedText, 0, len(t)+len(other))
	out = append(out, t...)
	return append(out, other...)
}

// Render implements Piece. The lines keep their own stamped indentation.
func (t IndentedText) Render(Indentation) IndentedText {
	return t.Clone()
}

// Clone returns an independent copy of t.
func (t IndentedText) Clone() IndentedText {
	if t == nil {
		return nil
	}
	out := make(IndentedText, len(t))
	copy(out, t)
	return out
}

// Lines renders each line separately.
func (t IndentedText) Lines() []string {
	out := make([]string, len(t))
	for i, l := range t {
		out[i] = l.String()
	}
	return out
}

// String joins all lines with a newline, each prefixed by its own
// indentation.
func (t IndentedText) String() string {
	var sb strings.Builder
	for i, l := range t {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.Indent.String())
		sb.WriteString(l.Content)
	}
	return sb.String()
}
