package text

// Piece is anything that can render itself into IndentedText given the
// indentation it is being placed at.
type Piece interface {
	Render(ind Indentation) IndentedText
}

// PieceFunc adapts an ordinary function to the Piece interface.
type PieceFunc func(ind Indentation) IndentedText

// Render calls f(ind).
func (f PieceFunc) Render(ind Indentation) IndentedText {
	return f(ind)
}

// Raw is a literal, possibly multi-line, piece of text.
type Raw string

// Render splits the string on newlines and stamps every line with ind.
func (r Raw) Render(ind Indentation) IndentedText {
	return FromString(string(r), ind)
}

// Pieces composes several pieces rendered one after another at the same
// indentation.
type Pieces []Piece

// Render concatenates the output of every piece.
func (ps Pieces) Render(ind Indentation) IndentedText {
	var out IndentedText
	for _, p := range ps {
		if p == nil {
			continue
		}
		out = append(out, p.Render(ind)...)
	}
	return out
}

// Separated renders pieces with a single blank line between non-empty
// outputs.
func Separated(pieces ...Piece) Piece {
	return PieceFunc(func(ind Indentation) IndentedText {
		var out IndentedText
		for _, p := range pieces {
			if p == nil {
				continue
			}
			rendered := p.Render(ind)
			if len(rendered) == 0 {
				continue
			}
			if len(out) > 0 {
				out = append(out, Line{Indent: ind})
			}
			out = append(out, rendered...)
		}
		return out
	})
}
