package textfile

import "strings"

// TrimTrailingSpaces removes spaces that immediately precede a newline,
// repeating until nothing changes.
func TrimTrailingSpaces(s string) string {
	return fixedPoint(s, func(in string) string {
		return strings.ReplaceAll(in, " \n", "\n")
	})
}

// CollapseBlankLines reduces every run of three or more newlines to exactly
// two, repeating until nothing changes.
func CollapseBlankLines(s string) string {
	return fixedPoint(s, func(in string) string {
		return strings.ReplaceAll(in, "\n\n\n", "\n\n")
	})
}

// fixedPoint applies step until its output stops changing. Both steps only
// ever shrink their input, so len(s)+1 passes always reach the fixed point;
// the bound only guards against a step that does not.
func fixedPoint(s string, step func(string) string) string {
	for pass := 0; pass <= len(s); pass++ {
		next := step(s)
		if next == s {
			return s
		}
		s = next
	}
	return s
}
