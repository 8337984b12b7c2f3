package suffix

import (
	"unicode"
)

// MiddleDot is the canonical separator for inclusive suffixes.
const MiddleDot = '·'

// IsSeparator returns true for code-points which may introduce an inclusive
// suffix: hyphen, full stop and middle dot.
func IsSeparator(r rune) bool {
	return r == '-' || r == '.' || r == MiddleDot
}

// IsWordChar returns true for letters and for the middle dot. The middle dot
// counts as part of a word, so that already canonicalized suffixes are
// recognized again.
func IsWordChar(r rune) bool {
	return unicode.IsLetter(r) || r == MiddleDot
}

// Match tries to match pattern p, and transitively its continuations, at
// position pos of input. sep is the separator which introduced the suffix;
// continuations may be separated from their predecessor by sep or may follow
// it immediately.
//
// If p matches, Match returns the position right after the match and true.
//
// The literal ending is rejected if it is immediately followed by a letter
// which does not start a continuation, as then the ending would be the prefix
// of a longer word. If it is followed by sep, the match is accepted even if
// no continuation matches after the separator; the separator itself is not
// part of the match then.
func Match(input []rune, pos int, p *Pattern, sep rune) (int, bool) {
	if pos < 0 || len(input)-pos < len(p.text) {
		return 0, false
	}
	for i, r := range p.text {
		if input[pos+i] != r {
			return 0, false
		}
	}
	end := pos + len(p.text)
	if end == len(input) {
		return end, true
	}
	next, accept := end, true
	switch c := input[end]; {
	case c == sep:
		next++
	case IsWordChar(c):
		accept = false // only a continuation can rescue this
	default:
		return end, true
	}
	for _, cont := range p.continuations {
		if e, ok := Match(input, next, cont, sep); ok {
			return e, true
		}
	}
	return end, accept
}

// Detect checks if an inclusive suffix starts after the separator at
// position at. sep is expected to be input[at].
//
// Catalog entries are tried in order. Detect returns the length of the first
// match, including the separator, or 0 if no entry matches. Detect does not
// modify input.
func Detect(input []rune, at int, sep rune) int {
	for _, p := range catalog {
		if end, ok := Match(input, at+1, p, sep); ok {
			tracer().Debugf("detected suffix %s at position %d", p, at)
			return end - at
		}
	}
	return 0
}
