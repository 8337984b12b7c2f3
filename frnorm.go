package frnorm

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/frnorm/diacritic"
	"github.com/npillmayer/frnorm/repeat"
	"github.com/npillmayer/frnorm/rewrite"
)

// MaxInputLength is the maximum number of code-points a token may consist of.
// Working buffers are sized at twice the input length; longer inputs are
// refused instead of allocating.
const MaxInputLength = 1 << 20

// ErrInvalidArgument flags input which is not well-formed text.
// ErrOutOfMemory is returned if the working buffers for an input would
// exceed the allocation limit.
var (
	ErrInvalidArgument = errors.New("frnorm: input is not valid UTF-8 text")
	ErrOutOfMemory     = errors.New("frnorm: cannot allocate working buffer")
)

// Normalize returns a normalized version of a (lower-cased) token:
// brackets are removed, quotes, dashes and ligatures are unified, inclusive
// suffixes are canonicalized and runs of three or more identical letters are
// collapsed.
//
//	Normalize("auteur-rice-x-s")  →  "auteur·rices"
//	Normalize("«ouiiiii»")        →  "\"oui\""
//
// Returns an error wrapping ErrInvalidArgument or ErrOutOfMemory; no partial
// result is returned in this case.
func Normalize(token string) (string, error) {
	input, err := decode(token, "normalize")
	if err != nil {
		return "", err
	}
	out := repeat.Reduce(rewrite.Rewrite(input), repeat.Triples)
	return string(out), nil
}

// Dediacritic removes diacritics from French vowels and collapses runs of two
// or more identical letters.
//
//	Dediacritic("étéééé")  →  "ete"
//	Dediacritic("noon")    →  "non"
//
// Errors are the same as for Normalize.
func Dediacritic(token string) (string, error) {
	input, err := decode(token, "dediacritic")
	if err != nil {
		return "", err
	}
	out := repeat.Reduce(diacritic.Fold(input), repeat.Doubles)
	return string(out), nil
}

// MustNormalize is like Normalize, but panics on error. It is intended for
// input which is known to be valid, e.g. static word lists.
func MustNormalize(token string) string {
	s, err := Normalize(token)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// MustDediacritic is like Dediacritic, but panics on error.
func MustDediacritic(token string) string {
	s, err := Dediacritic(token)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// decode validates a token and converts it to a sequence of code-points.
func decode(token string, op string) ([]rune, error) {
	if !utf8.ValidString(token) {
		tracer().Errorf("%s: refusing invalid UTF-8 input %q", op, token)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}
	if n := utf8.RuneCountInString(token); n > MaxInputLength {
		tracer().Errorf("%s: input of length %d exceeds limit", op, n)
		return nil, fmt.Errorf("%s: input of %d code-points: %w", op, n, ErrOutOfMemory)
	}
	return []rune(token), nil
}
